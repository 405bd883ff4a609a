package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/piresc/nebengjek-fare/services/fare"
)

// FareUC implements the fare.FareUC interface
type FareUC struct {
	cfg        *models.Config
	configRepo fare.FareConfigRepo
	fareRepo   fare.FareRepo
	gateway    fare.FareGW
	trajectory fare.TrajectoryProvider
	engine     *PricingEngine
}

// NewFareUC creates a new fare use case. now may be nil to use the wall clock.
func NewFareUC(
	cfg *models.Config,
	configRepo fare.FareConfigRepo,
	fareRepo fare.FareRepo,
	gateway fare.FareGW,
	trajectory fare.TrajectoryProvider,
	now func() time.Time,
) *FareUC {
	return &FareUC{
		cfg:        cfg,
		configRepo: configRepo,
		fareRepo:   fareRepo,
		gateway:    gateway,
		trajectory: trajectory,
		engine:     NewPricingEngine(cfg.Pricing, now),
	}
}

// ComputeFare selects the algorithm for bookingType, resolves its configuration and prices the trip
func (uc *FareUC) ComputeFare(ctx context.Context, bookingType models.BookingType, vehicleType string, facts models.TripFacts) (*models.FareBreakdown, error) {
	bookingType, err := models.ParseBookingType(string(bookingType))
	if err != nil {
		return nil, err
	}
	vehicleType = strings.ToLower(strings.TrimSpace(vehicleType))
	if vehicleType == "" {
		return nil, models.ErrUnknownVehicleType
	}
	if err := validateTripFacts(bookingType, facts); err != nil {
		return nil, err
	}

	var breakdown *models.FareBreakdown
	switch bookingType {
	case models.BookingTypeRegular:
		breakdown, err = uc.computeRegular(ctx, vehicleType, facts)
	case models.BookingTypeRental:
		breakdown, err = uc.computeRental(ctx, vehicleType, facts)
	case models.BookingTypeOutstation:
		breakdown, err = uc.computeOutstation(ctx, vehicleType, facts)
	case models.BookingTypeAirport:
		breakdown, err = uc.computeAirport(ctx, vehicleType, facts)
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownBookingType, bookingType)
	}
	if err != nil {
		return nil, err
	}

	if fb, ok := breakdown.Details["fallbacks"].([]models.Fallback); ok {
		for _, f := range fb {
			logger.Warn("Fare component replaced by fallback",
				logger.String("booking_type", string(bookingType)),
				logger.String("vehicle_type", vehicleType),
				logger.String("field", f.Field),
				logger.Float64("value", f.Value))
		}
	}
	logger.Debug("Fare computed",
		logger.String("booking_type", string(bookingType)),
		logger.String("vehicle_type", vehicleType),
		logger.Float64("distance_km", facts.DistanceKm),
		logger.Int64("total_fare", breakdown.TotalFare))

	return breakdown, nil
}

func (uc *FareUC) computeRegular(ctx context.Context, vehicleType string, facts models.TripFacts) (*models.FareBreakdown, error) {
	matrix, err := uc.configRepo.GetFareMatrix(ctx, models.BookingTypeRegular, vehicleType)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fare matrix: %w", err)
	}

	zones, err := uc.configRepo.GetActiveZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load zones: %w", err)
	}

	return uc.engine.Regular(vehicleType, facts, matrix, zones), nil
}

func (uc *FareUC) computeRental(ctx context.Context, vehicleType string, facts models.TripFacts) (*models.FareBreakdown, error) {
	pkg, err := uc.configRepo.GetRentalPackage(ctx, vehicleType, facts.SelectedHours)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rental package: %w", err)
	}
	return uc.engine.Rental(vehicleType, facts, pkg), nil
}

func (uc *FareUC) computeOutstation(ctx context.Context, vehicleType string, facts models.TripFacts) (*models.FareBreakdown, error) {
	in := OutstationInputs{Days: uc.engine.OutstationDays(facts.ScheduledTime)}

	cfg, err := uc.configRepo.GetOutstationConfig(ctx, vehicleType)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to resolve outstation config: %w", err)
	}
	in.Config = cfg

	if uc.engine.UsesSlab(facts, in.Days) {
		slab, err := uc.configRepo.GetSlabPackage(ctx, vehicleType)
		if err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("failed to resolve slab package: %w", err)
		}
		in.Slab = slab
	}

	matrix, err := uc.configRepo.GetFareMatrix(ctx, models.BookingTypeOutstation, vehicleType)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to resolve fare matrix: %w", err)
	}
	in.Matrix = matrix

	return uc.engine.Outstation(vehicleType, facts, in)
}

func (uc *FareUC) computeAirport(ctx context.Context, vehicleType string, facts models.TripFacts) (*models.FareBreakdown, error) {
	cfg, err := uc.configRepo.GetAirportConfig(ctx, vehicleType)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve airport config: %w", err)
	}
	return uc.engine.Airport(vehicleType, facts, cfg), nil
}

// PriceCompletedTrip measures the trip from its stored samples, prices it, persists the
// breakdown and publishes fare.calculated. A publish failure is logged, not returned,
// once the breakdown is stored.
func (uc *FareUC) PriceCompletedTrip(ctx context.Context, event *models.TripCompletedEvent) (*models.FareCalculatedEvent, error) {
	if event == nil || strings.TrimSpace(event.TripID) == "" {
		return nil, fmt.Errorf("%w: trip_id is required", models.ErrInvalidTripFacts)
	}

	bookingType, err := models.ParseBookingType(event.BookingType)
	if err != nil {
		return nil, err
	}

	trajectory, err := uc.trajectory.ComputeTrajectoryDistance(ctx, event.TripID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute trajectory distance: %w", err)
	}

	facts := models.TripFacts{
		DistanceKm:      trajectory.DistanceKm,
		DurationMinutes: event.DurationMinutes,
		Pickup:          event.Pickup,
		Drop:            event.Drop,
		SelectedHours:   event.SelectedHours,
		TripType:        event.TripType,
		ScheduledTime:   event.ScheduledTime,
	}

	breakdown, err := uc.ComputeFare(ctx, bookingType, event.VehicleType, facts)
	if err != nil {
		return nil, err
	}

	recordID, err := uc.fareRepo.SaveFareBreakdown(ctx, event.TripID, trajectory.DistanceKm, breakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to save fare breakdown: %w", err)
	}

	result := &models.FareCalculatedEvent{
		TripID:     event.TripID,
		RecordID:   recordID,
		DistanceKm: trajectory.DistanceKm,
		Breakdown:  breakdown,
		Timestamp:  models.Now(),
	}

	if err := uc.gateway.PublishFareCalculated(ctx, result); err != nil {
		logger.Error("Failed to publish fare calculated event",
			logger.String("trip_id", event.TripID),
			logger.String("record_id", recordID),
			logger.Err(err))
	}

	logger.Info("Trip priced",
		logger.String("trip_id", event.TripID),
		logger.String("booking_type", string(bookingType)),
		logger.Float64("distance_km", trajectory.DistanceKm),
		logger.Int("points_used", trajectory.PointsUsed),
		logger.Int64("total_fare", breakdown.TotalFare))

	return result, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrConfigurationNotFound)
}

func validateTripFacts(bookingType models.BookingType, facts models.TripFacts) error {
	if !validAmount(facts.DistanceKm) {
		return fmt.Errorf("%w: distance_km must be a finite non-negative number", models.ErrInvalidTripFacts)
	}
	if !validAmount(facts.DurationMinutes) {
		return fmt.Errorf("%w: duration_minutes must be a finite non-negative number", models.ErrInvalidTripFacts)
	}
	if !facts.Pickup.Valid() || !facts.Drop.Valid() {
		return fmt.Errorf("%w: pickup and drop must be valid coordinates", models.ErrInvalidTripFacts)
	}

	switch bookingType {
	case models.BookingTypeRental:
		if facts.SelectedHours <= 0 {
			return fmt.Errorf("%w: selected_hours must be positive for rentals", models.ErrInvalidTripFacts)
		}
	case models.BookingTypeOutstation:
		switch facts.TripType {
		case "", models.TripTypeOneWay, models.TripTypeRoundTrip:
		default:
			return fmt.Errorf("%w: unknown trip_type %q", models.ErrInvalidTripFacts, facts.TripType)
		}
	}
	return nil
}
