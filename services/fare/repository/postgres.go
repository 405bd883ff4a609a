package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// FareConfigRepo reads tariff configuration from Postgres. Only active rows are
// considered and the most recently created one wins.
type FareConfigRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFareConfigRepository creates a new Postgres configuration store
func NewFareConfigRepository(cfg *models.Config, db *sqlx.DB) *FareConfigRepo {
	return &FareConfigRepo{
		cfg: cfg,
		db:  db,
	}
}

type fareMatrixRow struct {
	ID              string          `db:"id"`
	BookingType     string          `db:"booking_type"`
	VehicleType     string          `db:"vehicle_type"`
	BaseFare        sql.NullFloat64 `db:"base_fare"`
	PerKmRate       sql.NullFloat64 `db:"per_km_rate"`
	SurgeMultiplier sql.NullFloat64 `db:"surge_multiplier"`
	PlatformFee     sql.NullFloat64 `db:"platform_fee"`
	MinimumFare     sql.NullFloat64 `db:"minimum_fare"`
	CreatedAt       time.Time       `db:"created_at"`
}

// GetFareMatrix returns the freshest active rates for a booking and vehicle type
func (r *FareConfigRepo) GetFareMatrix(ctx context.Context, bookingType models.BookingType, vehicleType string) (*models.FareMatrixEntry, error) {
	query := `
		SELECT id, booking_type, vehicle_type, base_fare, per_km_rate,
			surge_multiplier, platform_fee, minimum_fare, created_at
		FROM fare_matrix
		WHERE booking_type = $1 AND vehicle_type = $2 AND is_active = true
		ORDER BY created_at DESC
		LIMIT 1
	`

	var row fareMatrixRow
	if err := r.db.GetContext(ctx, &row, query, string(bookingType), vehicleType); err != nil {
		return nil, notFoundOr(err, "fare_matrix", string(bookingType)+"/"+vehicleType)
	}

	s := newSanitizer("fare_matrix")
	entry := &models.FareMatrixEntry{
		ID:              row.ID,
		BookingType:     models.BookingType(row.BookingType),
		VehicleType:     row.VehicleType,
		BaseFare:        s.amount("base_fare", row.BaseFare, 0),
		PerKmRate:       s.amount("per_km_rate", row.PerKmRate, 0),
		SurgeMultiplier: s.multiplier("surge_multiplier", row.SurgeMultiplier),
		PlatformFee:     s.amount("platform_fee", row.PlatformFee, r.cfg.Pricing.DefaultPlatformFee),
		MinimumFare:     s.amount("minimum_fare", row.MinimumFare, 0),
		CreatedAt:       row.CreatedAt,
		Fallbacks:       s.fallbacks,
	}
	return entry, nil
}

type rentalPackageRow struct {
	ID              string          `db:"id"`
	VehicleType     string          `db:"vehicle_type"`
	DurationHours   int             `db:"duration_hours"`
	PackageName     sql.NullString  `db:"package_name"`
	BaseFare        sql.NullFloat64 `db:"base_fare"`
	KmIncluded      sql.NullFloat64 `db:"km_included"`
	ExtraKmRate     sql.NullFloat64 `db:"extra_km_rate"`
	ExtraMinuteRate sql.NullFloat64 `db:"extra_minute_rate"`
	IsPopular       bool            `db:"is_popular"`
	CreatedAt       time.Time       `db:"created_at"`
}

// GetRentalPackage returns the active package for vehicleType with the given hours.
// Popular packages take precedence over newer ones.
func (r *FareConfigRepo) GetRentalPackage(ctx context.Context, vehicleType string, hours int) (*models.RentalPackage, error) {
	query := `
		SELECT id, vehicle_type, duration_hours, package_name, base_fare, km_included,
			extra_km_rate, extra_minute_rate, is_popular, created_at
		FROM rental_packages
		WHERE vehicle_type = $1 AND duration_hours = $2 AND is_active = true
		ORDER BY is_popular DESC, created_at DESC
		LIMIT 1
	`

	var row rentalPackageRow
	if err := r.db.GetContext(ctx, &row, query, vehicleType, hours); err != nil {
		return nil, notFoundOr(err, "rental_package", fmt.Sprintf("%s/%dh", vehicleType, hours))
	}

	s := newSanitizer("rental_packages")
	return &models.RentalPackage{
		ID:              row.ID,
		VehicleType:     row.VehicleType,
		DurationHours:   row.DurationHours,
		PackageName:     row.PackageName.String,
		BaseFare:        s.amount("base_fare", row.BaseFare, 0),
		KmIncluded:      s.amount("km_included", row.KmIncluded, 0),
		ExtraKmRate:     s.amount("extra_km_rate", row.ExtraKmRate, 0),
		ExtraMinuteRate: s.amount("extra_minute_rate", row.ExtraMinuteRate, 0),
		IsPopular:       row.IsPopular,
		CreatedAt:       row.CreatedAt,
		Fallbacks:       s.fallbacks,
	}, nil
}

type outstationConfigRow struct {
	ID                    string          `db:"id"`
	VehicleType           string          `db:"vehicle_type"`
	BaseFare              sql.NullFloat64 `db:"base_fare"`
	PerKmRate             sql.NullFloat64 `db:"per_km_rate"`
	DriverAllowancePerDay sql.NullFloat64 `db:"driver_allowance_per_day"`
	DailyKmLimit          sql.NullFloat64 `db:"daily_km_limit"`
	CreatedAt             time.Time       `db:"created_at"`
}

// GetOutstationConfig returns the per-km outstation configuration for vehicleType
func (r *FareConfigRepo) GetOutstationConfig(ctx context.Context, vehicleType string) (*models.OutstationFareConfig, error) {
	query := `
		SELECT id, vehicle_type, base_fare, per_km_rate, driver_allowance_per_day,
			daily_km_limit, created_at
		FROM outstation_fare_configs
		WHERE vehicle_type = $1 AND is_active = true
		ORDER BY created_at DESC
		LIMIT 1
	`

	var row outstationConfigRow
	if err := r.db.GetContext(ctx, &row, query, vehicleType); err != nil {
		return nil, notFoundOr(err, "outstation_fare_config", vehicleType)
	}

	s := newSanitizer("outstation_fare_configs")
	return &models.OutstationFareConfig{
		ID:                    row.ID,
		VehicleType:           row.VehicleType,
		BaseFare:              s.amount("base_fare", row.BaseFare, 0),
		PerKmRate:             s.amount("per_km_rate", row.PerKmRate, 0),
		DriverAllowancePerDay: s.amount("driver_allowance_per_day", row.DriverAllowancePerDay, 0),
		DailyKmLimit:          s.amount("daily_km_limit", row.DailyKmLimit, 0),
		CreatedAt:             row.CreatedAt,
		Fallbacks:             s.fallbacks,
	}, nil
}

// slabColumns lists km_10 through km_150
func slabColumns() []string {
	cols := make([]string, 0, models.SlabTierCount)
	for k := 1; k <= models.SlabTierCount; k++ {
		cols = append(cols, fmt.Sprintf("km_%d", k*models.SlabTierStepKm))
	}
	return cols
}

// GetSlabPackage returns the slab table for vehicleType. Tiers are ascending.
func (r *FareConfigRepo) GetSlabPackage(ctx context.Context, vehicleType string) (*models.OutstationSlabPackage, error) {
	cols := slabColumns()
	query := fmt.Sprintf(`
		SELECT id, vehicle_type, %s, extra_km_rate, created_at
		FROM outstation_slab_packages
		WHERE vehicle_type = $1 AND is_active = true
		ORDER BY created_at DESC
		LIMIT 1
	`, strings.Join(cols, ", "))

	var (
		id, vt      string
		tierFares   = make([]sql.NullFloat64, len(cols))
		extraKmRate sql.NullFloat64
		createdAt   time.Time
	)
	dest := make([]interface{}, 0, len(cols)+4)
	dest = append(dest, &id, &vt)
	for i := range tierFares {
		dest = append(dest, &tierFares[i])
	}
	dest = append(dest, &extraKmRate, &createdAt)

	if err := r.db.QueryRowxContext(ctx, query, vehicleType).Scan(dest...); err != nil {
		return nil, notFoundOr(err, "outstation_slab_package", vehicleType)
	}

	s := newSanitizer("outstation_slab_packages")
	tiers := make([]models.SlabTier, len(cols))
	for i, col := range cols {
		tiers[i] = models.SlabTier{
			LimitKm: float64((i + 1) * models.SlabTierStepKm),
			Fare:    s.amount(col, tierFares[i], 0),
		}
	}

	return &models.OutstationSlabPackage{
		ID:          id,
		VehicleType: vt,
		Tiers:       tiers,
		ExtraKmRate: s.amount("extra_km_rate", extraKmRate, 0),
		CreatedAt:   createdAt,
		Fallbacks:   s.fallbacks,
	}, nil
}

type airportConfigRow struct {
	ID              string          `db:"id"`
	VehicleType     string          `db:"vehicle_type"`
	ToAirportFare   sql.NullFloat64 `db:"to_airport_fare"`
	FromAirportFare sql.NullFloat64 `db:"from_airport_fare"`
	CreatedAt       time.Time       `db:"created_at"`
}

// GetAirportConfig returns the directional airport fares for vehicleType
func (r *FareConfigRepo) GetAirportConfig(ctx context.Context, vehicleType string) (*models.AirportFareConfig, error) {
	query := `
		SELECT id, vehicle_type, to_airport_fare, from_airport_fare, created_at
		FROM airport_fare_configs
		WHERE vehicle_type = $1 AND is_active = true
		ORDER BY created_at DESC
		LIMIT 1
	`

	var row airportConfigRow
	if err := r.db.GetContext(ctx, &row, query, vehicleType); err != nil {
		return nil, notFoundOr(err, "airport_fare_config", vehicleType)
	}

	s := newSanitizer("airport_fare_configs")
	return &models.AirportFareConfig{
		ID:              row.ID,
		VehicleType:     row.VehicleType,
		ToAirportFare:   s.amount("to_airport_fare", row.ToAirportFare, 0),
		FromAirportFare: s.amount("from_airport_fare", row.FromAirportFare, 0),
		CreatedAt:       row.CreatedAt,
		Fallbacks:       s.fallbacks,
	}, nil
}

type zoneRow struct {
	ID              string          `db:"id"`
	Name            string          `db:"name"`
	CenterLatitude  float64         `db:"center_latitude"`
	CenterLongitude float64         `db:"center_longitude"`
	RadiusKm        sql.NullFloat64 `db:"radius_km"`
	CreatedAt       time.Time       `db:"created_at"`
}

// GetActiveZones returns every active zone, newest first, with its role resolved.
// Zones without a usable radius are skipped.
func (r *FareConfigRepo) GetActiveZones(ctx context.Context) ([]models.Zone, error) {
	query := `
		SELECT id, name, center_latitude, center_longitude, radius_km, created_at
		FROM zones
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	var rows []zoneRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}

	zones := make([]models.Zone, 0, len(rows))
	for _, row := range rows {
		if !row.RadiusKm.Valid || !finite(row.RadiusKm.Float64) || row.RadiusKm.Float64 < 0 {
			logger.Warn("Skipping zone with invalid radius",
				logger.String("zone_id", row.ID),
				logger.String("zone_name", row.Name))
			continue
		}
		zones = append(zones, models.Zone{
			ID:        row.ID,
			Name:      row.Name,
			Center:    models.Coordinate{Latitude: row.CenterLatitude, Longitude: row.CenterLongitude},
			RadiusKm:  row.RadiusKm.Float64,
			Active:    true,
			Role:      models.ResolveZoneRole(row.Name),
			CreatedAt: row.CreatedAt,
		})
	}
	return zones, nil
}

func notFoundOr(err error, kind, key string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewConfigNotFound(kind, key)
	}
	return fmt.Errorf("failed to query %s: %w", kind, err)
}
