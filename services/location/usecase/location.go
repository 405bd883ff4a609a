package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/piresc/nebengjek-fare/internal/utils"
	"github.com/piresc/nebengjek-fare/services/location"
)

// LocationUC implements the location.LocationUC interface
type LocationUC struct {
	cfg  models.LocationConfig
	repo location.LocationRepo
	now  func() time.Time
}

// NewLocationUC creates a new location use case
func NewLocationUC(cfg *models.Config, repo location.LocationRepo) *LocationUC {
	return &LocationUC{
		cfg:  cfg.Location,
		repo: repo,
		now:  models.Now,
	}
}

// AppendPoint validates a sample, stamps it with the trip, a timestamp when missing
// and its geohash, then stores it
func (uc *LocationUC) AppendPoint(ctx context.Context, tripID string, point models.LocationPoint) (*models.LocationPoint, error) {
	tripID = strings.TrimSpace(tripID)
	if tripID == "" {
		return nil, fmt.Errorf("%w: trip_id is required", models.ErrInvalidLocation)
	}
	if !point.Coordinate.Valid() {
		return nil, fmt.Errorf("%w: latitude %v longitude %v", models.ErrInvalidLocation, point.Latitude, point.Longitude)
	}

	point.TripID = tripID
	if point.Timestamp.IsZero() {
		point.Timestamp = uc.now()
	}
	point.Geohash = utils.EncodeCoordinate(point.Coordinate, uc.cfg.GeohashPrecision)

	if err := uc.repo.AppendPoint(ctx, &point); err != nil {
		return nil, fmt.Errorf("failed to store location point: %w", err)
	}
	return &point, nil
}

// ComputeTrajectoryDistance rebuilds the travelled distance of a trip from its stored samples
func (uc *LocationUC) ComputeTrajectoryDistance(ctx context.Context, tripID string) (*models.TrajectoryDistance, error) {
	points, err := uc.repo.ListPoints(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list location points: %w", err)
	}

	result := AccumulateDistance(points, uc.cfg.MaxHopKm)
	result.TripID = tripID

	if result.DiscardedHops > 0 {
		logger.Debug("Discarded implausible location hops",
			logger.String("trip_id", tripID),
			logger.Int("discarded_hops", result.DiscardedHops),
			logger.Int("points", len(points)))
	}
	return &result, nil
}
