package location

import (
	"context"
	"time"

	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// LocationUC defines the location business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nebengjek-fare/services/location LocationUC,PositionSource
type LocationUC interface {
	AppendPoint(ctx context.Context, tripID string, point models.LocationPoint) (*models.LocationPoint, error)
	ComputeTrajectoryDistance(ctx context.Context, tripID string) (*models.TrajectoryDistance, error)
	// StartTracking samples source for tripID until the returned Session is stopped.
	// The GPS collaborator supplying source owns the session.
	StartTracking(ctx context.Context, tripID string, source PositionSource, interval time.Duration) (Session, error)
}

// PositionSource yields the current position of the vehicle serving a trip
type PositionSource interface {
	Position(ctx context.Context, tripID string) (models.LocationPoint, error)
}

// Session is a running sampling loop for one trip. The caller that started it owns it.
type Session interface {
	ID() string
	TripID() string
	// Stop cancels the loop and waits for it to exit. Safe to call more than once.
	Stop()
	Done() <-chan struct{}
	Stats() models.TrackingStats
}
