package fare

import (
	"context"

	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// FareGW publishes fare events
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nebengjek-fare/services/fare FareGW,TrajectoryProvider
type FareGW interface {
	PublishFareCalculated(ctx context.Context, event *models.FareCalculatedEvent) error
}

// TrajectoryProvider reconstructs the travelled distance of a trip from its stored samples
type TrajectoryProvider interface {
	ComputeTrajectoryDistance(ctx context.Context, tripID string) (*models.TrajectoryDistance, error)
}
