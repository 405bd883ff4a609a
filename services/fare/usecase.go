package fare

import (
	"context"

	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// FareUC prices trips
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nebengjek-fare/services/fare FareUC
type FareUC interface {
	// ComputeFare prices a trip from already measured facts without side effects
	ComputeFare(ctx context.Context, bookingType models.BookingType, vehicleType string, facts models.TripFacts) (*models.FareBreakdown, error)
	// PriceCompletedTrip measures the trip from its stored samples, prices it, persists it and publishes the result
	PriceCompletedTrip(ctx context.Context, event *models.TripCompletedEvent) (*models.FareCalculatedEvent, error)
}
