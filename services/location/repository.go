package location

import (
	"context"

	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// LocationRepo is the per-trip sample store
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nebengjek-fare/services/location LocationRepo
type LocationRepo interface {
	// AppendPoint stores one sample for point.TripID
	AppendPoint(ctx context.Context, point *models.LocationPoint) error
	// ListPoints returns every stored sample of a trip ordered by timestamp
	ListPoints(ctx context.Context, tripID string) ([]models.LocationPoint, error)
}
