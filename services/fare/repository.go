package fare

import (
	"context"

	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// FareConfigRepo is the read-only configuration store. Every lookup returns the
// freshest active row for its key, or an error that Is models.ErrConfigurationNotFound.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nebengjek-fare/services/fare FareConfigRepo,FareRepo
type FareConfigRepo interface {
	GetFareMatrix(ctx context.Context, bookingType models.BookingType, vehicleType string) (*models.FareMatrixEntry, error)
	GetRentalPackage(ctx context.Context, vehicleType string, hours int) (*models.RentalPackage, error)
	GetOutstationConfig(ctx context.Context, vehicleType string) (*models.OutstationFareConfig, error)
	GetSlabPackage(ctx context.Context, vehicleType string) (*models.OutstationSlabPackage, error)
	GetAirportConfig(ctx context.Context, vehicleType string) (*models.AirportFareConfig, error)
	GetActiveZones(ctx context.Context) ([]models.Zone, error)
}

// FareRepo persists computed breakdowns
type FareRepo interface {
	SaveFareBreakdown(ctx context.Context, tripID string, distanceKm float64, breakdown *models.FareBreakdown) (string, error)
}
