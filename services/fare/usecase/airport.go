package usecase

import (
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/piresc/nebengjek-fare/internal/utils"
)

// Airport transfer directions
const (
	DirectionToAirport   = "to_airport"
	DirectionFromAirport = "from_airport"
)

// AirportDirection treats the endpoint closer to the city center as the origin.
// Ties count as a trip to the airport.
func AirportDirection(pickup, drop, center models.Coordinate) (direction string, pickupKm, dropKm float64) {
	pickupKm = utils.DistanceKm(pickup, center)
	dropKm = utils.DistanceKm(drop, center)
	if pickupKm <= dropKm {
		return DirectionToAirport, pickupKm, dropKm
	}
	return DirectionFromAirport, pickupKm, dropKm
}

// Airport prices a flat-fare airport transfer with no GST or platform fee
func (e *PricingEngine) Airport(vehicleType string, facts models.TripFacts, cfg *models.AirportFareConfig) *models.FareBreakdown {
	direction, pickupKm, dropKm := AirportDirection(facts.Pickup, facts.Drop, e.cfg.CityCenter)

	fare := cfg.FromAirportFare
	if direction == DirectionToAirport {
		fare = cfg.ToAirportFare
	}

	b := &models.FareBreakdown{
		BookingType: models.BookingTypeAirport,
		VehicleType: vehicleType,
		BaseFare:    fare,
	}
	b.Details = map[string]interface{}{
		"direction":           direction,
		"pickup_to_center_km": pickupKm,
		"drop_to_center_km":   dropKm,
	}

	return e.settle(b, false, copyFallbacks(cfg.Fallbacks))
}
