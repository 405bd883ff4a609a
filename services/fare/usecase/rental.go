package usecase

import (
	"math"

	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// Rental prices an hourly package. Distance beyond km_included and minutes beyond
// the selected hours are billed at the package's extra rates; there is no surge,
// platform fee or GST.
func (e *PricingEngine) Rental(vehicleType string, facts models.TripFacts, pkg *models.RentalPackage) *models.FareBreakdown {
	extraKm := math.Max(0, facts.DistanceKm-pkg.KmIncluded)
	extraMinutes := math.Max(0, facts.DurationMinutes-float64(facts.SelectedHours*60))

	b := &models.FareBreakdown{
		BookingType:    models.BookingTypeRental,
		VehicleType:    vehicleType,
		BaseFare:       pkg.BaseFare,
		ExtraKmCharges: extraKm * pkg.ExtraKmRate,
		TimeCharges:    extraMinutes * pkg.ExtraMinuteRate,
	}

	b.Details = map[string]interface{}{
		"package_name":     pkg.PackageName,
		"package_hours":    pkg.DurationHours,
		"km_included":      pkg.KmIncluded,
		"extra_km":         extraKm,
		"extra_minutes":    extraMinutes,
		"within_allowance": b.ExtraKmCharges == 0 && b.TimeCharges == 0,
	}

	return e.settle(b, false, copyFallbacks(pkg.Fallbacks))
}
