package usecase

import (
	"math"

	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// Regular prices a metered city ride. The first RegularBundledKm are covered by the
// base fare; a drop between the inner and outer rings adds a deadhead charge.
// minimum_fare is reported but not enforced.
func (e *PricingEngine) Regular(vehicleType string, facts models.TripFacts, matrix *models.FareMatrixEntry, zones []models.Zone) *models.FareBreakdown {
	extraKm := math.Max(0, facts.DistanceKm-e.cfg.RegularBundledKm)
	zone := ClassifyZone(facts.Drop, zones)
	deadhead, deadheadKm := DeadheadCharge(facts.Drop, e.cfg.DeadheadReference, matrix.PerKmRate, zone)

	b := &models.FareBreakdown{
		BookingType:     models.BookingTypeRegular,
		VehicleType:     vehicleType,
		BaseFare:        matrix.BaseFare,
		DistanceFare:    extraKm * matrix.PerKmRate,
		DeadheadCharges: deadhead,
		PlatformFee:     matrix.PlatformFee,
	}
	b.SurgeCharges = (b.BaseFare + b.DistanceFare + b.DeadheadCharges) * (matrix.SurgeMultiplier - 1)

	b.Details = map[string]interface{}{
		"bundled_km":           e.cfg.RegularBundledKm,
		"extra_km":             extraKm,
		"per_km_rate":          matrix.PerKmRate,
		"surge_multiplier":     matrix.SurgeMultiplier,
		"minimum_fare":         matrix.MinimumFare,
		"zone_status":          string(zone.Status),
		"deadhead_distance_km": deadheadKm,
	}
	if zone.ZoneName != "" {
		b.Details["zone_name"] = zone.ZoneName
	}
	if zone.Reason != "" {
		b.Details["zone_reason"] = zone.Reason
	}

	return e.settle(b, true, copyFallbacks(matrix.Fallbacks))
}
