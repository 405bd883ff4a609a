package usecase

import (
	"math"
	"sort"
	"time"

	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// Outstation pricing methods reported in details["method"]
const (
	MethodOneWay = "one_way"
	MethodSlab   = "slab"
	MethodPerKm  = "per_km"
)

// OutstationInputs is the resolved configuration for an outstation trip.
// Nil fields mean the row is not configured. Days is the billable day count the
// configuration was resolved for; zero means compute it from the scheduled time.
type OutstationInputs struct {
	Config *models.OutstationFareConfig
	Slab   *models.OutstationSlabPackage
	Matrix *models.FareMatrixEntry
	Days   int
}

// OutstationDays is the number of billable days between now and the scheduled start, at least one
func (e *PricingEngine) OutstationDays(scheduled *time.Time) int {
	now := e.now()
	ref := now
	if scheduled != nil {
		ref = *scheduled
	}
	diff := now.Sub(ref)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// UsesSlab reports whether a round trip qualifies for the slab table
func (e *PricingEngine) UsesSlab(facts models.TripFacts, days int) bool {
	return facts.TripType == models.TripTypeRoundTrip && days == 1 && facts.DistanceKm <= e.cfg.SlabMaxKm
}

// SelectSlabTier returns the smallest tier covering distanceKm, or the largest tier
// when distanceKm exceeds them all. ok is false for an empty table.
func SelectSlabTier(tiers []models.SlabTier, distanceKm float64) (tier models.SlabTier, ok bool) {
	if len(tiers) == 0 {
		return models.SlabTier{}, false
	}
	sorted := make([]models.SlabTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].LimitKm < sorted[j].LimitKm })

	for _, t := range sorted {
		if t.LimitKm >= distanceKm {
			return t, true
		}
	}
	return sorted[len(sorted)-1], true
}

// Outstation prices an intercity trip. One-way trips bill the distance twice for the
// empty return leg. Same-day round trips within the slab range use the slab table
// when one is configured; other round trips bill the daily allowance in full, or the
// whole distance once the allowance is exceeded, plus a per-day driver allowance.
func (e *PricingEngine) Outstation(vehicleType string, facts models.TripFacts, in OutstationInputs) (*models.FareBreakdown, error) {
	tripType := facts.TripType
	if tripType == "" {
		tripType = models.TripTypeOneWay
	}
	days := in.Days
	if days < 1 {
		days = e.OutstationDays(facts.ScheduledTime)
	}
	d := facts.DistanceKm

	b := &models.FareBreakdown{
		BookingType: models.BookingTypeOutstation,
		VehicleType: vehicleType,
	}
	b.Details = map[string]interface{}{
		"trip_type": string(tripType),
		"days":      days,
	}
	var fallbacks []models.Fallback

	slabTier, hasTier := models.SlabTier{}, false
	if in.Slab != nil {
		slabTier, hasTier = SelectSlabTier(in.Slab.Tiers, d)
	}

	switch {
	case tripType == models.TripTypeOneWay:
		if in.Config == nil {
			return nil, models.NewConfigNotFound("outstation_fare_config", vehicleType)
		}
		b.BaseFare = in.Config.BaseFare
		b.DistanceFare = d * in.Config.PerKmRate * 2
		b.Details["method"] = MethodOneWay
		b.Details["per_km_rate"] = in.Config.PerKmRate
		fallbacks = append(fallbacks, in.Config.Fallbacks...)

	case e.UsesSlab(facts, days) && hasTier:
		extraKm := math.Max(0, d-slabTier.LimitKm)
		b.BaseFare = slabTier.Fare
		b.ExtraKmCharges = extraKm * in.Slab.ExtraKmRate
		b.Details["method"] = MethodSlab
		b.Details["tier_km"] = slabTier.LimitKm
		b.Details["tier_fare"] = slabTier.Fare
		b.Details["extra_km"] = extraKm
		fallbacks = append(fallbacks, in.Slab.Fallbacks...)

	default:
		if in.Config == nil {
			return nil, models.NewConfigNotFound("outstation_fare_config", vehicleType)
		}
		allowance := in.Config.DailyKmLimit * float64(days)
		within := d <= allowance
		b.BaseFare = in.Config.BaseFare
		b.DriverAllowance = in.Config.DriverAllowancePerDay * float64(days)
		if within {
			b.DistanceFare = allowance * in.Config.PerKmRate
		} else {
			b.DistanceFare = d * in.Config.PerKmRate
		}
		b.Details["method"] = MethodPerKm
		b.Details["per_km_rate"] = in.Config.PerKmRate
		b.Details["km_allowance"] = allowance
		b.Details["within_allowance"] = within
		fallbacks = append(fallbacks, in.Config.Fallbacks...)
	}

	if in.Matrix != nil {
		b.PlatformFee = in.Matrix.PlatformFee
		fallbacks = append(fallbacks, in.Matrix.Fallbacks...)
	} else {
		b.PlatformFee = e.cfg.DefaultPlatformFee
		b.Details["platform_fee_source"] = "default"
		fallbacks = append(fallbacks, models.Fallback{Field: "platform_fee", Value: e.cfg.DefaultPlatformFee})
	}

	return e.settle(b, true, fallbacks), nil
}
