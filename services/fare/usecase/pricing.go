package usecase

import (
	"math"
	"time"

	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// PricingEngine runs the booking-type algorithms over already resolved configuration.
// It holds no mutable state and is safe for concurrent use.
type PricingEngine struct {
	cfg models.PricingConfig
	now func() time.Time
}

// NewPricingEngine creates a pricing engine. now defaults to models.Now.
func NewPricingEngine(cfg models.PricingConfig, now func() time.Time) *PricingEngine {
	if now == nil {
		now = models.Now
	}
	return &PricingEngine{cfg: cfg, now: now}
}

// RoundFare rounds to the nearest integer with halves going up
func RoundFare(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// settle replaces invalid components, applies GST when taxed and computes the total.
// Every substitution is appended to the details under "fallbacks".
func (e *PricingEngine) settle(b *models.FareBreakdown, taxed bool, fallbacks []models.Fallback) *models.FareBreakdown {
	if b.Details == nil {
		b.Details = map[string]interface{}{}
	}

	components := []struct {
		field    string
		value    *float64
		fallback float64
	}{
		{"base_fare", &b.BaseFare, 0},
		{"distance_fare", &b.DistanceFare, 0},
		{"time_charges", &b.TimeCharges, 0},
		{"surge_charges", &b.SurgeCharges, 0},
		{"deadhead_charges", &b.DeadheadCharges, 0},
		{"extra_km_charges", &b.ExtraKmCharges, 0},
		{"driver_allowance", &b.DriverAllowance, 0},
		{"platform_fee", &b.PlatformFee, e.cfg.DefaultPlatformFee},
	}
	for _, c := range components {
		if !validAmount(*c.value) {
			*c.value = c.fallback
			fallbacks = append(fallbacks, models.Fallback{Field: c.field, Value: c.fallback})
		}
	}

	if taxed {
		b.GSTCharges = b.TaxableCharges() * e.cfg.GSTRate
		b.GSTPlatformFee = b.PlatformFee * e.cfg.PlatformGSTRate
		if !validAmount(b.GSTCharges) {
			b.GSTCharges = 0
			fallbacks = append(fallbacks, models.Fallback{Field: "gst_charges", Value: 0})
		}
		if !validAmount(b.GSTPlatformFee) {
			b.GSTPlatformFee = 0
			fallbacks = append(fallbacks, models.Fallback{Field: "gst_platform_fee", Value: 0})
		}
	} else {
		b.GSTCharges = 0
		b.GSTPlatformFee = 0
	}

	b.TotalFare = RoundFare(b.Subtotal())

	if len(fallbacks) > 0 {
		b.Details["fallbacks"] = fallbacks
	}
	return b
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func copyFallbacks(lists ...[]models.Fallback) []models.Fallback {
	var out []models.Fallback
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
