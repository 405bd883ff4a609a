package models

import "time"

// Fallback records a configuration value that was malformed and replaced
type Fallback struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
}

// FareMatrixEntry holds the rates for a (booking type, vehicle type) pair
type FareMatrixEntry struct {
	ID              string      `json:"id"`
	BookingType     BookingType `json:"booking_type"`
	VehicleType     string      `json:"vehicle_type"`
	BaseFare        float64     `json:"base_fare"`
	PerKmRate       float64     `json:"per_km_rate"`
	SurgeMultiplier float64     `json:"surge_multiplier"`
	PlatformFee     float64     `json:"platform_fee"`
	MinimumFare     float64     `json:"minimum_fare"`
	CreatedAt       time.Time   `json:"created_at"`
	Fallbacks       []Fallback  `json:"fallbacks,omitempty"`
}

// RentalPackage is an hourly package for a vehicle type
type RentalPackage struct {
	ID              string     `json:"id"`
	VehicleType     string     `json:"vehicle_type"`
	DurationHours   int        `json:"duration_hours"`
	PackageName     string     `json:"package_name"`
	BaseFare        float64    `json:"base_fare"`
	KmIncluded      float64    `json:"km_included"`
	ExtraKmRate     float64    `json:"extra_km_rate"`
	ExtraMinuteRate float64    `json:"extra_minute_rate"`
	IsPopular       bool       `json:"is_popular"`
	CreatedAt       time.Time  `json:"created_at"`
	Fallbacks       []Fallback `json:"fallbacks,omitempty"`
}

// OutstationFareConfig holds per-km outstation pricing shared by one-way and round trips
type OutstationFareConfig struct {
	ID                    string     `json:"id"`
	VehicleType           string     `json:"vehicle_type"`
	BaseFare              float64    `json:"base_fare"`
	PerKmRate             float64    `json:"per_km_rate"`
	DriverAllowancePerDay float64    `json:"driver_allowance_per_day"`
	DailyKmLimit          float64    `json:"daily_km_limit"`
	CreatedAt             time.Time  `json:"created_at"`
	Fallbacks             []Fallback `json:"fallbacks,omitempty"`
}

// SlabTier is one fixed-price distance tier
type SlabTier struct {
	LimitKm float64 `json:"limit_km"`
	Fare    float64 `json:"fare"`
}

// SlabTierCount and SlabTierStepKm describe the stored slab table: 10, 20, ... 150 km
const (
	SlabTierCount  = 15
	SlabTierStepKm = 10
)

// OutstationSlabPackage is the tiered table used for same-day round trips
type OutstationSlabPackage struct {
	ID          string     `json:"id"`
	VehicleType string     `json:"vehicle_type"`
	Tiers       []SlabTier `json:"tiers"` // ascending by LimitKm
	ExtraKmRate float64    `json:"extra_km_rate"`
	CreatedAt   time.Time  `json:"created_at"`
	Fallbacks   []Fallback `json:"fallbacks,omitempty"`
}

// AirportFareConfig holds the two directional flat fares
type AirportFareConfig struct {
	ID              string     `json:"id"`
	VehicleType     string     `json:"vehicle_type"`
	ToAirportFare   float64    `json:"to_airport_fare"`
	FromAirportFare float64    `json:"from_airport_fare"`
	CreatedAt       time.Time  `json:"created_at"`
	Fallbacks       []Fallback `json:"fallbacks,omitempty"`
}
