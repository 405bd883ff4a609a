package models

import (
	"fmt"
	"strings"
	"time"
)

// BookingType selects the pricing algorithm
type BookingType string

const (
	BookingTypeRegular    BookingType = "regular"
	BookingTypeRental     BookingType = "rental"
	BookingTypeOutstation BookingType = "outstation"
	BookingTypeAirport    BookingType = "airport"
)

// ParseBookingType normalizes s and checks it names a known booking type
func ParseBookingType(s string) (BookingType, error) {
	bt := BookingType(strings.ToLower(strings.TrimSpace(s)))
	switch bt {
	case BookingTypeRegular, BookingTypeRental, BookingTypeOutstation, BookingTypeAirport:
		return bt, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBookingType, s)
}

// OutstationTripType distinguishes one-way from round-trip outstation bookings
type OutstationTripType string

const (
	TripTypeOneWay    OutstationTripType = "one_way"
	TripTypeRoundTrip OutstationTripType = "round_trip"
)

// TripFacts are the measured facts of a completed trip
type TripFacts struct {
	DistanceKm      float64            `json:"distance_km"`
	DurationMinutes float64            `json:"duration_minutes"`
	Pickup          Coordinate         `json:"pickup"`
	Drop            Coordinate         `json:"drop"`
	SelectedHours   int                `json:"selected_hours,omitempty"` // rental only
	TripType        OutstationTripType `json:"trip_type,omitempty"`      // outstation only
	ScheduledTime   *time.Time         `json:"scheduled_time,omitempty"` // outstation only
}

// FareBreakdown is the itemized, tax-inclusive fare for one trip.
// It is built once by the pricing engine and never mutated afterwards.
type FareBreakdown struct {
	BookingType     BookingType            `json:"booking_type"`
	VehicleType     string                 `json:"vehicle_type"`
	BaseFare        float64                `json:"base_fare"`
	DistanceFare    float64                `json:"distance_fare"`
	TimeCharges     float64                `json:"time_charges"`
	SurgeCharges    float64                `json:"surge_charges"`
	DeadheadCharges float64                `json:"deadhead_charges"`
	ExtraKmCharges  float64                `json:"extra_km_charges"`
	DriverAllowance float64                `json:"driver_allowance"`
	PlatformFee     float64                `json:"platform_fee"`
	GSTCharges      float64                `json:"gst_charges"`
	GSTPlatformFee  float64                `json:"gst_platform_fee"`
	TotalFare       int64                  `json:"total_fare"`
	Details         map[string]interface{} `json:"details"`
}

// TaxableCharges is the sum of every charge except the platform fee and taxes
func (b *FareBreakdown) TaxableCharges() float64 {
	return b.BaseFare + b.DistanceFare + b.TimeCharges + b.SurgeCharges +
		b.DeadheadCharges + b.ExtraKmCharges + b.DriverAllowance
}

// Subtotal is the unrounded sum of all itemized components
func (b *FareBreakdown) Subtotal() float64 {
	return b.TaxableCharges() + b.PlatformFee + b.GSTCharges + b.GSTPlatformFee
}

// TripCompletedEvent is consumed from the trip.completed topic
type TripCompletedEvent struct {
	TripID          string             `json:"trip_id"`
	BookingType     string             `json:"booking_type"`
	VehicleType     string             `json:"vehicle_type"`
	DurationMinutes float64            `json:"duration_minutes"`
	Pickup          Coordinate         `json:"pickup"`
	Drop            Coordinate         `json:"drop"`
	SelectedHours   int                `json:"selected_hours,omitempty"`
	TripType        OutstationTripType `json:"trip_type,omitempty"`
	ScheduledTime   *time.Time         `json:"scheduled_time,omitempty"`
	CompletedAt     time.Time          `json:"completed_at"`
}

// FareCalculatedEvent is published once a trip has been priced and stored
type FareCalculatedEvent struct {
	TripID     string         `json:"trip_id"`
	RecordID   string         `json:"record_id"`
	DistanceKm float64        `json:"distance_km"`
	Breakdown  *FareBreakdown `json:"breakdown"`
	Timestamp  time.Time      `json:"timestamp"`
}
