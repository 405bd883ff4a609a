package models

import "time"

// Coordinate is a WGS-84 position in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies inside the latitude/longitude ranges
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// LocationPoint is one GPS sample recorded while a trip is active.
// Samples are immutable once recorded and are stored in arrival order.
type LocationPoint struct {
	TripID string `json:"trip_id"`
	Coordinate
	Accuracy  *float64  `json:"accuracy,omitempty"` // meters
	Speed     *float64  `json:"speed,omitempty"`    // m/s
	Heading   *float64  `json:"heading,omitempty"`  // degrees from north
	Altitude  *float64  `json:"altitude,omitempty"` // meters
	Geohash   string    `json:"geohash,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// TrajectoryDistance is the travelled distance reconstructed from a trip's samples
type TrajectoryDistance struct {
	TripID        string  `json:"trip_id"`
	DistanceKm    float64 `json:"distance_km"`
	PointsUsed    int     `json:"points_used"`
	DiscardedHops int     `json:"discarded_hops"`
}

// TrackingStats counts what a tracking session has done so far
type TrackingStats struct {
	Samples  int64 `json:"samples"`
	Failures int64 `json:"failures"`
}
