package models

import (
	"strings"
	"time"
)

// ZoneRole tells the deadhead logic what a geofence is used for
type ZoneRole string

const (
	ZoneRoleInner ZoneRole = "inner"
	ZoneRoleOuter ZoneRole = "outer"
	ZoneRoleOther ZoneRole = "other"
)

// ResolveZoneRole maps a configured zone name to its role.
// Names containing "inner ring" or "outer ring" (any case) get the matching role.
func ResolveZoneRole(name string) ZoneRole {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "inner ring"):
		return ZoneRoleInner
	case strings.Contains(n, "outer ring"):
		return ZoneRoleOuter
	default:
		return ZoneRoleOther
	}
}

// Zone is a named circular geofence
type Zone struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Center    Coordinate `json:"center"`
	RadiusKm  float64    `json:"radius_km"`
	Active    bool       `json:"active"`
	Role      ZoneRole   `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
}

// ZoneStatus is the outcome of classifying a drop point against the rings
type ZoneStatus string

const (
	ZoneStatusNoDeadhead   ZoneStatus = "no_deadhead"
	ZoneStatusWithinInner  ZoneStatus = "within_inner"
	ZoneStatusBeyondOuter  ZoneStatus = "beyond_outer"
	ZoneStatusBetweenRings ZoneStatus = "between_rings"
)

// ZoneReasonUnconfigured is reported when the inner or outer ring is missing
const ZoneReasonUnconfigured = "zones_unconfigured"

// ZoneClassification is the result of a zone lookup
type ZoneClassification struct {
	Status   ZoneStatus `json:"status"`
	ZoneName string     `json:"zone_name,omitempty"`
	Reason   string     `json:"reason,omitempty"`
}
