package usecase

import (
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/piresc/nebengjek-fare/internal/utils"
)

// ClassifyZone places point relative to the inner and outer rings.
// The first active zone of each role is used; the two containment tests are independent.
func ClassifyZone(point models.Coordinate, zones []models.Zone) models.ZoneClassification {
	var inner, outer *models.Zone
	for i := range zones {
		z := &zones[i]
		if !z.Active {
			continue
		}
		switch z.Role {
		case models.ZoneRoleInner:
			if inner == nil {
				inner = z
			}
		case models.ZoneRoleOuter:
			if outer == nil {
				outer = z
			}
		}
	}

	if inner == nil || outer == nil {
		return models.ZoneClassification{
			Status: models.ZoneStatusNoDeadhead,
			Reason: models.ZoneReasonUnconfigured,
		}
	}

	if utils.DistanceKm(point, inner.Center) <= inner.RadiusKm {
		return models.ZoneClassification{Status: models.ZoneStatusWithinInner, ZoneName: inner.Name}
	}
	if utils.DistanceKm(point, outer.Center) > outer.RadiusKm {
		return models.ZoneClassification{Status: models.ZoneStatusBeyondOuter, ZoneName: outer.Name}
	}
	return models.ZoneClassification{Status: models.ZoneStatusBetweenRings, ZoneName: outer.Name}
}

// DeadheadCharge is half the drop-to-reference distance billed at perKmRate, only between the rings.
// It returns the charge and the reference distance used.
func DeadheadCharge(drop, reference models.Coordinate, perKmRate float64, zone models.ZoneClassification) (charge, distanceKm float64) {
	if zone.Status != models.ZoneStatusBetweenRings {
		return 0, 0
	}
	distanceKm = utils.DistanceKm(drop, reference)
	return distanceKm / 2 * perKmRate, distanceKm
}
