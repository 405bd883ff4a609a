package usecase

import (
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/piresc/nebengjek-fare/internal/utils"
)

// AccumulateDistance sums the great-circle hops between consecutive samples.
// A hop of maxHopKm or more is GPS noise: it is counted as discarded and left out
// of the total. Fewer than two samples yield an empty result.
func AccumulateDistance(points []models.LocationPoint, maxHopKm float64) models.TrajectoryDistance {
	var result models.TrajectoryDistance
	if len(points) < 2 {
		return result
	}

	for i := 1; i < len(points); i++ {
		hop := utils.DistanceKm(points[i-1].Coordinate, points[i].Coordinate)
		if hop < maxHopKm {
			result.DistanceKm += hop
		} else {
			result.DiscardedHops++
		}
	}
	result.PointsUsed = len(points)

	return result
}
