package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/nebengjek-fare/internal/pkg/constants"
	"github.com/piresc/nebengjek-fare/internal/pkg/database"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// seqWidth is the width of the zero-padded arrival number prefixed to each member.
// Redis orders equal scores by member bytes, so samples sharing a timestamp list
// in arrival order.
const seqWidth = 20

// LocationRepo keeps each trip's samples in a Redis sorted set scored by
// sample time in microseconds
type LocationRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewLocationRepository creates a new location repository. Trip keys expire ttl after the last append.
func NewLocationRepository(redisClient *database.RedisClient, ttl time.Duration) *LocationRepo {
	return &LocationRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// AppendPoint adds point to its trip's sorted set and refreshes the key TTL
func (r *LocationRepo) AppendPoint(ctx context.Context, point *models.LocationPoint) error {
	data, err := json.Marshal(point)
	if err != nil {
		return fmt.Errorf("failed to marshal location point: %w", err)
	}

	key := fmt.Sprintf(constants.KeyTripPoints, point.TripID)
	seqKey := fmt.Sprintf(constants.KeyTripPointsSeq, point.TripID)
	seq, err := r.redisClient.Incr(ctx, seqKey)
	if err != nil {
		return fmt.Errorf("failed to store location point: %w", err)
	}

	member := fmt.Sprintf("%0*d|%s", seqWidth, seq, data)
	score := float64(point.Timestamp.UnixMicro())
	if err := r.redisClient.ZAdd(ctx, key, score, member); err != nil {
		return fmt.Errorf("failed to store location point: %w", err)
	}

	if r.ttl > 0 {
		for _, k := range []string{key, seqKey} {
			if err := r.redisClient.Expire(ctx, k, r.ttl); err != nil {
				return fmt.Errorf("failed to set location TTL: %w", err)
			}
		}
	}
	return nil
}

// pointPayload strips the arrival prefix from a sorted set member
func pointPayload(member string) string {
	if len(member) > seqWidth && member[seqWidth] == '|' {
		return member[seqWidth+1:]
	}
	return member
}

// ListPoints returns the trip's samples in timestamp order, arrival order within
// the same timestamp. Members that fail to decode are skipped.
func (r *LocationRepo) ListPoints(ctx context.Context, tripID string) ([]models.LocationPoint, error) {
	key := fmt.Sprintf(constants.KeyTripPoints, tripID)
	members, err := r.redisClient.ZRange(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read location points: %w", err)
	}

	points := make([]models.LocationPoint, 0, len(members))
	for _, m := range members {
		var p models.LocationPoint
		if err := json.Unmarshal([]byte(pointPayload(m)), &p); err != nil {
			logger.Warn("Skipping undecodable location point",
				logger.String("trip_id", tripID),
				logger.Err(err))
			continue
		}
		points = append(points, p)
	}
	return points, nil
}
