package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/nebengjek-fare/internal/pkg/constants"
	"github.com/piresc/nebengjek-fare/internal/pkg/database"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/piresc/nebengjek-fare/services/fare"
)

// CachedFareConfigRepo is a Redis read-through cache in front of another
// configuration store. Redis failures are logged and the lookup goes to the store.
type CachedFareConfigRepo struct {
	next  fare.FareConfigRepo
	redis *database.RedisClient
	ttl   time.Duration
}

// NewCachedFareConfigRepository wraps next with a cache whose entries live for ttl
func NewCachedFareConfigRepository(next fare.FareConfigRepo, redisClient *database.RedisClient, ttl time.Duration) *CachedFareConfigRepo {
	return &CachedFareConfigRepo{
		next:  next,
		redis: redisClient,
		ttl:   ttl,
	}
}

// readThrough returns the cached value at key, or loads, stores and returns it.
// Lookup errors, including not found, are never cached.
func readThrough[T any](ctx context.Context, c *CachedFareConfigRepo, key string, load func() (T, error)) (T, error) {
	var cached T
	raw, err := c.redis.Get(ctx, key)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return cached, nil
		}
		logger.Warn("Discarding malformed cache entry", logger.String("key", key))
	case !errors.Is(err, redis.Nil):
		logger.Warn("Fare config cache read failed",
			logger.String("key", key),
			logger.Err(err))
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to encode fare config for cache", logger.String("key", key), logger.Err(err))
		return value, nil
	}
	if err := c.redis.Set(ctx, key, data, c.ttl); err != nil {
		logger.Warn("Fare config cache write failed",
			logger.String("key", key),
			logger.Err(err))
	}
	return value, nil
}

func (c *CachedFareConfigRepo) GetFareMatrix(ctx context.Context, bookingType models.BookingType, vehicleType string) (*models.FareMatrixEntry, error) {
	key := fmt.Sprintf(constants.KeyFareMatrix, bookingType, vehicleType)
	return readThrough(ctx, c, key, func() (*models.FareMatrixEntry, error) {
		return c.next.GetFareMatrix(ctx, bookingType, vehicleType)
	})
}

func (c *CachedFareConfigRepo) GetRentalPackage(ctx context.Context, vehicleType string, hours int) (*models.RentalPackage, error) {
	key := fmt.Sprintf(constants.KeyRentalPackage, vehicleType, hours)
	return readThrough(ctx, c, key, func() (*models.RentalPackage, error) {
		return c.next.GetRentalPackage(ctx, vehicleType, hours)
	})
}

func (c *CachedFareConfigRepo) GetOutstationConfig(ctx context.Context, vehicleType string) (*models.OutstationFareConfig, error) {
	key := fmt.Sprintf(constants.KeyOutstationConfig, vehicleType)
	return readThrough(ctx, c, key, func() (*models.OutstationFareConfig, error) {
		return c.next.GetOutstationConfig(ctx, vehicleType)
	})
}

func (c *CachedFareConfigRepo) GetSlabPackage(ctx context.Context, vehicleType string) (*models.OutstationSlabPackage, error) {
	key := fmt.Sprintf(constants.KeySlabPackage, vehicleType)
	return readThrough(ctx, c, key, func() (*models.OutstationSlabPackage, error) {
		return c.next.GetSlabPackage(ctx, vehicleType)
	})
}

func (c *CachedFareConfigRepo) GetAirportConfig(ctx context.Context, vehicleType string) (*models.AirportFareConfig, error) {
	key := fmt.Sprintf(constants.KeyAirportConfig, vehicleType)
	return readThrough(ctx, c, key, func() (*models.AirportFareConfig, error) {
		return c.next.GetAirportConfig(ctx, vehicleType)
	})
}

func (c *CachedFareConfigRepo) GetActiveZones(ctx context.Context) ([]models.Zone, error) {
	return readThrough(ctx, c, constants.KeyActiveZones, func() ([]models.Zone, error) {
		return c.next.GetActiveZones(ctx)
	})
}
