package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/piresc/nebengjek-fare/services/fare/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func newConfigRepo(db *sqlx.DB) *repository.FareConfigRepo {
	return repository.NewFareConfigRepository(&models.Config{Pricing: models.DefaultPricingConfig()}, db)
}

var matrixColumns = []string{
	"id", "booking_type", "vehicle_type", "base_fare", "per_km_rate",
	"surge_multiplier", "platform_fee", "minimum_fare", "created_at",
}

func TestGetFareMatrix_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newConfigRepo(db)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM fare_matrix")).
		WithArgs("regular", "sedan").
		WillReturnRows(sqlmock.NewRows(matrixColumns).
			AddRow("fm-1", "regular", "sedan", 50.0, 12.0, 1.5, 10.0, 80.0, created))

	entry, err := repo.GetFareMatrix(context.Background(), models.BookingTypeRegular, "sedan")

	require.NoError(t, err)
	assert.Equal(t, "fm-1", entry.ID)
	assert.Equal(t, 50.0, entry.BaseFare)
	assert.Equal(t, 12.0, entry.PerKmRate)
	assert.Equal(t, 1.5, entry.SurgeMultiplier)
	assert.Equal(t, 10.0, entry.PlatformFee)
	assert.Equal(t, 80.0, entry.MinimumFare)
	assert.Empty(t, entry.Fallbacks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFareMatrix_SanitizesNullAndInvalid(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newConfigRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM fare_matrix")).
		WithArgs("regular", "bike").
		WillReturnRows(sqlmock.NewRows(matrixColumns).
			AddRow("fm-2", "regular", "bike", nil, math.NaN(), 0.5, nil, -3.0, time.Now()))

	entry, err := repo.GetFareMatrix(context.Background(), models.BookingTypeRegular, "bike")

	require.NoError(t, err)
	assert.Equal(t, 0.0, entry.BaseFare)
	assert.Equal(t, 0.0, entry.PerKmRate)
	assert.Equal(t, 1.0, entry.SurgeMultiplier)
	assert.Equal(t, 10.0, entry.PlatformFee)
	assert.Equal(t, 0.0, entry.MinimumFare)
	assert.Equal(t, []models.Fallback{
		{Field: "fare_matrix.base_fare", Value: 0},
		{Field: "fare_matrix.per_km_rate", Value: 0},
		{Field: "fare_matrix.surge_multiplier", Value: 1},
		{Field: "fare_matrix.platform_fee", Value: 10},
		{Field: "fare_matrix.minimum_fare", Value: 0},
	}, entry.Fallbacks)
}

func TestGetFareMatrix_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newConfigRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM fare_matrix")).
		WithArgs("airport", "suv").
		WillReturnRows(sqlmock.NewRows(matrixColumns))

	_, err := repo.GetFareMatrix(context.Background(), models.BookingTypeAirport, "suv")

	assert.ErrorIs(t, err, models.ErrConfigurationNotFound)
	var nf *models.ConfigNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "fare_matrix", nf.Kind)
	assert.Equal(t, "airport/suv", nf.Key)
}

func TestGetFareMatrix_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newConfigRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM fare_matrix")).
		WillReturnError(assert.AnError)

	_, err := repo.GetFareMatrix(context.Background(), models.BookingTypeRegular, "sedan")

	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, models.ErrConfigurationNotFound)
}

func TestGetRentalPackage(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newConfigRepo(db)
	cols := []string{
		"id", "vehicle_type", "duration_hours", "package_name", "base_fare", "km_included",
		"extra_km_rate", "extra_minute_rate", "is_popular", "created_at",
	}

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY is_popular DESC, created_at DESC")).
		WithArgs("sedan", 4).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("rp-1", "sedan", 4, "4hr 40km", 1200.0, 40.0, 14.0, nil, true, time.Now()))

	pkg, err := repo.GetRentalPackage(context.Background(), "sedan", 4)

	require.NoError(t, err)
	assert.Equal(t, "4hr 40km", pkg.PackageName)
	assert.Equal(t, 1200.0, pkg.BaseFare)
	assert.Equal(t, 40.0, pkg.KmIncluded)
	assert.Equal(t, 0.0, pkg.ExtraMinuteRate)
	assert.True(t, pkg.IsPopular)
	assert.Equal(t, []models.Fallback{{Field: "rental_packages.extra_minute_rate", Value: 0}}, pkg.Fallbacks)
}

func TestGetOutstationConfig_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newConfigRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM outstation_fare_configs")).
		WithArgs("auto").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetOutstationConfig(context.Background(), "auto")
	assert.ErrorIs(t, err, models.ErrConfigurationNotFound)
}

func TestGetSlabPackage(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newConfigRepo(db)

	cols := []string{"id", "vehicle_type"}
	values := []driver.Value{"sp-1", "sedan"}
	for k := 1; k <= models.SlabTierCount; k++ {
		cols = append(cols, fmt.Sprintf("km_%d", k*10))
		if k == 3 {
			values = append(values, nil)
			continue
		}
		values = append(values, float64(400+100*k))
	}
	cols = append(cols, "extra_km_rate", "created_at")
	values = append(values, 15.0, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("km_10, km_20, km_30")).
		WithArgs("sedan").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(values...))

	slab, err := repo.GetSlabPackage(context.Background(), "sedan")

	require.NoError(t, err)
	require.Len(t, slab.Tiers, models.SlabTierCount)
	assert.Equal(t, models.SlabTier{LimitKm: 10, Fare: 500}, slab.Tiers[0])
	assert.Equal(t, models.SlabTier{LimitKm: 30, Fare: 0}, slab.Tiers[2])
	assert.Equal(t, models.SlabTier{LimitKm: 150, Fare: 1900}, slab.Tiers[14])
	assert.Equal(t, 15.0, slab.ExtraKmRate)
	assert.Equal(t, []models.Fallback{{Field: "outstation_slab_packages.km_30", Value: 0}}, slab.Fallbacks)
}

func TestGetAirportConfig(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newConfigRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM airport_fare_configs")).
		WithArgs("sedan").
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_type", "to_airport_fare", "from_airport_fare", "created_at"}).
			AddRow("ac-1", "sedan", 800.0, 900.0, time.Now()))

	cfg, err := repo.GetAirportConfig(context.Background(), "sedan")

	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.ToAirportFare)
	assert.Equal(t, 900.0, cfg.FromAirportFare)
}

func TestGetActiveZones(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newConfigRepo(db)
	cols := []string{"id", "name", "center_latitude", "center_longitude", "radius_km", "created_at"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM zones")).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("z-1", "Bengaluru INNER RING", 12.9716, 77.5946, 5.0, time.Now()).
			AddRow("z-2", "Bengaluru Outer Ring", 12.9716, 77.5946, 15.0, time.Now()).
			AddRow("z-3", "Broken", 12.9716, 77.5946, nil, time.Now()).
			AddRow("z-4", "Kempegowda Airport", 13.1986, 77.7066, 3.0, time.Now()))

	zones, err := repo.GetActiveZones(context.Background())

	require.NoError(t, err)
	require.Len(t, zones, 3)
	assert.Equal(t, models.ZoneRoleInner, zones[0].Role)
	assert.Equal(t, models.ZoneRoleOuter, zones[1].Role)
	assert.Equal(t, models.ZoneRoleOther, zones[2].Role)
	assert.True(t, zones[0].Active)
	assert.Equal(t, 15.0, zones[1].RadiusKm)
}

func TestGetActiveZones_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newConfigRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM zones")).WillReturnError(assert.AnError)

	_, err := repo.GetActiveZones(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
