package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// FareRepo stores priced trips in fare_breakdowns
type FareRepo struct {
	db *sqlx.DB
}

// NewFareRepository creates a new breakdown store
func NewFareRepository(db *sqlx.DB) *FareRepo {
	return &FareRepo{db: db}
}

// SaveFareBreakdown inserts breakdown under a fresh record id and returns that id
func (r *FareRepo) SaveFareBreakdown(ctx context.Context, tripID string, distanceKm float64, breakdown *models.FareBreakdown) (string, error) {
	details, err := json.Marshal(breakdown.Details)
	if err != nil {
		return "", fmt.Errorf("failed to marshal fare details: %w", err)
	}

	recordID := uuid.New().String()
	record := map[string]interface{}{
		"id":               recordID,
		"trip_id":          tripID,
		"booking_type":     string(breakdown.BookingType),
		"vehicle_type":     breakdown.VehicleType,
		"distance_km":      distanceKm,
		"base_fare":        breakdown.BaseFare,
		"distance_fare":    breakdown.DistanceFare,
		"time_charges":     breakdown.TimeCharges,
		"surge_charges":    breakdown.SurgeCharges,
		"deadhead_charges": breakdown.DeadheadCharges,
		"extra_km_charges": breakdown.ExtraKmCharges,
		"driver_allowance": breakdown.DriverAllowance,
		"platform_fee":     breakdown.PlatformFee,
		"gst_charges":      breakdown.GSTCharges,
		"gst_platform_fee": breakdown.GSTPlatformFee,
		"total_fare":       breakdown.TotalFare,
		"details":          details,
		"created_at":       models.Now(),
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO fare_breakdowns (
			id, trip_id, booking_type, vehicle_type, distance_km,
			base_fare, distance_fare, time_charges, surge_charges, deadhead_charges,
			extra_km_charges, driver_allowance, platform_fee, gst_charges, gst_platform_fee,
			total_fare, details, created_at
		) VALUES (
			:id, :trip_id, :booking_type, :vehicle_type, :distance_km,
			:base_fare, :distance_fare, :time_charges, :surge_charges, :deadhead_charges,
			:extra_km_charges, :driver_allowance, :platform_fee, :gst_charges, :gst_platform_fee,
			:total_fare, :details, :created_at
		)
	`, record)
	if err != nil {
		return "", fmt.Errorf("failed to insert fare breakdown: %w", err)
	}

	return recordID, nil
}
