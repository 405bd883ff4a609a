package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/piresc/nebengjek-fare/internal/utils"
	"github.com/piresc/nebengjek-fare/services/fare"
)

// FareHandler handles HTTP requests for fare operations
type FareHandler struct {
	fareUC fare.FareUC
}

// NewFareHandler creates a new fare HTTP handler
func NewFareHandler(fareUC fare.FareUC) *FareHandler {
	return &FareHandler{
		fareUC: fareUC,
	}
}

// EstimateRequest is the body of POST /fares/estimate
type EstimateRequest struct {
	BookingType string           `json:"booking_type"`
	VehicleType string           `json:"vehicle_type"`
	Trip        models.TripFacts `json:"trip"`
}

// PriceTripRequest is the body of POST /trips/:id/fare. Distance comes from the stored samples.
type PriceTripRequest struct {
	BookingType     string                    `json:"booking_type"`
	VehicleType     string                    `json:"vehicle_type"`
	DurationMinutes float64                   `json:"duration_minutes"`
	Pickup          models.Coordinate         `json:"pickup"`
	Drop            models.Coordinate         `json:"drop"`
	SelectedHours   int                       `json:"selected_hours,omitempty"`
	TripType        models.OutstationTripType `json:"trip_type,omitempty"`
	ScheduledTime   *time.Time                `json:"scheduled_time,omitempty"`
}

// EstimateFare prices trip facts supplied by the caller without storing anything
func (h *FareHandler) EstimateFare(c echo.Context) error {
	var req EstimateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	breakdown, err := h.fareUC.ComputeFare(c.Request().Context(), models.BookingType(req.BookingType), req.VehicleType, req.Trip)
	if err != nil {
		logger.Warn("Failed to estimate fare",
			logger.String("booking_type", req.BookingType),
			logger.String("vehicle_type", req.VehicleType),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fare computed", breakdown)
}

// PriceTrip measures a trip from its stored location samples, prices and persists it
func (h *FareHandler) PriceTrip(c echo.Context) error {
	tripID := strings.TrimSpace(c.Param("id"))
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	var req PriceTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.fareUC.PriceCompletedTrip(c.Request().Context(), &models.TripCompletedEvent{
		TripID:          tripID,
		BookingType:     req.BookingType,
		VehicleType:     req.VehicleType,
		DurationMinutes: req.DurationMinutes,
		Pickup:          req.Pickup,
		Drop:            req.Drop,
		SelectedHours:   req.SelectedHours,
		TripType:        req.TripType,
		ScheduledTime:   req.ScheduledTime,
	})
	if err != nil {
		logger.Error("Failed to price trip",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip priced", result)
}
