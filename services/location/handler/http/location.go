package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/piresc/nebengjek-fare/internal/utils"
	"github.com/piresc/nebengjek-fare/services/location"
)

// LocationHandler handles HTTP requests for trip location samples
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// AppendPoint records one GPS sample for the trip in the path
func (h *LocationHandler) AppendPoint(c echo.Context) error {
	tripID := strings.TrimSpace(c.Param("id"))
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	var point models.LocationPoint
	if err := c.Bind(&point); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	stored, err := h.locationUC.AppendPoint(c.Request().Context(), tripID, point)
	if err != nil {
		logger.Warn("Failed to append location point",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Location recorded", stored)
}

// GetDistance returns the distance reconstructed from the trip's samples
func (h *LocationHandler) GetDistance(c echo.Context) error {
	tripID := strings.TrimSpace(c.Param("id"))
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	result, err := h.locationUC.ComputeTrajectoryDistance(c.Request().Context(), tripID)
	if err != nil {
		logger.Error("Failed to compute trip distance",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Distance computed", result)
}
