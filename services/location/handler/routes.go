package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-fare/services/location"
	httpHandler "github.com/piresc/nebengjek-fare/services/location/handler/http"
)

// Handler combines all handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
}

// NewHandler creates a new combined handler
func NewHandler(locationUC location.LocationUC) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
	}
}

// RegisterRoutes registers the trip location routes on an authenticated /api/v1 group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/trips/:id/locations", h.locationHTTP.AppendPoint)
	api.GET("/trips/:id/distance", h.locationHTTP.GetDistance)
}
