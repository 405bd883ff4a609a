package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/piresc/nebengjek-fare/services/fare"
	httpHandler "github.com/piresc/nebengjek-fare/services/fare/handler/http"
	nsqHandler "github.com/piresc/nebengjek-fare/services/fare/handler/nsq"
)

// Handler combines all handlers for the fare service
type Handler struct {
	fareHTTP *httpHandler.FareHandler
	fareNSQ  *nsqHandler.FareHandler
}

// NewHandler creates a new combined handler
func NewHandler(fareUC fare.FareUC, cfg *models.Config) *Handler {
	return &Handler{
		fareHTTP: httpHandler.NewFareHandler(fareUC),
		fareNSQ:  nsqHandler.NewFareHandler(fareUC, cfg.NSQ),
	}
}

// RegisterRoutes registers the fare routes on an authenticated /api/v1 group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/fares/estimate", h.fareHTTP.EstimateFare)
	api.POST("/trips/:id/fare", h.fareHTTP.PriceTrip)
}

// InitNSQConsumers initializes all NSQ consumers
func (h *Handler) InitNSQConsumers() error {
	return h.fareNSQ.InitNSQConsumers()
}

// Stop stops the NSQ consumers
func (h *Handler) Stop() {
	h.fareNSQ.Stop()
}
