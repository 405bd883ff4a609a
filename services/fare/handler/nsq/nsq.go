package nsq

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/nebengjek-fare/internal/pkg/constants"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	nsqpkg "github.com/piresc/nebengjek-fare/internal/pkg/nsq"
	"github.com/piresc/nebengjek-fare/services/fare"
)

const handleTimeout = 30 * time.Second

// FareHandler consumes trip lifecycle events for the fare service
type FareHandler struct {
	fareUC    fare.FareUC
	cfg       models.NSQConfig
	consumers []*nsqpkg.Consumer
}

// NewFareHandler creates a new fare NSQ handler
func NewFareHandler(fareUC fare.FareUC, cfg models.NSQConfig) *FareHandler {
	return &FareHandler{
		fareUC: fareUC,
		cfg:    cfg,
	}
}

// InitNSQConsumers subscribes to trip.completed
func (h *FareHandler) InitNSQConsumers() error {
	channel := h.cfg.Channel
	if channel == "" {
		channel = constants.ChannelFareService
	}

	consumer, err := nsqpkg.NewConsumer(constants.TopicTripCompleted, channel, 0, h.HandleTripCompleted)
	if err != nil {
		return err
	}
	if err := consumer.Connect(h.cfg.Address, h.cfg.LookupdAddresses); err != nil {
		return err
	}
	h.consumers = append(h.consumers, consumer)

	logger.Info("Subscribed to NSQ topic",
		logger.String("topic", constants.TopicTripCompleted),
		logger.String("channel", channel))
	return nil
}

// HandleTripCompleted prices a completed trip. Malformed events and domain
// rejections are dropped; anything else is returned so NSQ requeues the message.
func (h *FareHandler) HandleTripCompleted(msg []byte) error {
	var event models.TripCompletedEvent
	if err := nsqpkg.UnmarshalMessage(msg, &event); err != nil {
		logger.Error("Dropping malformed trip completed event", logger.Err(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	logger.Info("Received trip completed event",
		logger.String("trip_id", event.TripID),
		logger.String("booking_type", event.BookingType),
		logger.String("vehicle_type", event.VehicleType))

	if _, err := h.fareUC.PriceCompletedTrip(ctx, &event); err != nil {
		if permanent(err) {
			logger.Error("Dropping trip completed event",
				logger.String("trip_id", event.TripID),
				logger.Err(err))
			return nil
		}
		return err
	}
	return nil
}

// Stop stops every consumer started by InitNSQConsumers
func (h *FareHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
	h.consumers = nil
}

func permanent(err error) bool {
	return errors.Is(err, models.ErrUnknownBookingType) ||
		errors.Is(err, models.ErrUnknownVehicleType) ||
		errors.Is(err, models.ErrInvalidTripFacts) ||
		errors.Is(err, models.ErrConfigurationNotFound)
}
