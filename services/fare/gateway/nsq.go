package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/nebengjek-fare/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengjek-fare/internal/pkg/constants"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/piresc/nebengjek-fare/internal/pkg/nsq"
	"github.com/piresc/nebengjek-fare/internal/pkg/retry"
)

// NSQGateway publishes fare events to NSQ
type NSQGateway struct {
	producer *nsq.Producer
	retrier  *retry.Retrier
	breaker  *circuitbreaker.CircuitBreaker
}

// NewNSQGateway creates a new NSQ gateway. retrier may be nil to publish once;
// breaker may be nil to always attempt the publish.
func NewNSQGateway(producer *nsq.Producer, retrier *retry.Retrier, breaker *circuitbreaker.CircuitBreaker) *NSQGateway {
	return &NSQGateway{
		producer: producer,
		retrier:  retrier,
		breaker:  breaker,
	}
}

// PublishFareCalculated publishes event to the fare.calculated topic
func (g *NSQGateway) PublishFareCalculated(ctx context.Context, event *models.FareCalculatedEvent) error {
	publish := func(ctx context.Context) error {
		return g.producer.Publish(constants.TopicFareCalculated, event)
	}

	attempt := publish
	if g.retrier != nil {
		attempt = func(ctx context.Context) error {
			return g.retrier.Execute(ctx, publish)
		}
	}

	var err error
	if g.breaker != nil {
		err = g.breaker.Execute(ctx, attempt)
	} else {
		err = attempt(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to publish fare calculated event: %w", err)
	}

	logger.Debug("Published fare calculated event",
		logger.String("trip_id", event.TripID),
		logger.String("record_id", event.RecordID))
	return nil
}
