package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
)

// Publisher is the raw publish call of an NSQ producer
type Publisher interface {
	Publish(topic string, body []byte) error
}

// Producer handles publishing JSON messages to NSQ topics
type Producer struct {
	publisher Publisher
	producer  *nsq.Producer
}

// NewProducer creates a new NSQ producer and checks nsqd is reachable
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{publisher: producer, producer: producer}, nil
}

// NewProducerWithPublisher wraps any Publisher, used by tests
func NewProducerWithPublisher(p Publisher) *Producer {
	return &Producer{publisher: p}
}

// Publish sends a message to the specified topic
func (p *Producer) Publish(topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.publisher.Publish(topic, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("topic", topic), logger.Int("bytes", len(msgBytes)))
	return nil
}

// Ping checks the connection to nsqd
func (p *Producer) Ping() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	if p.producer != nil {
		p.producer.Stop()
	}
}
