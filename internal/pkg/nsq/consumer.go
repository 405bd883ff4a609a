package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
)

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
	topic    string
}

// NewConsumer creates a consumer for a topic/channel. Call Connect to start receiving.
func NewConsumer(topic, channel string, maxInFlight int, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	if maxInFlight > 0 {
		config.MaxInFlight = maxInFlight
	}

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.AddHandler(WrapHandler(topic, handler))

	return &Consumer{consumer: consumer, topic: topic}, nil
}

// WrapHandler adapts a MessageHandler to go-nsq. A returned error requeues the message.
func WrapHandler(topic string, handler MessageHandler) nsq.Handler {
	return nsq.HandlerFunc(func(message *nsq.Message) error {
		if err := handler(message.Body); err != nil {
			logger.Error("Error processing message",
				logger.String("topic", topic),
				logger.Int("attempts", int(message.Attempts)),
				logger.Err(err))
			return err
		}
		return nil
	})
}

// Connect attaches the consumer to lookupd when addresses are given, otherwise straight to nsqd
func (c *Consumer) Connect(nsqdAddress string, lookupdAddresses []string) error {
	if len(lookupdAddresses) > 0 {
		if err := c.consumer.ConnectToNSQLookupds(lookupdAddresses); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd: %w", err)
		}
		return nil
	}
	if err := c.consumer.ConnectToNSQD(nsqdAddress); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer and waits for in-flight handlers
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
