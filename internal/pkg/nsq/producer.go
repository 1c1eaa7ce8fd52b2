package nsq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nsqio/go-nsq"

	"github.com/mpawlak/wedrownik/internal/pkg/logger"
	"github.com/mpawlak/wedrownik/internal/pkg/retry"
)

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
	retrier  *retry.Retrier
}

// NewProducer creates a new NSQ producer
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	// Ping the NSQ daemon to ensure connectivity
	err = producer.Ping()
	if err != nil {
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	// Short retry budget so transient daemon hiccups don't drop events while
	// a publish still returns quickly.
	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = 2
	retryConfig.BaseDelay = 50 * time.Millisecond
	retryConfig.MaxDelay = time.Second

	return &Producer{
		producer: producer,
		retrier:  retry.New(retryConfig),
	}, nil
}

// Publish sends a JSON-encoded message to the specified topic
func (p *Producer) Publish(topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.retrier.Execute(context.Background(), func(context.Context) error {
		return p.producer.Publish(topic, msgBytes)
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
