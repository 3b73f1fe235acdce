package waybill_events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freightforge/internal/entities"
	retrierconfig "freightforge/pkg/retrier"
	"freightforge/pkg/retrier/backoff_adapter"

	"github.com/IBM/sarama"
)

const target = "kafka"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Publisher struct {
	producer producer
	retrier  retrier
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return NewWithRetrier(producer, topic, backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}))
}

func NewWithRetrier(producer producer, topic string, retrier retrier) *Publisher {
	return &Publisher{
		producer: producer,
		retrier:  retrier,
		topic:    topic,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.WaybillEvent) error {
	msg, err := toMessage(p.topic, event)
	if err != nil {
		return err
	}

	var attempt uint64
	start := time.Now()
	err = p.retrier.ExecuteWithContext(ctx, func(context.Context) error {
		attempt++
		_, _, err := p.producer.SendMessage(msg)
		return err
	})

	outcome := outcomeOf(err)
	GatewayRequestDuration.WithLabelValues(target, "SendMessage", outcome).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(target, "SendMessage", outcome).Inc()
	}

	if err != nil {
		return fmt.Errorf("publish %s for %s: %w", event.Type, event.Reference, err)
	}
	return nil
}

func isRetryable(err error) bool {
	var kerr sarama.KError
	if errors.As(err, &kerr) {
		switch kerr {
		case sarama.ErrNotLeaderForPartition,
			sarama.ErrLeaderNotAvailable,
			sarama.ErrRequestTimedOut,
			sarama.ErrNotEnoughReplicas,
			sarama.ErrNotEnoughReplicasAfterAppend:
			return true
		}
		return false
	}
	return errors.Is(err, sarama.ErrOutOfBrokers)
}

func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var kerr sarama.KError
	if errors.As(err, &kerr) {
		return kerr.Error()
	}
	return "error"
}

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct{}

func NewNop() NopPublisher {
	return NopPublisher{}
}

func (NopPublisher) Publish(context.Context, entities.WaybillEvent) error {
	return nil
}
