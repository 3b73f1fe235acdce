package waybill_events

import (
	"encoding/json"
	"fmt"
	"time"

	"freightforge/internal/entities"

	"github.com/IBM/sarama"
)

type eventMessage struct {
	Type      string    `json:"type"`
	Reference string    `json:"reference"`
	Username  string    `json:"username"`
	Status    string    `json:"status"`
	At        time.Time `json:"at"`
}

func toMessage(topic string, event entities.WaybillEvent) (*sarama.ProducerMessage, error) {
	payload, err := json.Marshal(eventMessage{
		Type:      string(event.Type),
		Reference: event.Reference,
		Username:  event.Username,
		Status:    event.Status.String(),
		At:        event.At.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode event: %w", err)
	}

	return &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(event.Reference),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(event.Type)},
		},
	}, nil
}
