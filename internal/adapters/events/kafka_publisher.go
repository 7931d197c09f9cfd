package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/ports"

	skafka "github.com/segmentio/kafka-go"
)

// Writer is the subset of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// TransitionEvent is the message body published for every transition.
type TransitionEvent struct {
	Resource   string    `json:"resource"`
	DocumentID string    `json:"document_id"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	At         time.Time `json:"at"`
}

// KafkaPublisher emits document transitions to a topic, keyed by document id
// so every change to one document lands on the same partition.
type KafkaPublisher struct {
	writer Writer
}

var _ ports.TransitionRecorder = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokerURL, topic string) *KafkaPublisher {
	w := &skafka.Writer{
		Addr:                   skafka.TCP(brokerURL),
		Topic:                  topic,
		Balancer:               &skafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

// NewKafkaPublisherWithWriter allows injecting a test writer.
func NewKafkaPublisherWithWriter(w Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) RecordTransition(ctx context.Context, t domain.Transition) error {
	b, err := json.Marshal(TransitionEvent{
		Resource:   string(t.Resource),
		DocumentID: t.DocumentID,
		From:       string(t.From),
		To:         string(t.To),
		At:         t.At.UTC(),
	})
	if err != nil {
		return fmt.Errorf("publish transition: marshal: %w", err)
	}

	msg := skafka.Message{Key: []byte(t.DocumentID), Value: b}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish transition %s/%s: %w", t.Resource, t.DocumentID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
