// Package events delivers outbox records to the configured sink.
package events

import (
	"context"
	"log/slog"
	"strings"

	"pricewatch/internal/pkg/errs"

	"github.com/nats-io/nats.go"
	"github.com/segmentio/kafka-go"
)

type Message struct {
	Kind    string
	Topic   string
	Key     string
	Payload []byte
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// KafkaPublisher writes one message per record, keyed so all events for a
// product land on the same partition.
type KafkaPublisher struct {
	writer kafkaMessageWriter
}

// kafkaMessageWriter abstracts kafka.Writer for testability.
type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	var addrs []string
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(addrs...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}}
}

// NewKafkaPublisherWith is only for tests to inject a fake writer.
func NewKafkaPublisherWith(w kafkaMessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg Message) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: msg.Topic,
		Key:   []byte(msg.Key),
		Value: msg.Payload,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(msg.Kind)},
		},
	})
	if err != nil {
		return errs.Wrap(err, "kafka write")
	}
	return nil
}

func (p *KafkaPublisher) Close() error { return p.writer.Close() }

type natsConn interface {
	Publish(subj string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Drain() error
}

// NATSPublisher publishes on subject "<topic>.<kind>".
type NATSPublisher struct {
	conn natsConn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url, nats.Name("pricewatch-outbox"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, errs.Wrap(err, "nats connect")
	}
	return &NATSPublisher{conn: nc}, nil
}

// NewNATSPublisherWith is only for tests to inject a fake connection.
func NewNATSPublisherWith(c natsConn) *NATSPublisher {
	return &NATSPublisher{conn: c}
}

func (p *NATSPublisher) Publish(ctx context.Context, msg Message) error {
	if err := p.conn.Publish(msg.Topic+"."+msg.Kind, msg.Payload); err != nil {
		return errs.Wrap(err, "nats publish")
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return errs.Wrap(err, "nats flush")
	}
	return nil
}

func (p *NATSPublisher) Close() error { return p.conn.Drain() }

// LogPublisher only logs; it is the default for local runs.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher { return &LogPublisher{} }

func (LogPublisher) Publish(_ context.Context, msg Message) error {
	slog.Info("Event published",
		"kind", msg.Kind,
		"topic", msg.Topic,
		"key", msg.Key,
		"bytes", len(msg.Payload))
	return nil
}

func (LogPublisher) Close() error { return nil }
