package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Topics carrying booking lifecycle and payment events. Downstream consumers
// (reminders, analytics) subscribe per topic.
const (
	TopicBookingCreated     = "booking.created"
	TopicBookingCancelled   = "booking.cancelled"
	TopicBookingRescheduled = "booking.rescheduled"
	TopicPaymentCompleted   = "payment.completed"
)

// BookingEvent is the payload for booking lifecycle topics
type BookingEvent struct {
	BookingID    string `json:"booking_id"`
	BusinessID   string `json:"business_id"`
	ClientEmail  string `json:"client_email"`
	ServiceName  string `json:"service_name"`
	BookingDate  string `json:"booking_date"`
	BookingTime  string `json:"booking_time"`
	Status       string `json:"status"`
	OccurredAtMS int64  `json:"occurred_at_ms"`
}

// PaymentEvent is the payload for payment.completed
type PaymentEvent struct {
	Reference      string  `json:"reference"`
	BookingID      string  `json:"booking_id"`
	BusinessID     string  `json:"business_id"`
	Amount         float64 `json:"amount"`
	PlatformFee    float64 `json:"platform_fee"`
	BusinessAmount float64 `json:"business_amount"`
	Currency       string  `json:"currency"`
	OccurredAtMS   int64   `json:"occurred_at_ms"`
}

// Producer publishes domain events to Kafka. A nil Producer is a valid no-op,
// which keeps event publishing optional in deployments without brokers.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer builds a producer over the given broker list. Brokers is a
// comma-separated address list; an empty list yields a disabled producer.
func NewProducer(brokers string) *Producer {
	addrs := splitBrokers(brokers)
	if len(addrs) == 0 {
		return nil
	}

	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:      addrs,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
	})
	return &Producer{writer: writer}
}

// PublishBookingEvent emits a booking lifecycle event, keyed by booking id so
// per-booking ordering holds
func (p *Producer) PublishBookingEvent(ctx context.Context, topic string, event BookingEvent) error {
	if p == nil {
		return nil
	}
	return p.publish(ctx, topic, event.BookingID, event)
}

// PublishPaymentEvent emits a payment.completed event keyed by reference
func (p *Producer) PublishPaymentEvent(ctx context.Context, event PaymentEvent) error {
	if p == nil {
		return nil
	}
	return p.publish(ctx, TopicPaymentCompleted, event.Reference, event)
}

func (p *Producer) publish(ctx context.Context, topic, key string, payload interface{}) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("stream.publish: marshal payload: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "event_type", Value: []byte(topic)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("stream.publish: write message: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}

func splitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
