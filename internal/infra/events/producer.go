package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Типы событий бронирований
const (
	TypeBookingCreated       = "booking_created"
	TypeBookingStatusChanged = "booking_status_changed"
)

// BookingEvent событие жизненного цикла бронирования
type BookingEvent struct {
	Type      string    `json:"type"`
	BookingID string    `json:"bookingId"`
	Status    string    `json:"status"`
	Reason    *string   `json:"reason,omitempty"`
	At        time.Time `json:"at"`
}

// Producer публикует события бронирований в Kafka
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer создает продюсер событий
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{writer: writer, topic: topic}
}

// Publish публикует событие. Key - идентификатор бронирования, чтобы события
// одного бронирования попадали в одну партицию и сохраняли порядок.
func (p *Producer) Publish(ctx context.Context, key string, event BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: failed to marshal event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("events: failed to write message: %w", err)
	}

	return nil
}

// Close закрывает writer
func (p *Producer) Close() error {
	return p.writer.Close()
}
