// README: Kafka publisher for booking-confirmed events; optional, best effort.
package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"sawari/internal/modules/booking"
)

// Publisher writes one message per confirmed booking, keyed by booking id.
// Downstream consumers (notifications, reporting) are outside this service.
type Publisher struct {
	writer *kafka.Writer
	log    *zap.Logger
}

func NewPublisher(broker, topic string, log *zap.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Publisher{writer: w, log: log}
}

func (p *Publisher) BookingConfirmed(ctx context.Context, r *booking.Record) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return err
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(r.BookingID),
		Value: payload,
	})
	if err != nil {
		return err
	}
	p.log.Debug("booking event published", zap.String("booking_id", r.BookingID))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
