package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reservio/reservation-service/internal/model"
)

const (
	EventReservationCreated = "reservation.created"
	EventReservationDeleted = "reservation.deleted"
)

type ReservationEvent struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	OccurredAt  time.Time         `json:"occurred_at"`
	Reservation model.Reservation `json:"reservation"`
}

type Publisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string) Publisher {
	return &kafkaPublisher{producer: producer, topic: topic}
}

func (p *kafkaPublisher) Publish(_ context.Context, event ReservationEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Type),
		Value: sarama.ByteEncoder(value),
	})
	return err
}

type nopPublisher struct{}

// NewNopPublisher is used when no Kafka brokers are configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, ReservationEvent) error { return nil }

// publish is best effort: a broker outage must not fail the request that
// already committed.
func (s *Service) publish(ctx context.Context, eventType string, rsv model.Reservation) {
	event := ReservationEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		OccurredAt:  time.Now().UTC(),
		Reservation: rsv,
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Error("publish reservation event",
			zap.String("type", eventType),
			zap.Int("reservation_id", rsv.ID),
			zap.Error(err))
	}
}
