package events

import (
	"context"
	"time"

	"cocoresort/pkg/kafka"
	"cocoresort/pkg/logger"
	"cocoresort/pkg/model"
)

const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"

	schemaVersion = "1"
	source        = "reservations"
)

// ReservationEvent is the payload of every reservation event.
type ReservationEvent struct {
	ReservationID   string    `json:"reservation_id"`
	CustomerID      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerContact string    `json:"customer_contact"`
	RoomNumber      int       `json:"room_number"`
	RoomType        string    `json:"room_type"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	NumPeople       int       `json:"num_people"`
	TotalCost       float64   `json:"total_cost"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func NewReservationEvent(r *model.Reservation, at time.Time) ReservationEvent {
	return ReservationEvent{
		ReservationID:   r.ID,
		CustomerID:      r.Customer.ID,
		CustomerName:    r.Customer.Name,
		CustomerContact: r.Customer.Contact,
		RoomNumber:      r.Room.Number,
		RoomType:        r.Room.Type,
		StartDate:       r.StartDate(),
		EndDate:         r.EndDate(),
		NumPeople:       r.NumPeople,
		TotalCost:       r.TotalCost(),
		OccurredAt:      at.UTC(),
	}
}

// Publisher announces reservation lifecycle changes.
type Publisher interface {
	Publish(ctx context.Context, eventType string, r *model.Reservation) error
	Close() error
}

// KafkaPublisher writes events keyed by reservation id, so every event of one
// reservation lands on the same partition.
type KafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, log: log}
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, r *model.Reservation) error {
	msg, err := kafka.NewMessage().
		WithKey(r.ID).
		WithValue(NewReservationEvent(r, time.Now())).
		WithEventType(eventType).
		WithConversationID(r.Customer.Contact).
		WithSchemaVersion(schemaVersion).
		WithSource(source).
		Build()
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher drops every event; used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, *model.Reservation) error { return nil }

func (NopPublisher) Close() error { return nil }
