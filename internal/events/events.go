package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stay/config"
	"stay/infras/kafka"
	"stay/infras/otel"
	"stay/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated       = "booking.created"
	TypeBookingStatusChanged = "booking.status_changed"
)

type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	HotelID    string    `json:"hotel_id"`
	GuestID    string    `json:"guest_id"`
	Status     string    `json:"status"`
	TotalPrice int64     `json:"total_price,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits booking lifecycle events. Publishing happens after the
// database commit; a failed publish is logged, never rolled back.
type Publisher interface {
	BookingCreated(ctx context.Context, event BookingEvent) error
	BookingStatusChanged(ctx context.Context, event BookingEvent) error
}

type kafkaPublisher struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	if !cfg.Kafka.Enable {
		log.Info().Msg("Kafka disabled, booking events will be dropped")

		return &noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, event BookingEvent) error {
	event.Type = TypeBookingCreated

	return p.publish(ctx, event)
}

func (p *kafkaPublisher) BookingStatusChanged(ctx context.Context, event BookingEvent) error {
	event.Type = TypeBookingStatusChanged

	return p.publish(ctx, event)
}

func (p *kafkaPublisher) publish(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("event.type", event.Type)

	msg := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	if err = p.client.SendMessages(ctx, p.cfg.Kafka.BookingTopic, msg); err != nil {
		log.Error().Err(err).Str("type", event.Type).Str("booking_id", event.BookingID).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}

type noopPublisher struct{}

func (p *noopPublisher) BookingCreated(_ context.Context, _ BookingEvent) error {
	return nil
}

func (p *noopPublisher) BookingStatusChanged(_ context.Context, _ BookingEvent) error {
	return nil
}
