package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"time"

	"reception/config"
	"reception/infras/kafka"
	"reception/infras/otel"
	"reception/shared/constant"

	"github.com/rs/zerolog/log"
)

// RoomStatusChanged is emitted on every room status transition so the
// housekeeping console can react without polling.
type RoomStatusChanged struct {
	RoomID     string    `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	BookingID  string    `json:"booking_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// FolioSettled carries the immutable folio snapshot taken at check-out.
type FolioSettled struct {
	BookingID     string    `json:"booking_id"`
	BookingCode   string    `json:"booking_code"`
	RoomRateTotal int64     `json:"room_rate_total"`
	ChargesTotal  int64     `json:"charges_total"`
	PenaltyAmount int64     `json:"penalty_amount"`
	DepositAmount int64     `json:"deposit_amount"`
	BalanceDue    int64     `json:"balance_due"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	RoomStatusChanged(ctx context.Context, event RoomStatusChanged)
	FolioSettled(ctx context.Context, event FolioSettled)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// RoomStatusChanged publishes to the housekeeping topic. Failures are logged
// and never surfaced; a missed event must not fail the transition it follows.
func (p *publisherImpl) RoomStatusChanged(ctx context.Context, event RoomStatusChanged) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".RoomStatusChanged")
	defer scope.End()

	topic := p.cfg.Kafka.Topics.Housekeeping

	err := p.client.SendMessages(ctx, topic, kafka.Message{
		Key:   event.RoomID,
		Value: event,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("topic", topic).Str("roomID", event.RoomID).Msg("failed to publish room status change")
	}
}

// FolioSettled publishes to the folios topic for reporting consumers.
func (p *publisherImpl) FolioSettled(ctx context.Context, event FolioSettled) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".FolioSettled")
	defer scope.End()

	topic := p.cfg.Kafka.Topics.Folios

	err := p.client.SendMessages(ctx, topic, kafka.Message{
		Key:   event.BookingID,
		Value: event,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("topic", topic).Str("bookingID", event.BookingID).Msg("failed to publish folio snapshot")
	}
}
