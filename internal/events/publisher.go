package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/andreasstove999/bar-ordering/internal/order"
)

// Sequencer hands out monotonically increasing numbers per partition.
type Sequencer interface {
	NextSequence(ctx context.Context, partitionKey string) (int64, error)
}

// Publisher emits order events to the topic exchange. It satisfies
// order.EventPublisher.
type Publisher struct {
	ch       Channel
	seq      Sequencer
	producer string
	now      func() time.Time
}

func NewPublisher(conn *amqp.Connection, seq Sequencer, producer string) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	p, err := newPublisher(ch, seq, producer)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}
	return p, nil
}

func newPublisher(ch Channel, seq Sequencer, producer string) (*Publisher, error) {
	if err := declareEventsExchange(ch); err != nil {
		return nil, fmt.Errorf("declare events exchange: %w", err)
	}
	if producer == "" {
		producer = defaultProducer
	}
	return &Publisher{ch: ch, seq: seq, producer: producer, now: time.Now}, nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

func (p *Publisher) PublishOrderPlaced(ctx context.Context, o *order.Order) error {
	seq, err := p.seq.NextSequence(ctx, o.ID)
	if err != nil {
		return fmt.Errorf("reserve sequence: %w", err)
	}

	env := OrderPlacedEvent{
		EventName:    EventTypeOrderPlaced,
		EventVersion: 1,
		EventID:      uuid.NewString(),
		Producer:     p.producer,
		PartitionKey: o.ID,
		Sequence:     &seq,
		OccurredAt:   p.now().UTC(),
		Schema:       orderPlacedSchema,
		Payload:      orderPlacedPayload(o),
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal OrderPlaced: %w", err)
	}
	return p.publishJSON(ctx, OrderPlacedRoutingKey, body)
}

func (p *Publisher) PublishStatusChanged(ctx context.Context, o *order.Order, from order.Status) error {
	seq, err := p.seq.NextSequence(ctx, o.ID)
	if err != nil {
		return fmt.Errorf("reserve sequence: %w", err)
	}

	now := p.now().UTC()
	env := OrderStatusChangedEvent{
		EventName:    EventTypeOrderStatusChanged,
		EventVersion: 1,
		EventID:      uuid.NewString(),
		Producer:     p.producer,
		PartitionKey: o.ID,
		Sequence:     &seq,
		OccurredAt:   now,
		Schema:       orderStatusChangedSchema,
		Payload: OrderStatusChangedPayload{
			OrderID:   o.ID,
			Table:     o.Table,
			From:      string(from),
			To:        string(o.Status),
			ChangedAt: now,
		},
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal OrderStatusChanged: %w", err)
	}
	return p.publishJSON(ctx, OrderStatusChangedRoutingKey, body)
}

func (p *Publisher) publishJSON(ctx context.Context, routingKey string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
