package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/bar-ordering/internal/menu"
	"github.com/andreasstove999/bar-ordering/internal/order"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	declared   []string
	published  []published
	declareErr error
	publishErr error
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

type fakeSequencer struct {
	next map[string]int64
	err  error
}

func (f *fakeSequencer) NextSequence(_ context.Context, key string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.next == nil {
		f.next = map[string]int64{}
	}
	f.next[key]++
	return f.next[key], nil
}

func sampleOrder() *order.Order {
	return &order.Order{
		ID:        "o-1",
		CreatedAt: time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC),
		Status:    order.StatusNew,
		Table:     "A2",
		Lines: []order.Line{
			{ProductID: "c2", Name: "Espresso Martini", Quantity: 2, Price: 155, Category: menu.Cocktails, Comment: "no foam"},
			{ProductID: "b1", Name: "Lager (40cl)", Quantity: 1, Price: 79, Category: menu.Beer},
		},
	}
}

func TestNewPublisherDeclaresExchange(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, &fakeSequencer{}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"bar.orders.events:topic"}, ch.declared)
	assert.Equal(t, defaultProducer, p.producer)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)

	_, err = newPublisher(&fakeChannel{declareErr: errors.New("access refused")}, &fakeSequencer{}, "x")
	require.Error(t, err)
}

func TestPublishOrderPlaced(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, &fakeSequencer{}, "order-service")
	require.NoError(t, err)

	require.NoError(t, p.PublishOrderPlaced(context.Background(), sampleOrder()))
	require.Len(t, ch.published, 1)

	msg := ch.published[0]
	assert.Equal(t, EventsExchange, msg.exchange)
	assert.Equal(t, OrderPlacedRoutingKey, msg.key)
	assert.Equal(t, "application/json", msg.msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.msg.DeliveryMode)

	var env OrderPlacedEvent
	require.NoError(t, json.Unmarshal(msg.msg.Body, &env))
	require.NoError(t, env.Validate(EventTypeOrderPlaced, 1))
	require.NotNil(t, env.Sequence)
	assert.Equal(t, int64(1), *env.Sequence)
	assert.Equal(t, "o-1", env.PartitionKey)
	assert.Equal(t, orderPlacedSchema, env.Schema)
	assert.Equal(t, "389.00", env.Payload.Total)
	assert.Equal(t, "NY", env.Payload.Status)
	require.Len(t, env.Payload.Lines, 2)
	assert.Equal(t, "Cocktails", env.Payload.Lines[0].Category)
	assert.Equal(t, "no foam", env.Payload.Lines[0].Comment)
}

func TestPublishStatusChangedSequencesPerOrder(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, &fakeSequencer{}, "order-service")
	require.NoError(t, err)

	o := sampleOrder()
	require.NoError(t, p.PublishOrderPlaced(context.Background(), o))

	o.Status = order.StatusStarted
	require.NoError(t, p.PublishStatusChanged(context.Background(), o, order.StatusNew))

	require.Len(t, ch.published, 2)
	assert.Equal(t, OrderStatusChangedRoutingKey, ch.published[1].key)

	var env OrderStatusChangedEvent
	require.NoError(t, json.Unmarshal(ch.published[1].msg.Body, &env))
	require.NoError(t, env.Validate(EventTypeOrderStatusChanged, 1))
	assert.Equal(t, int64(2), *env.Sequence)
	assert.Equal(t, "NY", env.Payload.From)
	assert.Equal(t, "PABORJAD", env.Payload.To)
	assert.Equal(t, "A2", env.Payload.Table)
}

func TestPublishErrors(t *testing.T) {
	p, err := newPublisher(&fakeChannel{}, &fakeSequencer{err: errors.New("db down")}, "")
	require.NoError(t, err)

	err = p.PublishOrderPlaced(context.Background(), sampleOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserve sequence")

	p, err = newPublisher(&fakeChannel{publishErr: amqp.ErrClosed}, &fakeSequencer{}, "")
	require.NoError(t, err)
	err = p.PublishStatusChanged(context.Background(), sampleOrder(), order.StatusNew)
	require.ErrorIs(t, err, amqp.ErrClosed)
}

func TestEnvelopeValidate(t *testing.T) {
	env := EventEnvelope[struct{}]{EventName: "A", EventVersion: 1, PartitionKey: "k", EventID: "e"}
	require.NoError(t, env.Validate("A", 1))
	require.Error(t, env.Validate("B", 1))
	require.Error(t, env.Validate("A", 2))

	env.PartitionKey = ""
	require.Error(t, env.Validate("A", 1))
}
