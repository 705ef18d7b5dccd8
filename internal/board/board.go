package board

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/andreasstove999/bar-ordering/internal/order"
)

const DefaultInterval = 2 * time.Second

var (
	ErrBusy         = errors.New("a status change for this order is already in flight")
	ErrUnknownOrder = errors.New("unknown order")
	ErrAmbiguousID  = errors.New("ambiguous order id")
)

// API is the part of the order API the board uses.
type API interface {
	ListOrders(ctx context.Context) ([]order.Order, error)
	UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error)
}

type Counts struct {
	New      int
	Started  int
	Ready    int
	Archived int
}

// View is what the staff screen renders.
type View struct {
	Active   []order.Order
	Archived []order.Order
	Counts   Counts
	Err      error
	LastSync time.Time
}

// override is a locally applied status change. seq is the mutation
// counter value at the time it was applied.
type override struct {
	status order.Status
	seq    uint64
}

// Board keeps the staff view of all orders. It replaces its state with a
// full fetch on every poll and applies successful status changes locally
// straight away.
type Board struct {
	api      API
	logger   *log.Logger
	interval time.Duration
	onUpdate func(View)

	mu        sync.Mutex
	orders    []order.Order
	busy      map[string]bool
	overrides map[string]override
	mutations uint64
	lastErr   error
	lastSync  time.Time
}

type Option func(*Board)

func WithInterval(d time.Duration) Option {
	return func(b *Board) {
		if d > 0 {
			b.interval = d
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithOnUpdate registers a callback run after every state change. It is
// called without the board lock held.
func WithOnUpdate(fn func(View)) Option {
	return func(b *Board) { b.onUpdate = fn }
}

func New(api API, opts ...Option) *Board {
	b := &Board{
		api:       api,
		logger:    log.New(io.Discard, "", 0),
		interval:  DefaultInterval,
		busy:      map[string]bool{},
		overrides: map[string]override{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run polls until ctx is done. The first fetch happens immediately.
// Fetch errors are recorded in the view and retried on the next tick.
func (b *Board) Run(ctx context.Context) error {
	_ = b.Refresh(ctx)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_ = b.Refresh(ctx)
		}
	}
}

// Refresh replaces the local orders with a fresh fetch. Local changes
// applied after the fetch started are kept on top of the result.
func (b *Board) Refresh(ctx context.Context) error {
	b.mu.Lock()
	startSeq := b.mutations
	b.mu.Unlock()

	orders, err := b.api.ListOrders(ctx)

	b.mu.Lock()
	if err != nil {
		b.lastErr = fmt.Errorf("load orders: %w", err)
		b.mu.Unlock()
		b.logger.Printf("refresh: %v", err)
		b.notify()
		return err
	}

	for id, ov := range b.overrides {
		if ov.seq <= startSeq {
			delete(b.overrides, id)
			continue
		}
		if i := indexOf(orders, id); i >= 0 {
			orders[i].Status = ov.status
		}
	}
	b.orders = orders
	b.lastErr = nil
	b.lastSync = time.Now()
	b.mu.Unlock()

	b.notify()
	return nil
}

// Transition asks the API to move order id to status to. The edge is
// checked against the locally known status before any request is sent.
// On success the change is visible at once; on failure local state is
// untouched and the error is kept for display.
func (b *Board) Transition(ctx context.Context, id string, to order.Status) error {
	b.mu.Lock()
	if b.busy[id] {
		b.mu.Unlock()
		return ErrBusy
	}
	i := indexOf(b.orders, id)
	if i < 0 {
		b.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownOrder, id)
	}
	if err := order.ValidateTransition(b.orders[i].Status, to); err != nil {
		b.lastErr = err
		b.mu.Unlock()
		b.notify()
		return err
	}
	b.busy[id] = true
	b.mu.Unlock()

	_, err := b.api.UpdateStatus(ctx, id, to)

	b.mu.Lock()
	delete(b.busy, id)
	if err != nil {
		b.lastErr = fmt.Errorf("update order %s: %w", id, err)
		b.mu.Unlock()
		b.logger.Printf("transition %s -> %s: %v", id, to, err)
		b.notify()
		return err
	}

	b.mutations++
	b.overrides[id] = override{status: to, seq: b.mutations}
	if i := indexOf(b.orders, id); i >= 0 {
		b.orders[i].Status = to
	}
	b.lastErr = nil
	b.mu.Unlock()

	b.notify()
	return nil
}

func (b *Board) Start(ctx context.Context, id string) error {
	return b.Transition(ctx, id, order.StatusStarted)
}

func (b *Board) MarkReady(ctx context.Context, id string) error {
	return b.Transition(ctx, id, order.StatusReady)
}

func (b *Board) Serve(ctx context.Context, id string) error {
	return b.Transition(ctx, id, order.StatusServed)
}

func (b *Board) Archive(ctx context.Context, id string) error {
	return b.Transition(ctx, id, order.StatusArchived)
}

// Resolve expands an id prefix, as shown by ShortID, to a full order id.
func (b *Board) Resolve(prefix string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var match string
	for _, o := range b.orders {
		if o.ID == prefix {
			return o.ID, nil
		}
		if prefix != "" && strings.HasPrefix(o.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
			}
			match = o.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownOrder, prefix)
	}
	return match, nil
}

// Busy reports whether a status change for id is outstanding.
func (b *Board) Busy(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.busy[id]
}

func (b *Board) View() View {
	b.mu.Lock()
	orders := slices.Clone(b.orders)
	v := View{Err: b.lastErr, LastSync: b.lastSync}
	b.mu.Unlock()

	v.Active, v.Archived = order.Classify(orders)
	if v.Active == nil {
		v.Active = []order.Order{}
	}
	if v.Archived == nil {
		v.Archived = []order.Order{}
	}

	for _, o := range v.Active {
		switch o.Status {
		case order.StatusNew:
			v.Counts.New++
		case order.StatusStarted:
			v.Counts.Started++
		case order.StatusReady:
			v.Counts.Ready++
		}
	}
	v.Counts.Archived = len(v.Archived)
	return v
}

func (b *Board) notify() {
	if b.onUpdate != nil {
		b.onUpdate(b.View())
	}
}

func indexOf(orders []order.Order, id string) int {
	return slices.IndexFunc(orders, func(o order.Order) bool { return o.ID == id })
}
