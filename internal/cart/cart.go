package cart

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/bar-ordering/internal/menu"
)

var ErrEmptyCart = errors.New("cart is empty")

// Line is one menu item in the cart. Name, price and category are copied
// when the item is added so later menu edits do not change an open cart.
type Line struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Price    float64       `json:"price"`
	Category menu.Category `json:"category"`
	Qty      int           `json:"qty"`
	Comment  string        `json:"comment,omitempty"`
}

// Snapshot is the persisted form of an unsubmitted order.
type Snapshot struct {
	Lines     []Line `json:"lines"`
	OrderNote string `json:"orderNote"`
}

type Totals struct {
	Count int
	Sum   decimal.Decimal
}

// Cart is the guest's in-progress order. Every mutation is written
// through to the store; store failures are logged and otherwise ignored.
type Cart struct {
	mu     sync.Mutex
	lines  map[string]*Line
	order  []string
	note   string
	store  SnapshotStore
	logger *log.Logger
}

func New(store SnapshotStore, logger *log.Logger) *Cart {
	return &Cart{
		lines:  map[string]*Line{},
		store:  store,
		logger: logger,
	}
}

// Load restores the cart from the store. An unreadable snapshot yields an
// empty cart.
func Load(store SnapshotStore, logger *log.Logger) *Cart {
	c := New(store, logger)
	if store == nil {
		return c
	}

	snap, err := store.Load()
	if err != nil {
		logger.Printf("load cart: %v", err)
		return c
	}

	c.note = snap.OrderNote
	for _, l := range snap.Lines {
		if l.ID == "" || l.Qty <= 0 {
			continue
		}
		if existing, ok := c.lines[l.ID]; ok {
			existing.Qty += l.Qty
			continue
		}
		line := l
		if !line.Category.AllowsComment() {
			line.Comment = ""
		}
		c.lines[l.ID] = &line
		c.order = append(c.order, l.ID)
	}
	return c
}

// Add puts one more of item in the cart.
func (c *Cart) Add(item menu.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.lines[item.ID]; ok {
		l.Qty++
	} else {
		c.lines[item.ID] = &Line{ID: item.ID, Name: item.Name, Price: item.Price, Category: item.Category, Qty: 1}
		c.order = append(c.order, item.ID)
	}
	c.persistLocked()
}

// Remove takes one of id out of the cart. Unknown ids are ignored.
func (c *Cart) Remove(id string) {
	c.Update(id, -1)
}

// Update changes the quantity of id by delta and drops the line when it
// reaches zero. Positive deltas on unknown ids are ignored since the
// cart has no menu data for them.
func (c *Cart) Update(id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.lines[id]
	if !ok || delta == 0 {
		return
	}
	l.Qty += delta
	if l.Qty <= 0 {
		c.deleteLocked(id)
	}
	c.persistLocked()
}

func (c *Cart) SetNote(note string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.note = strings.TrimSpace(note)
	c.persistLocked()
}

// SetComment attaches a comment to the line for id. It reports false when
// the line is not in the cart or its category takes no comments.
func (c *Cart) SetComment(id, comment string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.lines[id]
	if !ok || !l.Category.AllowsComment() {
		return false
	}
	l.Comment = strings.TrimSpace(comment)
	c.persistLocked()
	return true
}

func (c *Cart) Note() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.note
}

func (c *Cart) Qty(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.lines[id]; ok {
		return l.Qty
	}
	return 0
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := Totals{Sum: decimal.Zero}
	for _, id := range c.order {
		l := c.lines[id]
		t.Count += l.Qty
		t.Sum = t.Sum.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Qty))))
	}
	return t
}

// Snapshot copies the lines in the order they were first added.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Clear empties the cart and removes the persisted snapshot.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = map[string]*Line{}
	c.order = nil
	c.note = ""
	if c.store == nil {
		return
	}
	if err := c.store.Clear(); err != nil {
		c.logger.Printf("clear cart: %v", err)
	}
}

func (c *Cart) snapshotLocked() Snapshot {
	snap := Snapshot{Lines: make([]Line, 0, len(c.order)), OrderNote: c.note}
	for _, id := range c.order {
		snap.Lines = append(snap.Lines, *c.lines[id])
	}
	return snap
}

func (c *Cart) deleteLocked(id string) {
	delete(c.lines, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) persistLocked() {
	if c.store == nil {
		return
	}
	if err := c.store.Save(c.snapshotLocked()); err != nil {
		c.logger.Printf("persist cart: %v", err)
	}
}
