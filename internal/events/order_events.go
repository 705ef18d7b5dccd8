package events

import (
	"time"

	"github.com/andreasstove999/bar-ordering/internal/order"
)

const (
	EventTypeOrderPlaced        = "OrderPlaced"
	EventTypeOrderStatusChanged = "OrderStatusChanged"

	orderPlacedSchema        = "bar.order.placed.v1"
	orderStatusChangedSchema = "bar.order.status_changed.v1"
)

type LinePayload struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  int     `json:"qty"`
	Price     float64 `json:"price"`
	Comment   string  `json:"comment,omitempty"`
}

type OrderPlacedPayload struct {
	OrderID   string        `json:"orderId"`
	Table     string        `json:"table,omitempty"`
	OrderNote string        `json:"orderNote,omitempty"`
	Status    string        `json:"status"`
	Lines     []LinePayload `json:"lines"`
	Total     string        `json:"total"`
	PlacedAt  time.Time     `json:"placedAt"`
}

type OrderStatusChangedPayload struct {
	OrderID   string    `json:"orderId"`
	Table     string    `json:"table,omitempty"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	ChangedAt time.Time `json:"changedAt"`
}

type OrderPlacedEvent = EventEnvelope[OrderPlacedPayload]

type OrderStatusChangedEvent = EventEnvelope[OrderStatusChangedPayload]

func orderPlacedPayload(o *order.Order) OrderPlacedPayload {
	p := OrderPlacedPayload{
		OrderID:   o.ID,
		Table:     o.Table,
		OrderNote: o.OrderNote,
		Status:    string(o.Status),
		Total:     o.Total().StringFixed(2),
		PlacedAt:  o.CreatedAt.UTC(),
		Lines:     make([]LinePayload, 0, len(o.Lines)),
	}
	for _, l := range o.Lines {
		p.Lines = append(p.Lines, LinePayload{
			ProductID: l.ProductID,
			Name:      l.Name,
			Category:  string(l.Category),
			Quantity:  l.Quantity,
			Price:     l.Price,
			Comment:   l.Comment,
		})
	}
	return p
}
