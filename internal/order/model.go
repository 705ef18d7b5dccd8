package order

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/bar-ordering/internal/menu"
)

// Line is one submitted cart line. Name, price and category are copied
// from the menu when the guest adds the item.
type Line struct {
	ProductID string        `json:"id"`
	Name      string        `json:"name"`
	Quantity  int           `json:"qty"`
	Price     float64       `json:"price"`
	Category  menu.Category `json:"category"`
	Comment   string        `json:"comment"`
}

// UnmarshalJSON defaults an omitted qty to 1. An explicit zero is kept so
// validation can reject it.
func (l *Line) UnmarshalJSON(data []byte) error {
	type wire Line
	aux := struct {
		*wire
		Quantity *int `json:"qty"`
	}{wire: (*wire)(l)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	l.Quantity = 1
	if aux.Quantity != nil {
		l.Quantity = *aux.Quantity
	}
	return nil
}

func (l Line) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Order struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Status    Status    `json:"status"`
	Table     string    `json:"table"`
	OrderNote string    `json:"orderNote"`
	Lines     []Line    `json:"lines"`
}

// Total is the sum of every line's quantity times price.
func (o Order) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range o.Lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}

// PlaceRequest is the body of an order submission.
type PlaceRequest struct {
	Table     string `json:"table,omitempty"`
	OrderNote string `json:"orderNote,omitempty"`
	Lines     []Line `json:"lines"`
}
