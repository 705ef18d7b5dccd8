package checkout

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/andreasstove999/bar-ordering/internal/cart"
	"github.com/andreasstove999/bar-ordering/internal/client"
	"github.com/andreasstove999/bar-ordering/internal/order"
)

// OrderCreator is the part of the order API the gateway needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req order.PlaceRequest) (*order.Order, error)
}

// Gateway turns the guest's cart into a submitted order.
type Gateway struct {
	orders OrderCreator
	logger *log.Logger
}

func NewGateway(orders OrderCreator, logger *log.Logger) *Gateway {
	return &Gateway{orders: orders, logger: logger}
}

// Enter returns the snapshot to review. An empty cart yields
// cart.ErrEmptyCart and the caller goes back to the menu.
func (g *Gateway) Enter(c *cart.Cart) (cart.Snapshot, error) {
	snap := c.Snapshot()
	if len(snap.Lines) == 0 {
		return cart.Snapshot{}, cart.ErrEmptyCart
	}
	return snap, nil
}

// Submit sends the cart as one order. comments maps line id to a comment
// that replaces the one stored on the cart line; it may be nil. The cart is cleared only when the order was
// created; on any failure it is left as is for a retry.
func (g *Gateway) Submit(ctx context.Context, c *cart.Cart, table string, comments map[string]string) (*order.Order, error) {
	req, err := BuildRequest(c.Snapshot(), table, comments)
	if err != nil {
		return nil, err
	}

	o, err := g.orders.CreateOrder(ctx, req)
	if err != nil {
		g.logger.Printf("submit order: %v", err)
		return nil, err
	}

	c.Clear()
	g.logger.Printf("submitted order %s with %d lines", o.ID, len(o.Lines))
	return o, nil
}

// BuildRequest maps a snapshot to the submission body. Comments are kept
// only for categories that take them.
func BuildRequest(snap cart.Snapshot, table string, comments map[string]string) (order.PlaceRequest, error) {
	if len(snap.Lines) == 0 {
		return order.PlaceRequest{}, order.ErrNoLines
	}

	req := order.PlaceRequest{
		Table:     strings.TrimSpace(table),
		OrderNote: strings.TrimSpace(snap.OrderNote),
		Lines:     make([]order.Line, 0, len(snap.Lines)),
	}
	for _, l := range snap.Lines {
		line := order.Line{
			ProductID: l.ID,
			Name:      l.Name,
			Quantity:  l.Qty,
			Price:     l.Price,
			Category:  l.Category,
		}
		if l.Category.AllowsComment() {
			comment := l.Comment
			if v, ok := comments[l.ID]; ok {
				comment = v
			}
			line.Comment = strings.TrimSpace(comment)
		}
		req.Lines = append(req.Lines, line)
	}
	return req, nil
}

// Message is the text shown to the guest for a failed submission.
func Message(err error) string {
	var apiErr *client.APIError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, order.ErrNoLines), errors.Is(err, cart.ErrEmptyCart):
		return "Din order är tom."
	case errors.Is(err, client.ErrNetwork):
		return "Något gick fel när vi skulle skicka ordern. Kontrollera uppkopplingen."
	case errors.As(err, &apiErr) && apiErr.Client() && apiErr.Message != "":
		return "Kunde inte skicka order. " + apiErr.Message
	default:
		return "Kunde inte skicka order. Försök igen."
	}
}
