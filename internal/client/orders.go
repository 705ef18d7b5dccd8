package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andreasstove999/bar-ordering/internal/menu"
	"github.com/andreasstove999/bar-ordering/internal/order"
)

func (c *Client) ListOrders(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, req order.PlaceRequest) (*order.Order, error) {
	var o order.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus refuses statuses outside the closed set without a round trip.
func (c *Client) UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", order.ErrInvalidStatus, status)
	}

	body := struct {
		ID     string       `json:"id"`
		Status order.Status `json:"status"`
	}{ID: id, Status: status}

	var o order.Order
	if err := c.do(ctx, http.MethodPatch, "/api/orders", body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) Menu(ctx context.Context) ([]menu.Section, error) {
	var sections []menu.Section
	if err := c.do(ctx, http.MethodGet, "/api/menu", nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}
