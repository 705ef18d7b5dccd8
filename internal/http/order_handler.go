package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/andreasstove999/bar-ordering/internal/menu"
	"github.com/andreasstove999/bar-ordering/internal/middleware"
	"github.com/andreasstove999/bar-ordering/internal/order"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	svc     *order.Service
	logger  *log.Logger
	timeout time.Duration
}

func NewHandler(svc *order.Service, logger *log.Logger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Handler{svc: svc, logger: logger, timeout: timeout}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "order-service",
	})
}

func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, menu.Sections())
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orders, err := h.svc.List(ctx)
	if err != nil {
		h.logf(r, "list orders: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// CreateOrder handles POST /api/orders. A line without qty counts as one;
// an explicit qty of zero or less is a 400.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req order.PlaceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	o, err := h.svc.Place(ctx, req)
	switch {
	case errors.Is(err, order.ErrNoLines):
		writeError(w, http.StatusBadRequest, "No lines")
		return
	case errors.Is(err, order.ErrInvalidLine):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.logf(r, "create order: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	writeJSON(w, http.StatusOK, o)
}

type updateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/orders. Besides 400 for a missing or
// unknown status it answers 404 when no order has the id and 409 when the
// stored status cannot move to the requested one.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.ID = strings.TrimSpace(req.ID)
	if req.ID == "" || req.Status == "" {
		writeError(w, http.StatusBadRequest, "Missing id or status")
		return
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid status: "+req.Status)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	o, err := h.svc.UpdateStatus(ctx, req.ID, status)
	switch {
	case errors.Is(err, order.ErrNotFound):
		writeError(w, http.StatusNotFound, "order not found")
		return
	case errors.Is(err, order.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.logf(r, "update status %s: %v", req.ID, err)
		writeError(w, http.StatusInternalServerError, "failed to update order")
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) logf(r *http.Request, format string, args ...any) {
	if cid := middleware.GetCorrelationID(r.Context()); cid != "" {
		format = "[" + cid + "] " + format
	}
	h.logger.Printf(format, args...)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
