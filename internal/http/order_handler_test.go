package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/bar-ordering/internal/menu"
	"github.com/andreasstove999/bar-ordering/internal/order"
)

type fakeRepo struct {
	createFunc       func(ctx context.Context, o *order.Order) error
	listFunc         func(ctx context.Context) ([]order.Order, error)
	updateStatusFunc func(ctx context.Context, id string, to order.Status) (*order.Order, order.Status, error)
}

func (f *fakeRepo) Create(ctx context.Context, o *order.Order) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, o)
	}
	o.ID = "order-1"
	o.CreatedAt = time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	return nil
}

func (f *fakeRepo) List(ctx context.Context) ([]order.Order, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return nil, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, to order.Status) (*order.Order, order.Status, error) {
	if f.updateStatusFunc != nil {
		return f.updateStatusFunc(ctx, id, to)
	}
	return nil, "", order.ErrNotFound
}

func newTestRouter(repo order.Repository) http.Handler {
	logger := log.New(io.Discard, "", 0)
	svc := order.NewService(repo, nil, logger)
	return NewRouter(NewHandler(svc, logger, time.Second), []string{"*"})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["error"]
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(&fakeRepo{}), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"order-service"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-Id"))
}

func TestMenu(t *testing.T) {
	rec := do(t, newTestRouter(&fakeRepo{}), http.MethodGet, "/api/menu", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var sections []menu.Section
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sections))
	require.Len(t, sections, len(menu.Categories))
	assert.Equal(t, menu.Cocktails, sections[0].Category)
	assert.Equal(t, "Drinkar", sections[0].Label)
	assert.NotEmpty(t, sections[0].Items)
}

func TestListOrders_EmptyIsArray(t *testing.T) {
	rec := do(t, newTestRouter(&fakeRepo{}), http.MethodGet, "/api/orders", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListOrders_OK(t *testing.T) {
	repo := &fakeRepo{listFunc: func(context.Context) ([]order.Order, error) {
		return []order.Order{{
			ID:        "o1",
			CreatedAt: time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC),
			Status:    order.StatusReady,
			Table:     "B2",
			Lines:     []order.Line{{ProductID: "b1", Name: "Lager (40cl)", Quantity: 2, Price: 79, Category: menu.Beer}},
		}}, nil
	}}

	rec := do(t, newTestRouter(repo), http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "o1", got[0]["id"])
	assert.Equal(t, "KLAR", got[0]["status"])
	assert.Equal(t, "B2", got[0]["table"])
	assert.Equal(t, "2024-05-01T20:00:00Z", got[0]["createdAt"])
	lines := got[0]["lines"].([]any)
	assert.Equal(t, float64(2), lines[0].(map[string]any)["qty"])
}

func TestListOrders_StoreError(t *testing.T) {
	repo := &fakeRepo{listFunc: func(context.Context) ([]order.Order, error) {
		return nil, errors.New("connection refused")
	}}

	rec := do(t, newTestRouter(repo), http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failed to load orders", decodeError(t, rec))
}

func TestCreateOrder_OK(t *testing.T) {
	var stored *order.Order
	repo := &fakeRepo{createFunc: func(_ context.Context, o *order.Order) error {
		o.ID = "order-9"
		stored = o
		return nil
	}}

	body := `{"table":"A1","lines":[{"id":"c2","name":"Espresso Martini","qty":1,"price":155,"category":"Cocktails","comment":"no sugar"}]}`
	rec := do(t, newTestRouter(repo), http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var o order.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&o))
	assert.Equal(t, "order-9", o.ID)
	assert.Equal(t, order.StatusNew, o.Status)
	require.Len(t, o.Lines, 1)
	assert.Equal(t, "no sugar", o.Lines[0].Comment)
	require.NotNil(t, stored)
	assert.Equal(t, "A1", stored.Table)
}

func TestCreateOrder_ValidationErrors(t *testing.T) {
	called := false
	repo := &fakeRepo{createFunc: func(context.Context, *order.Order) error {
		called = true
		return nil
	}}
	router := newTestRouter(repo)

	rec := do(t, router, http.MethodPost, "/api/orders", `{"lines":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No lines", decodeError(t, rec))

	rec = do(t, router, http.MethodPost, "/api/orders", `{"table":"A1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/orders", `{"lines":[{"id":"x","qty":1,"category":"Cider"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "unknown category")

	rec = do(t, router, http.MethodPost, "/api/orders", `{"lines":[{"id":"b1","qty":0,"price":79,"category":"Beer"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "qty must be positive")

	rec = do(t, router, http.MethodPost, "/api/orders", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.False(t, called)
}

func TestCreateOrder_StoreError(t *testing.T) {
	repo := &fakeRepo{createFunc: func(context.Context, *order.Order) error {
		return errors.New("disk full")
	}}

	rec := do(t, newTestRouter(repo), http.MethodPost, "/api/orders", `{"lines":[{"id":"b1","qty":1,"price":79,"category":"Beer"}]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failed to create order", decodeError(t, rec))
}

func TestUpdateStatus_OK(t *testing.T) {
	repo := &fakeRepo{updateStatusFunc: func(_ context.Context, id string, to order.Status) (*order.Order, order.Status, error) {
		return &order.Order{ID: id, Status: to}, order.StatusNew, nil
	}}

	rec := do(t, newTestRouter(repo), http.MethodPatch, "/api/orders", `{"id":"o1","status":"PABORJAD"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var o order.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&o))
	assert.Equal(t, "o1", o.ID)
	assert.Equal(t, order.StatusStarted, o.Status)
}

func TestUpdateStatus_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		repoErr  error
		wantCode int
		wantMsg  string
	}{
		{name: "missing id", body: `{"status":"KLAR"}`, wantCode: http.StatusBadRequest, wantMsg: "Missing id or status"},
		{name: "missing status", body: `{"id":"o1"}`, wantCode: http.StatusBadRequest, wantMsg: "Missing id or status"},
		{name: "unknown status", body: `{"id":"o1","status":"DONE"}`, wantCode: http.StatusBadRequest, wantMsg: "Invalid status: DONE"},
		{name: "unknown order", body: `{"id":"o1","status":"KLAR"}`, repoErr: order.ErrNotFound, wantCode: http.StatusNotFound, wantMsg: "order not found"},
		{
			name:     "illegal edge",
			body:     `{"id":"o1","status":"NY"}`,
			repoErr:  &order.TransitionError{From: order.StatusArchived, To: order.StatusNew},
			wantCode: http.StatusConflict,
			wantMsg:  "cannot move order from ARKIV to NY",
		},
		{name: "store failure", body: `{"id":"o1","status":"KLAR"}`, repoErr: errors.New("timeout"), wantCode: http.StatusInternalServerError, wantMsg: "failed to update order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			repo := &fakeRepo{updateStatusFunc: func(context.Context, string, order.Status) (*order.Order, order.Status, error) {
				called = true
				return nil, "", tt.repoErr
			}}

			rec := do(t, newTestRouter(repo), http.MethodPatch, "/api/orders", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
			if tt.repoErr == nil {
				assert.False(t, called, "validation failures must not reach the store")
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "http://bar.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := httptest.NewRecorder()

	newTestRouter(&fakeRepo{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://bar.local", rec.Header().Get("Access-Control-Allow-Origin"))
}
