package board

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/bar-ordering/internal/menu"
	"github.com/andreasstove999/bar-ordering/internal/order"
)

func TestRender(t *testing.T) {
	v := View{
		Active: []order.Order{{
			ID:        "3f2a9c1e-aaaa-bbbb-cccc-000000000001",
			Status:    order.StatusNew,
			Table:     "A1",
			OrderNote: "födelsedag",
			CreatedAt: base,
			Lines: []order.Line{
				{ProductID: "c2", Name: "Espresso Martini", Quantity: 2, Category: menu.Cocktails, Comment: "extra kaffe"},
				{ProductID: "b1", Name: "Lager (40cl)", Quantity: 1, Category: menu.Beer},
			},
		}},
		Archived: []order.Order{{ID: "old", Status: order.StatusArchived, CreatedAt: base}},
		Counts:   Counts{New: 1, Archived: 1},
		Err:      errors.New("load orders: timeout"),
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, v))
	out := buf.String()

	assert.Contains(t, out, "NY: 1")
	assert.Contains(t, out, "FEL: load orders: timeout")
	assert.Contains(t, out, "3f2a9c1e")
	assert.NotContains(t, out, "3f2a9c1e-aaaa")
	assert.Contains(t, out, "2x Espresso Martini (extra kaffe), 1x Lager (40cl)")
	assert.Contains(t, out, "start ready")
	assert.Contains(t, out, "notering: födelsedag")
	assert.Contains(t, out, "ARKIV")
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, View{}))
	assert.Contains(t, buf.String(), "(inga aktiva ordrar)")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", ShortID("abc"))
	assert.Equal(t, "12345678", ShortID("1234567890"))
}
