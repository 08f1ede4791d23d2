package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwtrack/internal/domain"
	"mwtrack/internal/services/cart"
)

func sampleItems() []domain.CartItem {
	return []domain.CartItem{
		{ProductID: "5011", Code: "50B26", Name: "Bota", ParentID: "501", UnitPrice: 10, Quantity: 1, Subtotal: 10},
		{ProductID: "5021", Code: "10VR", Name: "Zapato", ParentID: "502", UnitPrice: 5, Quantity: 2, Subtotal: 10},
		{ProductID: "5012", Code: "50B26", Name: "Bota", ParentID: "501", UnitPrice: 10, Quantity: 3, Subtotal: 30},
	}
}

func TestGroup(t *testing.T) {
	groups := cart.Group(sampleItems())
	require.Len(t, groups, 2)

	assert.Equal(t, "50B26", groups[0].Code)
	assert.Equal(t, "501", groups[0].ParentID)
	assert.Equal(t, 4, groups[0].Quantity)
	assert.InDelta(t, 40, groups[0].Subtotal, 0.001)
	assert.Len(t, groups[0].Items, 2)

	assert.Equal(t, "10VR", groups[1].Code)
	assert.Equal(t, 2, groups[1].Quantity)

	assert.Empty(t, cart.Group(nil))
}

func TestReprice(t *testing.T) {
	items := sampleItems()

	out, total := cart.Reprice(items, "5021", 5)
	assert.Equal(t, 5, out[1].Quantity)
	assert.InDelta(t, 25, out[1].Subtotal, 0.001)
	assert.InDelta(t, 65, total, 0.001)
	assert.InDelta(t, total, cart.Total(out), 0.001)

	// input is left untouched
	assert.Equal(t, 2, items[1].Quantity)
	assert.InDelta(t, 50, cart.Total(items), 0.001)

	same, total := cart.Reprice(items, "5021", 0)
	assert.Equal(t, items, same)
	assert.InDelta(t, 50, total, 0.001)
}
