package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
)

func product(id, name, category, price string) entity.Product {
	return entity.Product{
		ID:          id,
		Name:        name,
		Category:    category,
		Price:       decimal.RequireFromString(price),
		IsAvailable: true,
	}
}

func TestAddItemMergesSameProductAndNote(t *testing.T) {
	coffee := product("c1", "Café Expresso", "Cafeteria", "5.50")

	order := AddItem(nil, coffee, "", 4, entity.OrderTable)
	for i := 0; i < 2; i++ {
		order = AddItem(&order, coffee, "", 4, entity.OrderTable)
	}

	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("16.50")), "total = %s", order.Total)
	assert.True(t, order.FinalTotal.Equal(order.Total.Sub(order.Discount)))
}

func TestAddItemDifferentNoteIsNewLine(t *testing.T) {
	coffee := product("c1", "Café Expresso", "Cafeteria", "5.50")

	order := AddItem(nil, coffee, "", 4, entity.OrderTable)
	order = AddItem(&order, coffee, "sem açúcar", 4, entity.OrderTable)

	require.Len(t, order.Items, 2)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, 1, order.Items[1].Quantity)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("11.00")))
}

func TestAddItemSynthesizesOrderDefaults(t *testing.T) {
	coffee := product("c1", "Café Expresso", "Cafeteria", "5.50")

	order := AddItem(nil, coffee, "", 4, entity.OrderTable)

	assert.Len(t, order.ID, 6)
	assert.Equal(t, "Mesa 4", order.CustomerName)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, "Pendente", order.PaymentMethod)
	assert.Equal(t, 4, order.TableID)
	assert.Equal(t, entity.OrderTable, order.OrderType)
	assert.False(t, order.Timestamp.IsZero())
}

func TestDefaultCustomerNames(t *testing.T) {
	assert.Equal(t, "Mesa 7", DefaultCustomerName(entity.OrderTable, 7))
	assert.Equal(t, "Entrega", DefaultCustomerName(entity.OrderDelivery, 902))
	assert.Equal(t, "Balcão", DefaultCustomerName(entity.OrderCounter, 951))
}

func TestRemoveItemRecomputesTotals(t *testing.T) {
	coffee := product("c1", "Café Expresso", "Cafeteria", "5.50")
	combo := product("cb1", "Combo Café Completo", "Combos", "16.90")

	order := AddItem(nil, coffee, "", 4, entity.OrderTable)
	order = AddItem(&order, combo, "", 4, entity.OrderTable)

	out, freeSlot, err := RemoveItem(order, 0)
	require.NoError(t, err)
	assert.False(t, freeSlot)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("16.90")))
	assert.True(t, out.FinalTotal.Equal(out.Total.Sub(out.Discount)))
}

func TestRemoveLastItemRoutesToFree(t *testing.T) {
	coffee := product("c1", "Café Expresso", "Cafeteria", "5.50")
	order := AddItem(nil, coffee, "", 4, entity.OrderTable)

	_, freeSlot, err := RemoveItem(order, 0)
	require.NoError(t, err)
	assert.True(t, freeSlot, "removing the last line must free the slot, not persist an empty order")
}

func TestRemoveItemBadIndex(t *testing.T) {
	coffee := product("c1", "Café Expresso", "Cafeteria", "5.50")
	order := AddItem(nil, coffee, "", 4, entity.OrderTable)

	_, _, err := RemoveItem(order, 5)
	assert.ErrorIs(t, err, ErrItemIndex)
	_, _, err = RemoveItem(order, -1)
	assert.ErrorIs(t, err, ErrItemIndex)
}

func TestSetStatusAcceptsAnyJump(t *testing.T) {
	coffee := product("c1", "Café Expresso", "Cafeteria", "5.50")
	order := AddItem(nil, coffee, "", 4, entity.OrderTable)

	out := SetStatus(order, entity.StatusDelivered)
	assert.Equal(t, entity.StatusDelivered, out.Status)
	assert.True(t, out.IsUpdated)

	// backwards jump is allowed too
	out = SetStatus(out, entity.StatusPending)
	assert.Equal(t, entity.StatusPending, out.Status)
}
