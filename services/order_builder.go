package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/utils"
)

// Pure transformations over the Order aggregate. Callers persist the result;
// nothing here touches storage.

// DefaultCustomerName is the quick-add placeholder per channel ("Mesa 4",
// "Entrega", "Balcão"). Checkout uses the customer's entered name verbatim.
func DefaultCustomerName(typ entity.OrderType, tableID int) string {
	switch typ {
	case entity.OrderTable:
		return fmt.Sprintf("Mesa %d", tableID)
	case entity.OrderDelivery:
		return "Entrega"
	default:
		return "Balcão"
	}
}

// AddItem merges the product into the order's lines: an existing line with
// the same product id and note gains quantity 1, otherwise a new line is
// appended. Totals are recomputed; when order is nil a fresh pending order
// is synthesized for the slot.
func AddItem(order *entity.Order, p entity.Product, note string, tableID int, typ entity.OrderType) entity.Order {
	var items []entity.CartItem
	if order != nil {
		items = append(items, order.Items...)
	}

	merged := false
	for i := range items {
		if items[i].ID == p.ID && items[i].Note == note {
			items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, entity.CartItem{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Category: p.Category,
			Image:    p.Image,
			Quantity: 1,
			Note:     note,
		})
	}

	if order == nil {
		return entity.Order{
			ID:            utils.NewOrderCode(),
			CustomerName:  DefaultCustomerName(typ, tableID),
			Items:         items,
			Total:         Subtotal(items),
			Discount:      decimal.Zero,
			FinalTotal:    Subtotal(items),
			PaymentMethod: "Pendente",
			Timestamp:     time.Now(),
			TableID:       tableID,
			Status:        entity.StatusPending,
			OrderType:     typ,
		}
	}

	out := *order
	out.Items = items
	out.Total = Subtotal(items)
	out.FinalTotal = out.Total.Sub(out.Discount)
	return out
}

// RemoveItem drops the line at index. freeSlot reports that the last line
// was removed: an occupied slot with zero items is not a valid persisted
// state, so the caller must free the slot instead of saving the order.
func RemoveItem(order entity.Order, index int) (out entity.Order, freeSlot bool, err error) {
	if index < 0 || index >= len(order.Items) {
		return order, false, ErrItemIndex
	}
	items := make([]entity.CartItem, 0, len(order.Items)-1)
	items = append(items, order.Items[:index]...)
	items = append(items, order.Items[index+1:]...)
	if len(items) == 0 {
		return order, true, nil
	}
	out = order
	out.Items = items
	out.Total = Subtotal(items)
	out.FinalTotal = out.Total.Sub(out.Discount)
	return out, false, nil
}

// SetStatus replaces the status and marks the order updated. Any jump is
// accepted; the admin uses this to correct mistakes.
func SetStatus(order entity.Order, status entity.OrderStatus) entity.Order {
	order.Status = status
	order.IsUpdated = true
	return order
}

func Subtotal(items []entity.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}
