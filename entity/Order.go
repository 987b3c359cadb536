package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

type OrderType string

const (
	OrderTable    OrderType = "table"
	OrderDelivery OrderType = "delivery"
	OrderCounter  OrderType = "counter"
)

// CartItem is a product snapshot plus quantity. Lines are merged on
// (product id, note), so the same product with different notes stays
// on separate lines.
type CartItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    string          `json:"image,omitempty"`
	Quantity int             `json:"quantity"`
	Note     string          `json:"note,omitempty"`
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order lives embedded in its table slot; freeing the slot discards it.
// The id is a random 6-char code, distinguishable across the ~32 slots a
// board can show at once but not globally unique.
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	Items         []CartItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Discount      decimal.Decimal `json:"discount"`
	FinalTotal    decimal.Decimal `json:"finalTotal"`
	PaymentMethod string          `json:"paymentMethod"`
	Timestamp     time.Time       `json:"timestamp"`
	TableID       int             `json:"tableId"`
	Status        OrderStatus     `json:"status"`
	OrderType     OrderType       `json:"orderType"`
	Address       string          `json:"address,omitempty"`
	CouponCode    string          `json:"couponCode,omitempty"`
	Observation   string          `json:"observation,omitempty"`
	IsUpdated     bool            `json:"isUpdated,omitempty"`
}
