package entity

import "github.com/shopspring/decimal"

// LoyaltyUser accumulates eligible spend per phone number. Accumulated only
// ever grows; there is no redemption ledger yet.
type LoyaltyUser struct {
	Phone       string          `gorm:"primaryKey;size:20" json:"phone"`
	Name        string          `json:"name"`
	Accumulated decimal.Decimal `gorm:"type:decimal(10,2)" json:"accumulated"`
}
