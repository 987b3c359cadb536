package entity

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Category    string          `gorm:"index" json:"category"`
	Image       string          `json:"image"`
	Savings     string          `json:"savings,omitempty"`
	IsAvailable bool            `gorm:"default:true" json:"isAvailable"`
}
