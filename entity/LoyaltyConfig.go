package entity

import "github.com/shopspring/decimal"

// LoyaltyConfig is a singleton row (ID = 1). Scope semantics match Coupon.
type LoyaltyConfig struct {
	ID           uint            `gorm:"primaryKey" json:"-"`
	IsActive     bool            `json:"isActive"`
	SpendingGoal decimal.Decimal `gorm:"type:decimal(10,2)" json:"spendingGoal"`
	ScopeType    string          `gorm:"size:16;default:all" json:"scopeType"`
	ScopeValue   string          `json:"scopeValue"`
}
