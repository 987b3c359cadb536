package entity

// Coupon codes are stored uppercase; lookup normalizes the same way.
// ScopeValue is a comma-joined set of category names or product ids,
// empty when ScopeType is "all".
type Coupon struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	Code       string `gorm:"uniqueIndex;size:50;not null" json:"code"`
	Percentage int    `json:"percentage"`
	IsActive   bool   `gorm:"default:true" json:"isActive"`
	ScopeType  string `gorm:"size:16;default:all" json:"scopeType"`
	ScopeValue string `json:"scopeValue"`
}
