package entity

// Category groups products by display label. Deleting a category does not
// cascade: products keep their dangling category string.
type Category struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
