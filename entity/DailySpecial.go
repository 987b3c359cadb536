package entity

// DailySpecial maps a day of week (0=Sunday..6=Saturday) to at most one
// product. Upsert keyed by Day; no row means no special that day.
type DailySpecial struct {
	Day       int    `gorm:"primaryKey;autoIncrement:false" json:"day"`
	ProductID string `gorm:"size:36" json:"productId"`
}
