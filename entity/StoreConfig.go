package entity

// StoreConfig is a singleton row (ID = 1). When all three channel toggles are
// false the storefront is closed.
type StoreConfig struct {
	ID                   uint `gorm:"primaryKey" json:"-"`
	TablesEnabled        bool `gorm:"default:true" json:"tablesEnabled"`
	DeliveryEnabled      bool `gorm:"default:true" json:"deliveryEnabled"`
	CounterEnabled       bool `gorm:"default:true" json:"counterEnabled"`
	StatusPanelEnabled   bool `json:"statusPanelEnabled"`
	WaiterCanFinalize    bool `gorm:"default:true" json:"waiterCanFinalize"`
	WaiterCanCancelItems bool `gorm:"default:true" json:"waiterCanCancelItems"`
}

func (c StoreConfig) Closed() bool {
	return !c.TablesEnabled && !c.DeliveryEnabled && !c.CounterEnabled
}
