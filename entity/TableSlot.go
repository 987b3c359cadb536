package entity

import "errors"

type TableStatus string

const (
	TableFree     TableStatus = "free"
	TableOccupied TableStatus = "occupied"
)

// TableSlot is the unit of persistence for one active order. The id range
// encodes the channel: 1-12 dine-in, 900-949 delivery, 950-999 counter.
// Invariant: status == free ⟺ CurrentOrder == nil. Build slots through
// FreeSlot/OccupiedSlot so the invalid combination never exists.
type TableSlot struct {
	ID           int         `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Status       TableStatus `gorm:"size:16" json:"status"`
	CurrentOrder *Order      `gorm:"serializer:json" json:"currentOrder"`
}

var ErrSlotInconsistent = errors.New("table slot status does not match its order")

func FreeSlot(id int) TableSlot {
	return TableSlot{ID: id, Status: TableFree, CurrentOrder: nil}
}

func OccupiedSlot(id int, order Order) TableSlot {
	order.TableID = id
	return TableSlot{ID: id, Status: TableOccupied, CurrentOrder: &order}
}

func (t TableSlot) Validate() error {
	if (t.Status == TableFree) != (t.CurrentOrder == nil) {
		return ErrSlotInconsistent
	}
	return nil
}

func (t TableSlot) IsDineIn() bool { return t.ID >= 1 && t.ID <= 12 }
