package services

import (
	"gorm.io/gorm"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/repository"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/slots"
)

// EventPublisher fans a slot change event out to connected boards. The
// websocket hub implements it; tests use a recorder.
type EventPublisher interface {
	Publish(evt slots.Event)
}

type TableService struct {
	DB       *gorm.DB
	Repo     *repository.TableRepository
	Catalog  *repository.CatalogRepository
	Settings *repository.SettingsRepository
	Pub      EventPublisher
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository, catalog *repository.CatalogRepository, settings *repository.SettingsRepository, pub EventPublisher) *TableService {
	return &TableService{DB: db, Repo: repo, Catalog: catalog, Settings: settings, Pub: pub}
}

// List returns the full board: fixed base set merged with persisted rows.
func (s *TableService) List() ([]entity.TableSlot, error) {
	rows, err := s.Repo.All()
	if err != nil {
		return nil, err
	}
	return slots.Merge(rows), nil
}

// AllocateManual finds a slot for an admin/waiter-opened order. Unlike
// checkout it never overflows the band: with no free slot in range the
// operation aborts with ErrNoFreeSlot and nothing is written.
func (s *TableService) AllocateManual(typ entity.OrderType, tableNo int) (int, error) {
	if typ == entity.OrderTable {
		if tableNo < 1 || tableNo > slots.DineInCount {
			return 0, slots.ErrBadTableNum
		}
		return tableNo, nil
	}

	set, err := s.List()
	if err != nil {
		return 0, err
	}
	lo, hi := slots.DeliveryLo, slots.DeliveryHi
	if typ == entity.OrderCounter {
		lo, hi = slots.CounterLo, slots.CounterHi
	}
	id, ok := slots.NextFree(set, lo, hi)
	if !ok {
		return 0, ErrNoFreeSlot
	}
	return id, nil
}

// AddItem puts one unit of the product on the slot's tab, opening a pending
// order with the channel's default customer name when the slot is free.
func (s *TableService) AddItem(slotID int, productID, note string) (*entity.TableSlot, error) {
	p, err := s.Catalog.ProductByID(productID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	prior, err := s.Repo.Get(slotID)
	if err != nil {
		return nil, err
	}
	var current *entity.Order
	if prior != nil {
		current = prior.CurrentOrder
	}

	order := AddItem(current, *p, note, slotID, slots.ChannelFor(slotID))
	row := entity.OccupiedSlot(slotID, order)
	if err := s.Repo.Upsert(s.DB, &row); err != nil {
		return nil, err
	}
	s.publishUpsert(prior, row)
	return &row, nil
}

// RemoveItem drops one line from the slot's order. Removing the last line
// frees the slot; an occupied row with an empty item list is never written.
func (s *TableService) RemoveItem(slotID, index int) error {
	row, err := s.Repo.Get(slotID)
	if err != nil {
		return err
	}
	if row == nil || row.CurrentOrder == nil {
		return ErrSlotFree
	}

	order, freeSlot, err := RemoveItem(*row.CurrentOrder, index)
	if err != nil {
		return err
	}
	if freeSlot {
		return s.Free(slotID)
	}

	updated := entity.OccupiedSlot(slotID, order)
	if err := s.Repo.Upsert(s.DB, &updated); err != nil {
		return err
	}
	s.Pub.Publish(slots.Event{Type: slots.EventUpdate, New: &updated, Old: row})
	return nil
}

// SetStatus jumps the order to the given status. Transitions are not
// validated; the board allows corrections in any direction.
func (s *TableService) SetStatus(slotID int, status entity.OrderStatus) error {
	row, err := s.Repo.Get(slotID)
	if err != nil {
		return err
	}
	if row == nil || row.CurrentOrder == nil {
		return ErrSlotFree
	}

	order := SetStatus(*row.CurrentOrder, status)
	updated := entity.OccupiedSlot(slotID, order)
	if err := s.Repo.Upsert(s.DB, &updated); err != nil {
		return err
	}
	s.Pub.Publish(slots.Event{Type: slots.EventUpdate, New: &updated, Old: row})
	return nil
}

// Free deletes the slot row, discarding its order. Freeing an already-free
// slot is a no-op.
func (s *TableService) Free(slotID int) error {
	row, err := s.Repo.Get(slotID)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(s.DB, slotID); err != nil {
		return err
	}
	if row != nil {
		s.Pub.Publish(slots.Event{Type: slots.EventDelete, Old: row})
	}
	return nil
}

func (s *TableService) publishUpsert(prior *entity.TableSlot, row entity.TableSlot) {
	typ := slots.EventUpdate
	if prior == nil {
		typ = slots.EventInsert
	}
	s.Pub.Publish(slots.Event{Type: typ, New: &row, Old: prior})
}
