package slots

import (
	"sort"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
)

type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// Event is one row-level change notification. Insert/update carry the row in
// New; delete carries the prior row in Old.
type Event struct {
	Type EventType         `json:"eventType"`
	New  *entity.TableSlot `json:"new,omitempty"`
	Old  *entity.TableSlot `json:"old,omitempty"`
}

// Store is an in-memory mirror of the slot board, eventually consistent with
// the persisted rows. It is not safe for concurrent use; the owner serializes
// access (the websocket hub applies events from its single loop).
type Store struct {
	tables []entity.TableSlot
}

func NewStore() *Store {
	return &Store{tables: BaseSet()}
}

// Load replaces the mirror with base ∪ remote (full refetch).
func (s *Store) Load(remote []entity.TableSlot) {
	s.tables = Merge(remote)
}

// Apply merges one change event. Deletes reset the row to free instead of
// removing it, so the fixed dine-in board never loses a slot client-side.
// Events arrive one at a time in any order; a stale one is simply applied on
// top and corrected by the next authoritative event.
func (s *Store) Apply(evt Event) {
	switch evt.Type {
	case EventDelete:
		if evt.Old == nil {
			return
		}
		if idx := indexOf(s.tables, evt.Old.ID); idx >= 0 {
			s.tables[idx] = entity.FreeSlot(evt.Old.ID)
		}
	case EventInsert, EventUpdate:
		if evt.New == nil {
			return
		}
		if idx := indexOf(s.tables, evt.New.ID); idx >= 0 {
			s.tables[idx] = *evt.New
			return
		}
		s.tables = append(s.tables, *evt.New)
		sort.Slice(s.tables, func(i, j int) bool { return s.tables[i].ID < s.tables[j].ID })
	}
}

// Tables returns a copy of the mirrored board.
func (s *Store) Tables() []entity.TableSlot {
	out := make([]entity.TableSlot, len(s.tables))
	copy(out, s.tables)
	return out
}

func (s *Store) Get(id int) (entity.TableSlot, bool) {
	if idx := indexOf(s.tables, id); idx >= 0 {
		return s.tables[idx], true
	}
	return entity.TableSlot{}, false
}
