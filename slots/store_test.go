package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
)

func TestApplyDeleteResetsDineInSlot(t *testing.T) {
	s := NewStore()
	row := occupied(3)
	s.Apply(Event{Type: EventInsert, New: &row})

	got, ok := s.Get(3)
	require.True(t, ok)
	require.Equal(t, entity.TableOccupied, got.Status)

	s.Apply(Event{Type: EventDelete, Old: &row})

	// table 3 reverts to free but stays on the board
	got, ok = s.Get(3)
	require.True(t, ok)
	assert.Equal(t, entity.TableFree, got.Status)
	assert.Nil(t, got.CurrentOrder)
	assert.Len(t, s.Tables(), 32)
}

func TestApplyInsertAppendsAndSorts(t *testing.T) {
	s := NewStore()
	row := occupied(915)
	s.Apply(Event{Type: EventInsert, New: &row})

	tables := s.Tables()
	require.Len(t, tables, 33)
	for i := 1; i < len(tables); i++ {
		assert.Less(t, tables[i-1].ID, tables[i].ID)
	}
}

func TestApplyUpdateReplacesRow(t *testing.T) {
	s := NewStore()
	row := occupied(5)
	s.Apply(Event{Type: EventInsert, New: &row})

	updated := entity.OccupiedSlot(5, entity.Order{ID: "ABC123", Status: entity.StatusReady})
	s.Apply(Event{Type: EventUpdate, New: &updated})

	got, ok := s.Get(5)
	require.True(t, ok)
	require.NotNil(t, got.CurrentOrder)
	assert.Equal(t, entity.StatusReady, got.CurrentOrder.Status)
	assert.Len(t, s.Tables(), 32)
}

func TestApplyIgnoresMalformedEvents(t *testing.T) {
	s := NewStore()
	s.Apply(Event{Type: EventDelete})
	s.Apply(Event{Type: EventInsert})
	assert.Len(t, s.Tables(), 32)
}

func TestLoadReplacesMirror(t *testing.T) {
	s := NewStore()
	row := occupied(915)
	s.Apply(Event{Type: EventInsert, New: &row})

	s.Load([]entity.TableSlot{occupied(2)})

	tables := s.Tables()
	assert.Len(t, tables, 32)
	got, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, entity.TableOccupied, got.Status)
	_, ok = s.Get(915)
	assert.False(t, ok)
}
