package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
)

func occupied(id int) entity.TableSlot {
	return entity.OccupiedSlot(id, entity.Order{ID: "ABC123", Status: entity.StatusPending})
}

func TestBaseSet(t *testing.T) {
	set := BaseSet()
	require.Len(t, set, 32)

	assert.Equal(t, 1, set[0].ID)
	assert.Equal(t, 12, set[11].ID)
	assert.Equal(t, 900, set[12].ID)
	assert.Equal(t, 909, set[21].ID)
	assert.Equal(t, 950, set[22].ID)
	assert.Equal(t, 959, set[31].ID)

	for _, s := range set {
		assert.Equal(t, entity.TableFree, s.Status)
		assert.Nil(t, s.CurrentOrder)
	}
}

func TestMergeRemoteWinsAndExtends(t *testing.T) {
	merged := Merge([]entity.TableSlot{occupied(3), occupied(915)})

	// remote row replaced the base row for table 3
	idx := indexOf(merged, 3)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, entity.TableOccupied, merged[idx].Status)

	// 915 is outside the base delivery rows and got appended, sorted
	idx = indexOf(merged, 915)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, 910, 900+baseDeliveryCount)
	assert.Len(t, merged, 33)
	for i := 1; i < len(merged); i++ {
		assert.Less(t, merged[i-1].ID, merged[i].ID)
	}
}

func TestMergeNeverShrinksBelowBase(t *testing.T) {
	assert.Len(t, Merge(nil), 32)
}

func TestNextFreeSkipsOccupied(t *testing.T) {
	set := BaseSet()
	for id := 900; id <= 905; id++ {
		set[indexOf(set, id)] = occupied(id)
	}

	id, ok := NextFree(set, DeliveryLo, DeliveryHi)
	require.True(t, ok)
	assert.Equal(t, 906, id)
}

func TestAllocateDeliveryOverflowsBand(t *testing.T) {
	// every delivery slot 900-949 occupied
	var set []entity.TableSlot
	for id := DeliveryLo; id <= DeliveryHi; id++ {
		set = append(set, occupied(id))
	}

	id, err := Allocate(set, entity.OrderDelivery, 0)
	require.NoError(t, err)
	// documented fallback: max id in band + 1, even though 950 nominally
	// belongs to the counter band
	assert.Equal(t, 950, id)
}

func TestAllocateDineInPassthrough(t *testing.T) {
	set := BaseSet()

	id, err := Allocate(set, entity.OrderTable, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	// picking an occupied table is allowed (add to the tab)
	set[indexOf(set, 4)] = occupied(4)
	id, err = Allocate(set, entity.OrderTable, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	_, err = Allocate(set, entity.OrderTable, 13)
	assert.ErrorIs(t, err, ErrBadTableNum)
}

func TestAllocateCounterFirstFree(t *testing.T) {
	set := BaseSet()
	set[indexOf(set, 950)] = occupied(950)

	id, err := Allocate(set, entity.OrderCounter, 0)
	require.NoError(t, err)
	assert.Equal(t, 951, id)
}

func TestChannelFor(t *testing.T) {
	assert.Equal(t, entity.OrderTable, ChannelFor(7))
	assert.Equal(t, entity.OrderDelivery, ChannelFor(903))
	assert.Equal(t, entity.OrderCounter, ChannelFor(955))
}
