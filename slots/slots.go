// Package slots owns the virtual-table model: the fixed base set of slot
// rows, allocation of free slots per channel, and the client-side mirror
// that merges remote rows and realtime change events.
package slots

import (
	"errors"
	"sort"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
)

// Id bands per channel. The delivery/counter bands are soft sizing hints:
// when a band is exhausted, allocation falls back to max id in band + 1,
// which may step outside it (900-949 full allocates 950).
const (
	DineInCount = 12

	DeliveryLo = 900
	DeliveryHi = 949

	CounterLo = 950
	CounterHi = 999

	baseDeliveryCount = 10
	baseCounterCount  = 10
)

var (
	ErrNoFreeSlot  = errors.New("no free slot available")
	ErrBadTableNum = errors.New("table number must be between 1 and 12")
	ErrBadChannel  = errors.New("unknown order channel")
)

// BaseSet returns the fixed 12+10+10 slot board, all free.
func BaseSet() []entity.TableSlot {
	set := make([]entity.TableSlot, 0, DineInCount+baseDeliveryCount+baseCounterCount)
	for i := 1; i <= DineInCount; i++ {
		set = append(set, entity.FreeSlot(i))
	}
	for i := 0; i < baseDeliveryCount; i++ {
		set = append(set, entity.FreeSlot(DeliveryLo+i))
	}
	for i := 0; i < baseCounterCount; i++ {
		set = append(set, entity.FreeSlot(CounterLo+i))
	}
	return set
}

// Merge lays remote rows over the base set: remote wins by id, unknown ids
// are appended, and the result is sorted ascending. The union never shrinks
// below the base board.
func Merge(remote []entity.TableSlot) []entity.TableSlot {
	merged := BaseSet()
	for _, row := range remote {
		idx := indexOf(merged, row.ID)
		if idx >= 0 {
			merged[idx] = row
		} else {
			merged = append(merged, row)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].ID < merged[j].ID })
	return merged
}

// NextFree returns the lowest free slot id in [lo, hi].
func NextFree(set []entity.TableSlot, lo, hi int) (int, bool) {
	best := 0
	for _, t := range set {
		if t.ID < lo || t.ID > hi || t.Status != entity.TableFree {
			continue
		}
		if best == 0 || t.ID < best {
			best = t.ID
		}
	}
	return best, best != 0
}

// Allocate resolves a channel request to a concrete slot id against the
// current set. Dine-in is an explicit pick: choosing an occupied table is
// allowed and means "add to that tab". Delivery/counter scan their band for
// the first free row and overflow to max+1 when the band is exhausted.
//
// There is no reservation here; two callers racing for the same free slot
// both get it and the last persisted write wins.
func Allocate(set []entity.TableSlot, channel entity.OrderType, tableNo int) (int, error) {
	switch channel {
	case entity.OrderTable:
		if tableNo < 1 || tableNo > DineInCount {
			return 0, ErrBadTableNum
		}
		return tableNo, nil
	case entity.OrderDelivery:
		return allocateInBand(set, DeliveryLo, DeliveryHi), nil
	case entity.OrderCounter:
		return allocateInBand(set, CounterLo, CounterHi), nil
	default:
		return 0, ErrBadChannel
	}
}

func allocateInBand(set []entity.TableSlot, lo, hi int) int {
	if id, ok := NextFree(set, lo, hi); ok {
		return id
	}
	max := 0
	for _, t := range set {
		if t.ID >= lo && t.ID <= hi && t.ID > max {
			max = t.ID
		}
	}
	if max == 0 {
		return lo
	}
	return max + 1
}

// ChannelFor derives the channel from a slot id. Overflow ids past a band's
// upper bound keep the channel of the order they carry; this helper is for
// rows inside the nominal bands.
func ChannelFor(id int) entity.OrderType {
	switch {
	case id >= CounterLo:
		return entity.OrderCounter
	case id >= DeliveryLo:
		return entity.OrderDelivery
	default:
		return entity.OrderTable
	}
}

func indexOf(set []entity.TableSlot, id int) int {
	for i := range set {
		if set[i].ID == id {
			return i
		}
	}
	return -1
}
