package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
)

func TestNotifierDedup(t *testing.T) {
	var n Notifier

	a := n.Observe("AAA111", entity.StatusPending)
	assert.Equal(t, AlertNewOrder, a.Kind)
	assert.Equal(t, NewOrderAlertTTL, a.TTL)

	// same order, same status: already notified
	a = n.Observe("AAA111", entity.StatusPending)
	assert.Equal(t, AlertNone, a.Kind)

	// same order, new status: status-change alert, shorter window
	a = n.Observe("AAA111", entity.StatusPreparing)
	assert.Equal(t, AlertStatusChange, a.Kind)
	assert.Equal(t, StatusChangeAlertTTL, a.TTL)

	// a different order resets the pair
	a = n.Observe("BBB222", entity.StatusPending)
	assert.Equal(t, AlertNewOrder, a.Kind)
}

func TestNotifierIgnoresEmptyOrderID(t *testing.T) {
	var n Notifier
	assert.Equal(t, AlertNone, n.Observe("", entity.StatusPending).Kind)
}

func TestNotifiersAreIndependent(t *testing.T) {
	var tv, waiter Notifier
	tv.Observe("AAA111", entity.StatusPending)

	// a second session still gets its own new-order alert
	a := waiter.Observe("AAA111", entity.StatusPending)
	assert.Equal(t, AlertNewOrder, a.Kind)
}
