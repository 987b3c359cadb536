package slots

import (
	"time"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
)

type AlertKind int

const (
	AlertNone AlertKind = iota
	AlertNewOrder
	AlertStatusChange
)

// Auto-dismiss windows for user-facing alerts. Audio cues are a client
// concern and alerts never depend on them.
const (
	NewOrderAlertTTL     = 10 * time.Second
	StatusChangeAlertTTL = 6 * time.Second
)

type Alert struct {
	Kind AlertKind
	TTL  time.Duration
}

// Notifier deduplicates order notifications for one client session. It holds
// only the last notified order id and status, so a repeated event for the
// same order with a new status becomes a "status changed" alert and an exact
// repeat is silent. Each session gets its own Notifier; there is no shared
// module state.
type Notifier struct {
	lastOrderID string
	lastStatus  entity.OrderStatus
}

func (n *Notifier) Observe(orderID string, status entity.OrderStatus) Alert {
	if orderID == "" {
		return Alert{Kind: AlertNone}
	}
	if orderID != n.lastOrderID {
		n.lastOrderID = orderID
		n.lastStatus = status
		return Alert{Kind: AlertNewOrder, TTL: NewOrderAlertTTL}
	}
	if status != n.lastStatus {
		n.lastStatus = status
		return Alert{Kind: AlertStatusChange, TTL: StatusChangeAlertTTL}
	}
	return Alert{Kind: AlertNone}
}
