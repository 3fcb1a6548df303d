package subscription

import (
	"log/slog"

	"github.com/opcuacore/core/pkg/rng"
)

// Manager mirrors UA_SubscriptionManager: the global bounded-value
// defaults plus the server's subscription list, indexed by
// SubscriptionID. It has no lock of its own, so a Manager shared across
// goroutines needs external synchronization, same as the original's
// single-threaded assumption.
type Manager struct {
	Bounds Bounds

	// LastSessionID mirrors UA_SubscriptionManager.LastSessionID, seeded
	// once from the RNG mixed with the current time for "some basic
	// degree of entropy" per the original's comment.
	LastSessionID uint32

	subscriptions []*Subscription

	Logger *slog.Logger
}

// NewManager mirrors SubscriptionManager_init: it seeds LastSessionID from
// gen combined with nowTicks (a DateTime tick count, the caller's
// responsibility per rng.Generator.Seed's own convention) and installs the
// empirical Bounds defaults. logger may be nil; a nil logger disables
// logging entirely rather than panicking.
func NewManager(gen *rng.Generator, nowTicks int64, logger *slog.Logger) *Manager {
	return &Manager{
		Bounds:        DefaultBounds(),
		LastSessionID: gen.Uint32() + uint32(nowTicks),
		Logger:        logger,
	}
}

func (m *Manager) log(msg string, args ...any) {
	if m.Logger == nil {
		return
	}
	m.Logger.Debug(msg, args...)
}

// AddSubscription mirrors SubscriptionManager_addSubscription, inserting
// sub at the head of the list (LIST_INSERT_HEAD) via the copy-on-write
// append shape hive/values.List.Append uses.
func (m *Manager) AddSubscription(sub *Subscription) {
	next := make([]*Subscription, len(m.subscriptions)+1)
	next[0] = sub
	copy(next[1:], m.subscriptions)
	m.subscriptions = next
	m.log("subscription added", "id", sub.ID)
}

// GetSubscriptionByID mirrors SubscriptionManager_getSubscriptionByID.
func (m *Manager) GetSubscriptionByID(id int32) (*Subscription, bool) {
	for _, sub := range m.subscriptions {
		if sub.ID == id {
			return sub, true
		}
	}
	return nil, false
}

// DeleteSubscription mirrors SubscriptionManager_deleteSubscription: a
// miss is a no-op, matching the original's "if sub != NULL" guard.
func (m *Manager) DeleteSubscription(id int32) {
	idx := -1
	for i, sub := range m.subscriptions {
		if sub.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	next := make([]*Subscription, 0, len(m.subscriptions)-1)
	next = append(next, m.subscriptions[:idx]...)
	next = append(next, m.subscriptions[idx+1:]...)
	m.subscriptions = next
	m.log("subscription deleted", "id", id)
}

// Len reports the number of subscriptions currently tracked.
func (m *Manager) Len() int {
	return len(m.subscriptions)
}
