package subscription

import (
	"testing"

	"github.com/opcuacore/core/pkg/rng"
	"github.com/stretchr/testify/require"
)

func TestManagerAddGetDeleteSubscription(t *testing.T) {
	gen := rng.New()
	m := NewManager(gen, 123456, nil)

	s1 := NewSubscription(1)
	s2 := NewSubscription(2)
	m.AddSubscription(s1)
	m.AddSubscription(s2)
	require.Equal(t, 2, m.Len())

	got, ok := m.GetSubscriptionByID(2)
	require.True(t, ok)
	require.Same(t, s2, got)

	m.DeleteSubscription(1)
	require.Equal(t, 1, m.Len())
	_, ok = m.GetSubscriptionByID(1)
	require.False(t, ok)
}

func TestManagerDeleteMissingSubscriptionIsNoop(t *testing.T) {
	m := NewManager(rng.New(), 0, nil)
	m.AddSubscription(NewSubscription(1))
	m.DeleteSubscription(99)
	require.Equal(t, 1, m.Len())
}

func TestManagerSeedsLastSessionIDFromRNGAndTime(t *testing.T) {
	gen := rng.New()
	gen.Seed(42, 1000)
	m := NewManager(gen, 1000, nil)
	require.NotZero(t, m.LastSessionID)
}

func TestSubscriptionMonitoredItemCRUD(t *testing.T) {
	sub := NewSubscription(1)
	sub.AddMonitoredItem(NewMonitoredItem(10))
	sub.AddMonitoredItem(NewMonitoredItem(20))
	require.Equal(t, 1, sub.FindMonitoredItem(20))

	sub.RemoveMonitoredItem(10)
	require.Len(t, sub.MonitoredItems, 1)
	require.Equal(t, uint32(20), sub.MonitoredItems[0].ID)

	// Removing a missing item is a no-op.
	sub.RemoveMonitoredItem(999)
	require.Len(t, sub.MonitoredItems, 1)
}

func TestBoundedValueClamp(t *testing.T) {
	b := BoundedValue[int32]{Min: 0, Max: 100}
	b.Clamp(50)
	require.Equal(t, int32(50), b.Current)
	b.Clamp(-5)
	require.Equal(t, int32(0), b.Current)
	b.Clamp(1000)
	require.Equal(t, int32(100), b.Current)
}

func TestDefaultBoundsMatchOriginalEmpiricalValues(t *testing.T) {
	b := DefaultBounds()
	require.Equal(t, int32(100), b.GlobalPublishingInterval.Max)
	require.Equal(t, uint32(15000), b.GlobalLifeTimeCount.Max)
	require.Equal(t, int32(1), b.GlobalNotificationsPerPublish.Min)
}
