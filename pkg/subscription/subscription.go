package subscription

// MonitoredItem mirrors UA_MonitoredItem: the original struct carries no
// fields beyond its allocation, since the sampling/queueing logic lives in
// the wider server layer spec.md §6 excludes. ID is the one addressable
// handle a caller needs to reference it by.
type MonitoredItem struct {
	ID uint32
}

// Subscription mirrors UA_Subscription: an ID plus its MonitoredItems,
// stored as a copy-on-write slice in the same shape as
// hive/values.List's VKRefs.
type Subscription struct {
	ID             int32
	MonitoredItems []*MonitoredItem
}

// NewSubscription mirrors UA_Subscription_new.
func NewSubscription(id int32) *Subscription {
	return &Subscription{ID: id}
}

// NewMonitoredItem mirrors UA_MonitoredItem_new.
func NewMonitoredItem(id uint32) *MonitoredItem {
	return &MonitoredItem{ID: id}
}

// AddMonitoredItem appends item, replacing the Subscription's
// MonitoredItems slice with a new backing array (hive/values.List.Append's
// shape) rather than mutating in place.
func (s *Subscription) AddMonitoredItem(item *MonitoredItem) {
	next := make([]*MonitoredItem, len(s.MonitoredItems)+1)
	copy(next, s.MonitoredItems)
	next[len(s.MonitoredItems)] = item
	s.MonitoredItems = next
}

// FindMonitoredItem returns the index of the item with the given ID, or -1.
func (s *Subscription) FindMonitoredItem(id uint32) int {
	for i, item := range s.MonitoredItems {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// RemoveMonitoredItem removes the first item with the given ID, mirroring
// hive/values.List.Remove: a miss returns the subscription unchanged.
func (s *Subscription) RemoveMonitoredItem(id uint32) {
	idx := s.FindMonitoredItem(id)
	if idx == -1 {
		return
	}
	next := make([]*MonitoredItem, 0, len(s.MonitoredItems)-1)
	next = append(next, s.MonitoredItems[:idx]...)
	next = append(next, s.MonitoredItems[idx+1:]...)
	s.MonitoredItems = next
}
