package subscription

// boundedInt is the set of integer kinds the original's
// Int32_BoundedValue/UInt32_BoundedValue pair covers.
type boundedInt interface {
	~int32 | ~uint32
}

// BoundedValue clamps Current between Min and Max, matching the
// UA_Int32_BoundedValue/UA_UInt32_BoundedValue structs
// SubscriptionManager_init populates with empirical defaults.
type BoundedValue[T boundedInt] struct {
	Min     T
	Max     T
	Current T
}

// Clamp sets Current to v, saturating it to [Min, Max].
func (b *BoundedValue[T]) Clamp(v T) {
	switch {
	case v < b.Min:
		b.Current = b.Min
	case v > b.Max:
		b.Current = b.Max
	default:
		b.Current = v
	}
}

// Bounds holds the server-wide subscription defaults
// SubscriptionManager_init assigns, marked there as "empirical... Maybe
// they should be part of the server config?" — still true here, so they
// stay literal constants rather than parsed configuration (SPEC_FULL §3).
type Bounds struct {
	GlobalPublishingInterval      BoundedValue[int32]
	GlobalLifeTimeCount           BoundedValue[uint32]
	GlobalKeepAliveCount          BoundedValue[uint32]
	GlobalNotificationsPerPublish BoundedValue[int32]
	GlobalSamplingInterval        BoundedValue[uint32]
	GlobalQueueSize               BoundedValue[uint32]
}

// DefaultBounds returns the literal defaults from SubscriptionManager_init.
func DefaultBounds() Bounds {
	return Bounds{
		GlobalPublishingInterval:      BoundedValue[int32]{Min: 0, Max: 100},
		GlobalLifeTimeCount:           BoundedValue[uint32]{Min: 0, Max: 15000},
		GlobalKeepAliveCount:          BoundedValue[uint32]{Min: 0, Max: 100},
		GlobalNotificationsPerPublish: BoundedValue[int32]{Min: 1, Max: 1000},
		GlobalSamplingInterval:        BoundedValue[uint32]{Min: 0, Max: 100},
		GlobalQueueSize:               BoundedValue[uint32]{Min: 0, Max: 100},
	}
}
