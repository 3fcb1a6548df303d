package value

import (
	"github.com/opcuacore/core/pkg/descriptor"
	"github.com/opcuacore/core/pkg/types"
)

// DataValue bundles a Variant with optional status, timestamps and
// picosecond quality fields, each guarded by a presence flag (spec §3).
type DataValue struct {
	Value    Variant
	HasValue bool

	HasStatus bool
	Status    types.StatusCode

	HasSourceTimestamp bool
	SourceTimestamp    types.DateTime

	HasServerTimestamp bool
	ServerTimestamp    types.DateTime

	HasSourcePicoseconds bool
	SourcePicoseconds    uint16

	HasServerPicoseconds bool
	ServerPicoseconds    uint16
}

// Copy shallow-copies the flag/timestamp fields then deep-copies the
// embedded Variant (spec §4.E DataValue).
func (d DataValue) Copy(reg *descriptor.Registry) (DataValue, types.StatusCode) {
	out := d
	out.Value = Variant{}
	status := types.Good
	if d.HasValue {
		v, st := d.Value.Copy(reg)
		out.Value = v
		status = st
	}
	return out, status
}

// DeleteMembers frees the embedded Variant and resets d to its zero value.
func (d *DataValue) DeleteMembers(reg *descriptor.Registry) {
	if d.HasValue {
		d.Value.DeleteMembers(reg)
	}
	*d = DataValue{}
}
