// Package value implements component C (the generic traversal engine)
// and component D (the Variant + NumericRange engine), plus the three
// leaf primitives — ExtensionObject, DataValue, Variant — that must
// reference a descriptor.Descriptor and therefore cannot live in
// pkg/types (spec §2).
//
// New/Copy/DeleteMembers/Delete walk a descriptor.Descriptor's Members
// in declaration order, dispatching built-in members through the
// jump-table functions in leaf.go and recursing into composite members.
// ArrayNew/ArrayCopy/ArrayDelete are their vectorized counterparts.
// ComputeStrides, Variant.CopyRange and Variant.SetRange/SetRangeCopy
// implement range-sliced reads and writes over a Variant's n-dimensional
// array, including recursion into nested Variants and string-like
// scalars.
package value
