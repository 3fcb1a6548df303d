// Package descriptor implements component B of the core: an open set of
// composite type descriptors, resolved by namespace and type index.
//
// A Descriptor names its Go representation (GoType) and an ordered list
// of Members. Each Member either points at a built-in types.Kind
// (NamespaceZero) or at another Descriptor registered in the same
// namespace. Registry is the process-lifetime table both kinds of
// reference resolve against; descriptors themselves are immutable once
// built.
package descriptor
