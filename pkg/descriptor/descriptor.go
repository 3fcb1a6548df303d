// Package descriptor implements the type descriptor model (component B):
// an open set of composite type descriptions built from the built-in
// kinds in pkg/types, resolved by namespace + type index rather than the
// byte-offset pointer arithmetic the original engine used.
package descriptor

import (
	"reflect"

	"github.com/opcuacore/core/pkg/types"
)

// Member describes one field of a composite type: which Go struct field
// carries it, whether it is an array, and which descriptor it resolves
// to — either a built-in Kind (NamespaceZero) or another descriptor in
// the same namespace (MemberTypeIndex into that namespace's table).
//
// This replaces the original's "padding bytes then size" byte-offset
// walk: FieldIndex is the typed-accessor equivalent, read through
// reflect and bounds-checked by the struct's own field count rather than
// raw pointer arithmetic.
type Member struct {
	Name            string
	FieldIndex      int
	IsArray         bool
	NamespaceZero   bool
	MemberTypeIndex int
}

// Descriptor is immutable once registered, matching the original's
// process-lifetime descriptor table (spec §4.B).
type Descriptor struct {
	Name      string
	Namespace uint16
	TypeIndex int
	GoType    reflect.Type
	Members   []Member
	FixedSize bool
}

// Size reports the in-memory footprint of one value of this type. It is
// informational only — Go's allocator and GC own the actual memory, so
// nothing in this package uses it for offset arithmetic.
func (d *Descriptor) Size() uintptr {
	if d.GoType == nil {
		return 0
	}
	return d.GoType.Size()
}

// New builds a Descriptor, validating that every FieldIndex is in range
// for GoType up front so a malformed descriptor fails here, before it can
// be registered, rather than surfacing as a reflect panic deep in a traversal.
func New(name string, namespace uint16, typeIndex int, goType reflect.Type, fixedSize bool, members []Member) (*Descriptor, error) {
	if goType == nil || goType.Kind() != reflect.Struct {
		return nil, &types.Error{Kind: types.ErrKindDescriptor, Msg: "descriptor " + name + ": GoType must be a struct"}
	}
	numField := goType.NumField()
	for _, m := range members {
		if m.FieldIndex < 0 || m.FieldIndex >= numField {
			return nil, &types.Error{Kind: types.ErrKindDescriptor, Msg: "descriptor " + name + ": member " + m.Name + " field index out of range"}
		}
	}
	return &Descriptor{
		Name:      name,
		Namespace: namespace,
		TypeIndex: typeIndex,
		GoType:    goType,
		Members:   members,
		FixedSize: fixedSize,
	}, nil
}
