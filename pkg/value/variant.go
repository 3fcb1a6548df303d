package value

import (
	"reflect"

	"github.com/opcuacore/core/pkg/descriptor"
	"github.com/opcuacore/core/pkg/types"
)

// StorageKind discriminates how a Variant owns its Data, replacing the
// original's storageType tagged field (spec §3/§9).
type StorageKind int

const (
	// StorageData is a normal, owned value: DeleteMembers frees it.
	StorageData StorageKind = iota
	// StorageDataNoDelete borrows Data from elsewhere; DeleteMembers must
	// not free it. Copy promotes the result to StorageData, per the
	// original's observed behavior (spec §9 Open Questions).
	StorageDataNoDelete
	// StorageExternal is a non-owning pointer to caller-managed memory.
	StorageExternal
)

// Variant is the discriminated scalar-or-array container (component D).
// Data holds either a single element value (scalar) or a slice of
// elements (array); which one it is is discriminated structurally via
// reflect.Kind rather than a separate bool field, the same way a native
// sum type would dispatch on its payload (spec §9 Design Notes).
//
// A nil Data means the Variant holds nothing at all. A typed-nil slice
// (e.g. []int32(nil)) means a null array; a non-nil zero-length slice
// (as produced by ArrayNew(elem, 0)) is the present-but-empty sentinel.
type Variant struct {
	ElementKind       types.Kind
	ElementDescriptor *descriptor.Descriptor
	Storage           StorageKind
	Data              any
	ArrayDimensions   []uint32
}

func (v *Variant) element() Element {
	return Element{Kind: v.ElementKind, Descriptor: v.ElementDescriptor}
}

// IsEmpty reports whether the Variant holds no value at all.
func (v *Variant) IsEmpty() bool { return v.Data == nil }

// IsArray reports whether Data holds a slice (possibly nil or sentinel-empty).
func (v *Variant) IsArray() bool {
	if v.Data == nil {
		return false
	}
	return reflect.ValueOf(v.Data).Kind() == reflect.Slice
}

// IsScalar is the complement of IsArray among non-empty variants, matching
// spec §4.D's "arrayLength 0 and data present and not the sentinel" rule
// (a scalar in this representation is simply "not a slice").
func (v *Variant) IsScalar() bool { return !v.IsEmpty() && !v.IsArray() }

// ArrayLength is the logical element count: 0 for a scalar or empty Variant.
func (v *Variant) ArrayLength() int {
	if !v.IsArray() {
		return 0
	}
	return reflect.ValueOf(v.Data).Len()
}

// shapeDims returns the dimension vector the range engine should walk:
// ArrayDimensions if present, else the single-dimension vector
// [ArrayLength] — spec §4.D computeStrides.
func (v *Variant) shapeDims() []uint32 {
	if len(v.ArrayDimensions) > 0 {
		return v.ArrayDimensions
	}
	return []uint32{uint32(v.ArrayLength())}
}

// ValidateDimensions checks invariant 4: when ArrayDimensions is present,
// its product must equal ArrayLength.
func (v *Variant) ValidateDimensions() types.StatusCode {
	if len(v.ArrayDimensions) == 0 {
		return types.Good
	}
	product := 1
	for _, d := range v.ArrayDimensions {
		product *= int(d)
	}
	if product != v.ArrayLength() {
		return types.BadInternalError
	}
	return types.Good
}

// SetScalar borrows p as v's scalar payload (spec §6 setScalar).
func SetScalar(v *Variant, elem Element, p any) {
	*v = Variant{ElementKind: elem.Kind, ElementDescriptor: elem.Descriptor, Storage: StorageDataNoDelete, Data: p}
}

// SetScalarCopy deep-copies p into v's own storage (spec §6 setScalarCopy).
func SetScalarCopy(reg *descriptor.Registry, v *Variant, elem Element, p any) types.StatusCode {
	dst := reflect.New(elem.GoType()).Elem()
	status := copyElement(reg, elem, dst, reflect.ValueOf(p))
	*v = Variant{ElementKind: elem.Kind, ElementDescriptor: elem.Descriptor, Storage: StorageData, Data: dst.Interface()}
	return status
}

// SetArray borrows the slice p as v's array payload (spec §6 setArray).
func SetArray(v *Variant, elem Element, p any) {
	*v = Variant{ElementKind: elem.Kind, ElementDescriptor: elem.Descriptor, Storage: StorageDataNoDelete, Data: p}
}

// SetArrayCopy deep-copies the slice p into v's own storage (spec §6 setArrayCopy).
func SetArrayCopy(reg *descriptor.Registry, v *Variant, elem Element, p any) types.StatusCode {
	dst, status := ArrayCopy(reg, elem, p)
	*v = Variant{ElementKind: elem.Kind, ElementDescriptor: elem.Descriptor, Storage: StorageData, Data: dst}
	return status
}

// Copy deep-copies v, promoting a borrowed (StorageDataNoDelete) payload
// to owned storage in the result — the same promotion spec §9's Open
// Questions calls out for ExtensionObject's "decoded-no-delete" form.
func (v *Variant) Copy(reg *descriptor.Registry) (Variant, types.StatusCode) {
	if v.IsEmpty() {
		return Variant{}, types.Good
	}
	elem := v.element()
	if v.IsArray() {
		dst, status := ArrayCopy(reg, elem, v.Data)
		out := Variant{ElementKind: v.ElementKind, ElementDescriptor: v.ElementDescriptor, Storage: StorageData, Data: dst}
		if v.ArrayDimensions != nil {
			out.ArrayDimensions = append([]uint32(nil), v.ArrayDimensions...)
		}
		return out, status
	}
	dstVal := reflect.New(elem.GoType()).Elem()
	status := copyElement(reg, elem, dstVal, reflect.ValueOf(v.Data))
	return Variant{ElementKind: v.ElementKind, ElementDescriptor: v.ElementDescriptor, Storage: StorageData, Data: dstVal.Interface()}, status
}

// DeleteMembers frees everything v owns, then resets v to its zero value
// so it is safe to reuse or delete again (invariant 2). A borrowed
// (StorageDataNoDelete/StorageExternal) payload is never freed.
func (v *Variant) DeleteMembers(reg *descriptor.Registry) {
	if !v.IsEmpty() && v.Storage == StorageData {
		elem := v.element()
		if v.IsArray() {
			ArrayDelete(reg, elem, v.Data)
		} else {
			tmp := reflect.New(elem.GoType()).Elem()
			tmp.Set(reflect.ValueOf(v.Data))
			deleteElement(reg, elem, tmp)
		}
	}
	*v = Variant{}
}
