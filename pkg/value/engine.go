package value

import (
	"reflect"

	"github.com/opcuacore/core/pkg/descriptor"
	"github.com/opcuacore/core/pkg/types"
)

// New allocates a zero-initialized value of d's Go representation
// (spec §4.C new(T)). Go's zero value already satisfies "zeroed buffer"
// for every leaf and composite in this model, so no per-member
// initialization walk is required.
func New(d *descriptor.Descriptor) any {
	return reflect.New(d.GoType).Elem().Interface()
}

// Copy zero-initializes dstPtr then deep-copies srcPtr into it member by
// member, in declaration order (spec §4.C copy). A failure partway
// leaves dst reachable enough for DeleteMembers to reclaim what was
// copied so far: failures accumulate via bitwise OR and, if any member
// failed, the engine calls DeleteMembers on dst before returning.
func Copy(reg *descriptor.Registry, d *descriptor.Descriptor, dstPtr, srcPtr any) types.StatusCode {
	dstV := reflect.ValueOf(dstPtr).Elem()
	srcV := reflect.ValueOf(srcPtr).Elem()
	dstV.Set(reflect.Zero(d.GoType))

	status := types.Good
	for _, m := range d.Members {
		res, err := reg.Resolve(d, m)
		if err != nil {
			status |= types.BadInternalError
			continue
		}
		elem := elementFromResolved(res)
		df := dstV.Field(m.FieldIndex)
		sf := srcV.Field(m.FieldIndex)

		if m.IsArray {
			out, st := ArrayCopy(reg, elem, sf.Interface())
			status |= st
			df.Set(reflect.ValueOf(out))
			continue
		}
		status |= copyElement(reg, elem, df, sf)
	}

	if status != types.Good {
		DeleteMembers(reg, d, dstPtr)
	}
	return status
}

// DeleteMembers frees everything owned by p's members, then re-zeroes p
// so it can be safely reused or deleted again (invariant 2).
func DeleteMembers(reg *descriptor.Registry, d *descriptor.Descriptor, p any) {
	pv := reflect.ValueOf(p).Elem()
	for _, m := range d.Members {
		res, err := reg.Resolve(d, m)
		if err != nil {
			continue
		}
		elem := elementFromResolved(res)
		f := pv.Field(m.FieldIndex)
		if m.IsArray {
			ArrayDelete(reg, elem, f.Interface())
			continue
		}
		deleteElement(reg, elem, f)
	}
	pv.Set(reflect.Zero(d.GoType))
}

// Delete is deleteMembers followed by freeing the buffer itself (spec
// §4.C delete(p,T)). Go has no manual free: once the caller drops its
// last reference to p, the GC reclaims it. Delete is kept for API parity
// with the new/copy/deleteMembers/delete family; it is DeleteMembers
// under another name.
func Delete(reg *descriptor.Registry, d *descriptor.Descriptor, p any) {
	DeleteMembers(reg, d, p)
}

// ArrayNew allocates a slice of n zero-valued elements. n == 0 yields the
// empty-array sentinel: reflect.MakeSlice always returns a non-nil slice
// header, even at length 0, which is exactly the "present but empty"
// representation spec §4.C/§5 calls for — distinct from a nil slice,
// which this package always uses to mean "null".
func ArrayNew(elem Element, n int) any {
	return reflect.MakeSlice(reflect.SliceOf(elem.GoType()), n, n).Interface()
}

// ArrayCopy copies a slice of elem-typed values, propagating the
// null/sentinel/real-allocation distinction (spec §4.C, invariant 8):
// a nil src yields a nil dst; a non-nil zero-length src (the sentinel)
// yields a freshly allocated sentinel; otherwise every element is
// bulk-copied (fixed-size types) or deep-copied one at a time.
func ArrayCopy(reg *descriptor.Registry, elem Element, src any) (any, types.StatusCode) {
	srcV := reflect.ValueOf(src)
	sliceType := reflect.SliceOf(elem.GoType())
	if !srcV.IsValid() || srcV.IsNil() {
		return reflect.Zero(sliceType).Interface(), types.Good
	}

	n := srcV.Len()
	dstV := reflect.MakeSlice(sliceType, n, n)
	if elem.FixedSize() {
		reflect.Copy(dstV, srcV)
		return dstV.Interface(), types.Good
	}

	status := types.Good
	for i := 0; i < n; i++ {
		status |= copyElement(reg, elem, dstV.Index(i), srcV.Index(i))
	}
	if status != types.Good {
		ArrayDelete(reg, elem, dstV.Interface())
		return reflect.Zero(sliceType).Interface(), status
	}
	return dstV.Interface(), status
}

// ArrayDelete frees every owned element of p; it is a no-op for a null
// or sentinel-empty slice and for fixed-size (trivially-copyable)
// element types, matching the original's "free only if not the
// sentinel" rule generalized to Go's GC (there is nothing to free beyond
// what each element's own deleter reclaims).
func ArrayDelete(reg *descriptor.Registry, elem Element, p any) {
	pv := reflect.ValueOf(p)
	if !pv.IsValid() || elem.FixedSize() {
		return
	}
	n := pv.Len()
	for i := 0; i < n; i++ {
		deleteElement(reg, elem, pv.Index(i))
	}
}
