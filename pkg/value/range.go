package value

import (
	"reflect"

	"github.com/opcuacore/core/internal/buf"
	"github.com/opcuacore/core/pkg/descriptor"
	"github.com/opcuacore/core/pkg/types"
)

// Dimension is a closed [Min,Max] interval selecting one array axis.
type Dimension struct {
	Min, Max uint32
}

// NumericRange is an ordered sequence of Dimensions, one per array axis,
// selecting a rectangular subregion (spec §3 glossary).
type NumericRange struct {
	Dimensions []Dimension
}

// ComputeStrides tests range against dims/arrayLength and, if compatible,
// returns the (total, block, stride, first) quadruple a caller uses to
// walk total/block contiguous runs of block elements, separated by
// stride-block elements of skip, starting at linear offset first (spec
// §4.D). This is a direct port of the original computeStrides, walking
// dimensions from innermost to outermost and freezing the contiguous
// block at the first dimension whose selected width is less than the
// full dimension width.
func ComputeStrides(dims []uint32, arrayLength int, r NumericRange) (total, block, stride, first int, status types.StatusCode) {
	dimsCount := len(dims)
	if len(r.Dimensions) != dimsCount {
		return 0, 0, 0, 0, types.BadIndexRangeNoData
	}

	count := 1
	for i := 0; i < dimsCount; i++ {
		d := r.Dimensions[i]
		if d.Min > d.Max {
			return 0, 0, 0, 0, types.BadIndexRangeInvalid
		}
		if d.Max >= dims[i] {
			return 0, 0, 0, 0, types.BadIndexRangeNoData
		}
		product, ok := buf.MulOverflowSafe(count, int(d.Max-d.Min)+1)
		if !ok {
			return 0, 0, 0, 0, types.BadIndexRangeNoData
		}
		count = product
	}
	total = count

	block = count
	stride = arrayLength
	first = 0
	running := 1
	foundContiguous := false
	for k := dimsCount - 1; k >= 0; k-- {
		dimRange := int(r.Dimensions[k].Max-r.Dimensions[k].Min) + 1
		if !foundContiguous && dimRange != int(dims[k]) {
			foundContiguous = true
			block = running * dimRange
			stride = running * int(dims[k])
		}
		first += running * int(r.Dimensions[k].Min)
		running *= int(dims[k])
	}
	return total, block, stride, first, types.Good
}

// copySubString returns a copy of the bytes src[dim.Min] through
// src[dim.Max] (both inclusive) of a string-like src
// (spec §4.D copySubString); src/dst are raw bytes since String,
// ByteString and XmlElement all share the same byte-buffer shape.
func copySubString(src []byte, dim Dimension) ([]byte, types.StatusCode) {
	if dim.Min > dim.Max {
		return nil, types.BadIndexRangeInvalid
	}
	length := int(dim.Max-dim.Min) + 1
	sub, ok := buf.Slice(src, int(dim.Min), length)
	if !ok {
		return nil, types.BadIndexRangeNoData
	}
	out := make([]byte, length)
	copy(out, sub)
	return out, types.Good
}

func stringLikeBytes(k types.Kind, v any) []byte {
	switch k {
	case types.KindString:
		return v.(types.String).Bytes()
	case types.KindByteString:
		return v.(types.ByteString).Bytes()
	default:
		return v.(types.XmlElement).Bytes()
	}
}

func stringLikeFromBytes(k types.Kind, b []byte) any {
	switch k {
	case types.KindString:
		return types.NewString(string(b))
	case types.KindByteString:
		return types.NewByteString(b)
	default:
		return types.NewXmlElement(b)
	}
}

// CopyRange implements the Variant + NumericRange engine's sliced deep
// copy (spec §4.D copyRange). A scalar source is virtualized as a
// length-1 array with a single [0,0] leading dimension so the same
// stride machinery handles both cases; any remaining range dimensions
// ("nextrange") are carried into the element, which must be either a
// nested Variant or a string-like scalar with exactly one trailing
// dimension.
func (v *Variant) CopyRange(reg *descriptor.Registry, r NumericRange) (Variant, types.StatusCode) {
	if v.IsEmpty() {
		return Variant{}, types.BadIndexRangeNoData
	}
	elem := v.element()
	isScalar := v.IsScalar()
	stringLike := isStringLike(v.ElementKind) && v.ElementDescriptor == nil

	var thisrange, nextrange NumericRange
	var srcSlice reflect.Value
	dims := v.shapeDims()
	arrayLength := v.ArrayLength()

	if isScalar {
		thisrange = NumericRange{Dimensions: []Dimension{{Min: 0, Max: 0}}}
		nextrange = r
		dims = []uint32{1}
		arrayLength = 1
		srcSlice = reflect.MakeSlice(reflect.SliceOf(elem.GoType()), 1, 1)
		srcSlice.Index(0).Set(reflect.ValueOf(v.Data))
	} else {
		dimsCount := len(dims)
		if dimsCount > len(r.Dimensions) {
			return Variant{}, types.BadIndexRangeNoData
		}
		thisrange = NumericRange{Dimensions: r.Dimensions[:dimsCount]}
		nextrange = NumericRange{Dimensions: r.Dimensions[dimsCount:]}
		srcSlice = reflect.ValueOf(v.Data)
	}

	total, block, stride, first, status := ComputeStrides(dims, arrayLength, thisrange)
	if status != types.Good {
		return Variant{}, status
	}

	dstSlice := reflect.MakeSlice(reflect.SliceOf(elem.GoType()), total, total)
	blockCount := total / block
	srcIdx := first
	dstIdx := 0

	if len(nextrange.Dimensions) == 0 {
		if elem.FixedSize() {
			for i := 0; i < blockCount; i++ {
				reflect.Copy(dstSlice.Slice(dstIdx, dstIdx+block), srcSlice.Slice(srcIdx, srcIdx+block))
				dstIdx += block
				srcIdx += stride
			}
		} else {
			for i := 0; i < blockCount && status == types.Good; i++ {
				for j := 0; j < block; j++ {
					status |= copyElement(reg, elem, dstSlice.Index(dstIdx), srcSlice.Index(srcIdx))
					dstIdx++
					srcIdx++
				}
				srcIdx += stride - block
			}
		}
	} else {
		isVariantElem := v.ElementKind == types.KindVariant && v.ElementDescriptor == nil
		if !isVariantElem {
			if !stringLike {
				status = types.BadIndexRangeNoData
			} else if len(nextrange.Dimensions) != 1 {
				status = types.BadIndexRangeNoData
			}
		}
		for i := 0; i < blockCount && status == types.Good; i++ {
			for j := 0; j < block && status == types.Good; j++ {
				if stringLike {
					b, st := copySubString(stringLikeBytes(v.ElementKind, srcSlice.Index(srcIdx).Interface()), nextrange.Dimensions[0])
					status = st
					if st == types.Good {
						dstSlice.Index(dstIdx).Set(reflect.ValueOf(stringLikeFromBytes(v.ElementKind, b)))
					}
				} else {
					nested := srcSlice.Index(srcIdx).Interface().(Variant)
					out, st := nested.CopyRange(reg, nextrange)
					status = st
					if st == types.Good {
						dstSlice.Index(dstIdx).Set(reflect.ValueOf(out))
					}
				}
				dstIdx++
				srcIdx++
			}
			srcIdx += stride - block
		}
	}

	if status != types.Good {
		for i := 0; i < dstIdx; i++ {
			deleteElement(reg, elem, dstSlice.Index(i))
		}
		return Variant{}, status
	}

	if isScalar {
		return Variant{ElementKind: v.ElementKind, ElementDescriptor: v.ElementDescriptor, Storage: StorageData, Data: dstSlice.Index(0).Interface()}, types.Good
	}

	out := Variant{ElementKind: v.ElementKind, ElementDescriptor: v.ElementDescriptor, Storage: StorageData, Data: dstSlice.Interface()}
	// A sliced non-scalar result always records its shape, even when the
	// source had no explicit ArrayDimensions (invariant 5).
	widths := make([]uint32, len(thisrange.Dimensions))
	for k, d := range thisrange.Dimensions {
		widths[k] = d.Max - d.Min + 1
	}
	out.ArrayDimensions = widths
	return out, types.Good
}

// setRange implements Variant.SetRange/SetRangeCopy (spec §4.D setRange):
// move semantics (copy=false) and fixed-size element types bulk-assign;
// otherwise each destination element is destroyed before being
// overwritten, to avoid leaking owned substructure. After a move of
// non-fixed-size elements, the source backing slice is zeroed so
// ownership is never aliased — fixing
// the original's one-line memset bug (spec §9) by zeroing the correct
// number of logical elements rather than sizeof(elem_size)*arraySize
// bytes.
func setRange(reg *descriptor.Registry, v *Variant, src any, r NumericRange, doCopy bool) types.StatusCode {
	dims := v.shapeDims()
	total, block, stride, first, status := ComputeStrides(dims, v.ArrayLength(), r)
	if status != types.Good {
		return status
	}

	srcSlice := reflect.ValueOf(src)
	if srcSlice.Len() != total {
		return types.BadIndexRangeInvalid
	}

	elem := v.element()
	dstSlice := reflect.ValueOf(v.Data)
	blockCount := total / block
	dstIdx := first
	srcIdx := 0

	if elem.FixedSize() || !doCopy {
		for i := 0; i < blockCount; i++ {
			reflect.Copy(dstSlice.Slice(dstIdx, dstIdx+block), srcSlice.Slice(srcIdx, srcIdx+block))
			srcIdx += block
			dstIdx += stride
		}
	} else {
		for i := 0; i < blockCount; i++ {
			for j := 0; j < block; j++ {
				deleteElement(reg, elem, dstSlice.Index(dstIdx))
				status |= copyElement(reg, elem, dstSlice.Index(dstIdx), srcSlice.Index(srcIdx))
				dstIdx++
				srcIdx++
			}
			dstIdx += stride - block
		}
	}

	if !doCopy && !elem.FixedSize() {
		zero := reflect.Zero(elem.GoType())
		for i := 0; i < total; i++ {
			srcSlice.Index(i).Set(zero)
		}
	}
	return status
}

// SetRange moves src into v's array at the subregion described by r:
// src's elements are transferred, not deep-copied, and src is zeroed
// afterward unless the element type is fixed-size.
func (v *Variant) SetRange(reg *descriptor.Registry, src any, r NumericRange) types.StatusCode {
	return setRange(reg, v, src, r, false)
}

// SetRangeCopy deep-copies src into v's array at the subregion described by r.
func (v *Variant) SetRangeCopy(reg *descriptor.Registry, src any, r NumericRange) types.StatusCode {
	return setRange(reg, v, src, r, true)
}
