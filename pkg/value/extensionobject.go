package value

import (
	"reflect"

	"github.com/opcuacore/core/pkg/descriptor"
	"github.com/opcuacore/core/pkg/types"
)

// BodyEncoding discriminates an encoded ExtensionObject's body (spec §3).
type BodyEncoding int

const (
	EncodingNoBody BodyEncoding = iota
	EncodingByteString
	EncodingXml
)

// ExtensionObject is either encoded (a type id plus an opaque body) or
// decoded (a descriptor reference plus the decoded value itself, held in
// DecodedValue as a value of DecodedType.GoType, owned or borrowed). It lives in this package rather than pkg/types
// because a decoded payload needs a *descriptor.Descriptor reference,
// and types must not import descriptor (spec §2 package layout).
type ExtensionObject struct {
	Decoded  bool
	TypeId   types.NodeId
	Encoding BodyEncoding
	Body     types.ByteString

	DecodedType  *descriptor.Descriptor
	DecodedValue any
	// NoDelete marks a borrowed decoded payload ("decoded-no-delete" in
	// the original): DeleteMembers must not free it. Copy always
	// promotes the result to an owning payload (spec §9 Open Questions).
	NoDelete bool
}

// Copy clones the encoded body, or clones the decoded payload through
// the generic engine using the carried descriptor. A decoded
// ExtensionObject with no descriptor is a malformed payload —
// *internal-error*, per spec §4.E.
func (e ExtensionObject) Copy(reg *descriptor.Registry) (ExtensionObject, types.StatusCode) {
	if !e.Decoded {
		return ExtensionObject{
			Decoded:  false,
			TypeId:   e.TypeId.Copy(),
			Encoding: e.Encoding,
			Body:     e.Body.Copy(),
		}, types.Good
	}
	if e.DecodedType == nil || e.DecodedValue == nil {
		return ExtensionObject{}, types.BadInternalError
	}
	srcPtr := reflect.New(e.DecodedType.GoType)
	srcPtr.Elem().Set(reflect.ValueOf(e.DecodedValue))
	dstPtr := reflect.New(e.DecodedType.GoType).Interface()
	status := Copy(reg, e.DecodedType, dstPtr, srcPtr.Interface())
	if status != types.Good {
		return ExtensionObject{}, status
	}
	return ExtensionObject{
		Decoded:      true,
		DecodedType:  e.DecodedType,
		DecodedValue: reflect.ValueOf(dstPtr).Elem().Interface(),
		NoDelete:     false,
	}, types.Good
}

// DeleteMembers frees the owned payload (encoded body, or decoded value
// unless borrowed) and resets e to its zero value.
func (e *ExtensionObject) DeleteMembers(reg *descriptor.Registry) {
	if !e.Decoded {
		e.TypeId.DeleteMembers()
		e.Body.DeleteMembers()
		*e = ExtensionObject{}
		return
	}
	if !e.NoDelete && e.DecodedType != nil && e.DecodedValue != nil {
		ptr := reflect.New(e.DecodedType.GoType)
		ptr.Elem().Set(reflect.ValueOf(e.DecodedValue))
		DeleteMembers(reg, e.DecodedType, ptr.Interface())
	}
	*e = ExtensionObject{}
}
