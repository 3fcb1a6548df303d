package value

import (
	"reflect"

	"github.com/opcuacore/core/pkg/descriptor"
	"github.com/opcuacore/core/pkg/types"
)

// Element describes the type of a single Variant element or array member:
// either a built-in types.Kind, or a registered composite Descriptor.
// Exactly one of the two is meaningful at a time, mirroring the
// Member.NamespaceZero discriminant from the descriptor package.
type Element struct {
	Kind       types.Kind
	Descriptor *descriptor.Descriptor
}

// GoType returns the Go representation of one value of this element type.
func (e Element) GoType() reflect.Type {
	if e.Descriptor != nil {
		return e.Descriptor.GoType
	}
	return builtinGoType(e.Kind)
}

// FixedSize reports whether values of this type own no external storage
// and can be bulk-copied with reflect.Copy (the Go analogue of memcpy).
func (e Element) FixedSize() bool {
	if e.Descriptor != nil {
		return e.Descriptor.FixedSize
	}
	return e.Kind.FixedSize()
}

func elementFromResolved(res descriptor.Resolved) Element {
	if res.IsBuiltin {
		return Element{Kind: res.Kind}
	}
	return Element{Descriptor: res.Target}
}

// builtinGoType maps a built-in Kind to the Go type that represents it.
// KindExtensionObject/KindDataValue/KindVariant resolve to this package's
// own types since a Variant/ExtensionObject/DataValue needs to reference
// descriptor (component B), and types must not import descriptor (spec
// §2 layering).
func builtinGoType(k types.Kind) reflect.Type {
	switch k {
	case types.KindBoolean:
		return reflect.TypeOf(bool(false))
	case types.KindSByte:
		return reflect.TypeOf(int8(0))
	case types.KindByte:
		return reflect.TypeOf(uint8(0))
	case types.KindInt16:
		return reflect.TypeOf(int16(0))
	case types.KindUInt16:
		return reflect.TypeOf(uint16(0))
	case types.KindInt32:
		return reflect.TypeOf(int32(0))
	case types.KindUInt32:
		return reflect.TypeOf(uint32(0))
	case types.KindInt64:
		return reflect.TypeOf(int64(0))
	case types.KindUInt64:
		return reflect.TypeOf(uint64(0))
	case types.KindFloat:
		return reflect.TypeOf(float32(0))
	case types.KindDouble:
		return reflect.TypeOf(float64(0))
	case types.KindString:
		return reflect.TypeOf(types.String{})
	case types.KindDateTime:
		return reflect.TypeOf(types.DateTime(0))
	case types.KindGuid:
		return reflect.TypeOf(types.Guid{})
	case types.KindByteString:
		return reflect.TypeOf(types.ByteString{})
	case types.KindXmlElement:
		return reflect.TypeOf(types.XmlElement{})
	case types.KindNodeId:
		return reflect.TypeOf(types.NodeId{})
	case types.KindExpandedNodeId:
		return reflect.TypeOf(types.ExpandedNodeId{})
	case types.KindStatusCode:
		return reflect.TypeOf(types.StatusCode(0))
	case types.KindQualifiedName:
		return reflect.TypeOf(types.QualifiedName{})
	case types.KindLocalizedText:
		return reflect.TypeOf(types.LocalizedText{})
	case types.KindExtensionObject:
		return reflect.TypeOf(ExtensionObject{})
	case types.KindDataValue:
		return reflect.TypeOf(DataValue{})
	case types.KindVariant:
		return reflect.TypeOf(Variant{})
	case types.KindDiagnosticInfo:
		return reflect.TypeOf(types.DiagnosticInfo{})
	default:
		return nil
	}
}

// isStringLike reports whether k is one of the length-prefixed byte-buffer
// kinds the range engine treats specially when slicing into a scalar
// (spec §4.D, glossary "String-like type").
func isStringLike(k types.Kind) bool {
	return k == types.KindString || k == types.KindByteString || k == types.KindXmlElement
}
