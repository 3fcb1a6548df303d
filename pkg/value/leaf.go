package value

import (
	"reflect"

	"github.com/opcuacore/core/pkg/descriptor"
	"github.com/opcuacore/core/pkg/types"
)

// copyElement copies one element of the given Element type: composite
// members recurse into the generic engine, built-in members dispatch
// through copyLeaf.
func copyElement(reg *descriptor.Registry, elem Element, dst, src reflect.Value) types.StatusCode {
	if elem.Descriptor != nil {
		return Copy(reg, elem.Descriptor, dst.Addr().Interface(), src.Addr().Interface())
	}
	return copyLeaf(reg, elem.Kind, dst, src)
}

// deleteElement is copyElement's destruction counterpart.
func deleteElement(reg *descriptor.Registry, elem Element, v reflect.Value) {
	if elem.Descriptor != nil {
		DeleteMembers(reg, elem.Descriptor, v.Addr().Interface())
		return
	}
	deleteLeaf(reg, elem.Kind, v)
}

// copyLeaf is the primitive jump table (spec §4.C/§9): a switch-free
// dispatch table would key on the same Kind enum; Go's type system lets
// a plain switch replace the original's function-pointer table without
// losing static typing on each case.
func copyLeaf(reg *descriptor.Registry, k types.Kind, dst, src reflect.Value) types.StatusCode {
	switch k {
	case types.KindBoolean, types.KindSByte, types.KindByte, types.KindInt16, types.KindUInt16,
		types.KindInt32, types.KindUInt32, types.KindInt64, types.KindUInt64, types.KindFloat,
		types.KindDouble, types.KindDateTime, types.KindGuid, types.KindStatusCode:
		dst.Set(src)
		return types.Good
	case types.KindString:
		dst.Set(reflect.ValueOf(src.Interface().(types.String).Copy()))
		return types.Good
	case types.KindByteString:
		dst.Set(reflect.ValueOf(src.Interface().(types.ByteString).Copy()))
		return types.Good
	case types.KindXmlElement:
		dst.Set(reflect.ValueOf(src.Interface().(types.XmlElement).Copy()))
		return types.Good
	case types.KindNodeId:
		dst.Set(reflect.ValueOf(src.Interface().(types.NodeId).Copy()))
		return types.Good
	case types.KindExpandedNodeId:
		dst.Set(reflect.ValueOf(src.Interface().(types.ExpandedNodeId).Copy()))
		return types.Good
	case types.KindQualifiedName:
		dst.Set(reflect.ValueOf(src.Interface().(types.QualifiedName).Copy()))
		return types.Good
	case types.KindLocalizedText:
		dst.Set(reflect.ValueOf(src.Interface().(types.LocalizedText).Copy()))
		return types.Good
	case types.KindDiagnosticInfo:
		dst.Set(reflect.ValueOf(src.Interface().(types.DiagnosticInfo).Copy()))
		return types.Good
	case types.KindExtensionObject:
		out, status := src.Interface().(ExtensionObject).Copy(reg)
		dst.Set(reflect.ValueOf(out))
		return status
	case types.KindDataValue:
		out, status := src.Interface().(DataValue).Copy(reg)
		dst.Set(reflect.ValueOf(out))
		return status
	case types.KindVariant:
		out, status := src.Interface().(Variant).Copy(reg)
		dst.Set(reflect.ValueOf(out))
		return status
	default:
		return types.BadInternalError
	}
}

// deleteLeaf is the delete jump table. Trivially-copyable leaves use a
// no-op deleter (spec §4.C) — Go's GC reclaims their storage regardless.
func deleteLeaf(reg *descriptor.Registry, k types.Kind, v reflect.Value) {
	switch k {
	case types.KindString:
		p := v.Addr().Interface().(*types.String)
		p.DeleteMembers()
	case types.KindByteString:
		v.Addr().Interface().(*types.ByteString).DeleteMembers()
	case types.KindXmlElement:
		v.Addr().Interface().(*types.XmlElement).DeleteMembers()
	case types.KindNodeId:
		v.Addr().Interface().(*types.NodeId).DeleteMembers()
	case types.KindExpandedNodeId:
		v.Addr().Interface().(*types.ExpandedNodeId).DeleteMembers()
	case types.KindQualifiedName:
		v.Addr().Interface().(*types.QualifiedName).DeleteMembers()
	case types.KindLocalizedText:
		v.Addr().Interface().(*types.LocalizedText).DeleteMembers()
	case types.KindDiagnosticInfo:
		v.Addr().Interface().(*types.DiagnosticInfo).DeleteMembers()
	case types.KindExtensionObject:
		p := v.Addr().Interface().(*ExtensionObject)
		p.DeleteMembers(reg)
	case types.KindDataValue:
		v.Addr().Interface().(*DataValue).DeleteMembers(reg)
	case types.KindVariant:
		v.Addr().Interface().(*Variant).DeleteMembers(reg)
	default:
		// Trivially-copyable kinds (Boolean..Double, DateTime, Guid,
		// StatusCode) and unknown kinds both own nothing to free.
	}
}
