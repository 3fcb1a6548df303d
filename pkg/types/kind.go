// Package types holds the closed set of built-in primitive kinds (component
// A) and the leaf primitive values built from them (component E): String,
// ByteString, Guid, NodeId, ExpandedNodeId, QualifiedName, LocalizedText,
// DiagnosticInfo, and the status code bitmask every core operation returns.
//
// Composite types (anything with members resolved through a descriptor),
// Variant, DataValue and ExtensionObject live one layer up in package
// descriptor/value, since they need to reference a type descriptor and
// this package must not import that one back.
package types

// Kind enumerates the closed set of built-in primitive types the traversal
// engine knows how to copy and delete without consulting a descriptor.
type Kind int

const (
	KindBoolean Kind = iota
	KindSByte
	KindByte
	KindInt16
	KindUInt16
	KindInt32
	KindUInt32
	KindInt64
	KindUInt64
	KindFloat
	KindDouble
	KindString
	KindDateTime
	KindGuid
	KindByteString
	KindXmlElement
	KindNodeId
	KindExpandedNodeId
	KindStatusCode
	KindQualifiedName
	KindLocalizedText
	KindExtensionObject
	KindDataValue
	KindVariant
	KindDiagnosticInfo

	kindCount
)

// kindInfo describes the size/alignment/copy-semantics of one built-in
// kind. The table is constant-folded at init and never mutated afterward —
// there is no runtime registration path, matching the closed set in spec.
type kindInfo struct {
	name      string
	size      uintptr // sizeof the Go representation, informational only
	align     uintptr
	fixedSize bool // trivially copyable: owns no heap-backed substructure
}

var registry = [kindCount]kindInfo{
	KindBoolean:         {"Boolean", 1, 1, true},
	KindSByte:           {"SByte", 1, 1, true},
	KindByte:            {"Byte", 1, 1, true},
	KindInt16:           {"Int16", 2, 2, true},
	KindUInt16:          {"UInt16", 2, 2, true},
	KindInt32:           {"Int32", 4, 4, true},
	KindUInt32:          {"UInt32", 4, 4, true},
	KindInt64:           {"Int64", 8, 8, true},
	KindUInt64:          {"UInt64", 8, 8, true},
	KindFloat:           {"Float", 4, 4, true},
	KindDouble:          {"Double", 8, 8, true},
	KindString:          {"String", 32, 8, false},
	KindDateTime:        {"DateTime", 8, 8, true},
	KindGuid:            {"Guid", 16, 4, true},
	KindByteString:      {"ByteString", 32, 8, false},
	KindXmlElement:      {"XmlElement", 32, 8, false},
	KindNodeId:          {"NodeId", 104, 8, false},
	KindExpandedNodeId:  {"ExpandedNodeId", 144, 8, false},
	KindStatusCode:      {"StatusCode", 4, 4, true},
	KindQualifiedName:   {"QualifiedName", 40, 8, false},
	KindLocalizedText:   {"LocalizedText", 64, 8, false},
	KindExtensionObject: {"ExtensionObject", 184, 8, false},
	KindDataValue:       {"DataValue", 112, 8, false},
	KindVariant:         {"Variant", 64, 8, false},
	KindDiagnosticInfo:  {"DiagnosticInfo", 96, 8, false},
}

// Valid reports whether k is one of the closed set of built-in kinds.
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// String implements fmt.Stringer, returning the registered name or
// "Kind(invalid)" for an out-of-range value.
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(invalid)"
	}
	return registry[k].name
}

// Size returns the informational size, in bytes, of k's Go representation.
func (k Kind) Size() uintptr {
	if !k.Valid() {
		return 0
	}
	return registry[k].size
}

// Alignment returns the alignment, in bytes, of k's Go representation.
func (k Kind) Alignment() uintptr {
	if !k.Valid() {
		return 1
	}
	return registry[k].align
}

// FixedSize reports whether k is trivially copyable: its values own no
// heap-backed substructure and can be duplicated by a plain value copy.
func (k Kind) FixedSize() bool {
	if !k.Valid() {
		return false
	}
	return registry[k].fixedSize
}
