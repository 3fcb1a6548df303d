package types

// IdentifierType discriminates NodeId's tagged union payload.
type IdentifierType int

const (
	IdentifierNumeric IdentifierType = iota
	IdentifierString
	IdentifierGuid
	IdentifierByteString
)

// NodeId is a tagged union over {Numeric u32, String, Guid, ByteString}
// plus a u16 namespace index — spec §3.
type NodeId struct {
	NamespaceIndex uint16
	IdentifierType IdentifierType

	Numeric    uint32
	StringID   String
	GuidID     Guid
	ByteString ByteString
}

// NumericNodeId builds a numeric NodeId, the common case.
func NumericNodeId(ns uint16, id uint32) NodeId {
	return NodeId{NamespaceIndex: ns, IdentifierType: IdentifierNumeric, Numeric: id}
}

// IsNull reports whether n is null: namespace 0 and the active variant's
// payload is zero/empty, per spec §3.
func (n NodeId) IsNull() bool {
	if n.NamespaceIndex != 0 {
		return false
	}
	switch n.IdentifierType {
	case IdentifierNumeric:
		return n.Numeric == 0
	case IdentifierGuid:
		return n.GuidID == Guid{}
	default:
		return n.StringID.Length() == 0 && n.ByteString.Length() == 0
	}
}

// Equal compares namespace, discriminant and the active variant's payload.
func (n NodeId) Equal(o NodeId) bool {
	if n.NamespaceIndex != o.NamespaceIndex || n.IdentifierType != o.IdentifierType {
		return false
	}
	switch n.IdentifierType {
	case IdentifierNumeric:
		return n.Numeric == o.Numeric
	case IdentifierString:
		return n.StringID.Equal(o.StringID)
	case IdentifierGuid:
		return n.GuidID.Equal(o.GuidID)
	case IdentifierByteString:
		return n.ByteString.Equal(o.ByteString)
	default:
		return false
	}
}

// Copy allocates per variant; numeric is a plain struct copy, the others
// deep-copy their owned payload.
func (n NodeId) Copy() NodeId {
	out := n
	switch n.IdentifierType {
	case IdentifierString:
		out.StringID = n.StringID.Copy()
	case IdentifierByteString:
		out.ByteString = n.ByteString.Copy()
	}
	return out
}

func (n *NodeId) DeleteMembers() {
	switch n.IdentifierType {
	case IdentifierString:
		n.StringID.DeleteMembers()
	case IdentifierByteString:
		n.ByteString.DeleteMembers()
	}
}

// ExpandedNodeId adds a namespace URI String and a server index u32.
type ExpandedNodeId struct {
	NodeId       NodeId
	NamespaceURI String
	ServerIndex  uint32
}

func (e ExpandedNodeId) Equal(o ExpandedNodeId) bool {
	return e.NodeId.Equal(o.NodeId) && e.NamespaceURI.Equal(o.NamespaceURI) && e.ServerIndex == o.ServerIndex
}

func (e ExpandedNodeId) Copy() ExpandedNodeId {
	return ExpandedNodeId{
		NodeId:       e.NodeId.Copy(),
		NamespaceURI: e.NamespaceURI.Copy(),
		ServerIndex:  e.ServerIndex,
	}
}

func (e *ExpandedNodeId) DeleteMembers() {
	e.NodeId.DeleteMembers()
	e.NamespaceURI.DeleteMembers()
}

// QualifiedName is a namespace-scoped name: a namespace index plus a String.
type QualifiedName struct {
	NamespaceIndex uint16
	Name           String
}

func (q QualifiedName) Equal(o QualifiedName) bool {
	return q.NamespaceIndex == o.NamespaceIndex && q.Name.Equal(o.Name)
}

func (q QualifiedName) Copy() QualifiedName {
	return QualifiedName{NamespaceIndex: q.NamespaceIndex, Name: q.Name.Copy()}
}

func (q *QualifiedName) DeleteMembers() { q.Name.DeleteMembers() }
