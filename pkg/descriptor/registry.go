package descriptor

import (
	"fmt"

	"github.com/opcuacore/core/pkg/types"
)

// Registry resolves Member references to either a built-in types.Kind or
// another registered Descriptor. It is the Go-idiomatic replacement for
// the original's "table base = current descriptor − typeIndex" address
// arithmetic: every namespace gets its own slot table indexed by
// TypeIndex, looked up by map rather than computed by subtraction.
type Registry struct {
	namespaces map[uint16]map[int]*Descriptor
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{namespaces: make(map[uint16]map[int]*Descriptor)}
}

// Register adds d to the registry under its own Namespace/TypeIndex slot.
// It fails if the slot is already occupied or any member fails to
// resolve against the kinds and descriptors registered so far — member
// resolution order therefore matters: leaf-first, the same order spec
// §2's component list names them in.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil {
		return &types.Error{Kind: types.ErrKindDescriptor, Msg: "register: nil descriptor"}
	}
	slots, ok := r.namespaces[d.Namespace]
	if !ok {
		slots = make(map[int]*Descriptor)
		r.namespaces[d.Namespace] = slots
	}
	if _, exists := slots[d.TypeIndex]; exists {
		return &types.Error{Kind: types.ErrKindDescriptor, Msg: fmt.Sprintf("register %s: namespace %d type index %d already occupied", d.Name, d.Namespace, d.TypeIndex)}
	}
	slots[d.TypeIndex] = d

	for _, m := range d.Members {
		if _, _, err := r.resolveMember(d, m); err != nil {
			delete(slots, d.TypeIndex)
			return err
		}
	}
	return nil
}

// Lookup returns the descriptor registered at (namespace, typeIndex).
func (r *Registry) Lookup(namespace uint16, typeIndex int) (*Descriptor, bool) {
	slots, ok := r.namespaces[namespace]
	if !ok {
		return nil, false
	}
	d, ok := slots[typeIndex]
	return d, ok
}

// Resolved is the outcome of resolving a Member: exactly one of Kind
// (IsBuiltin true) or Target (IsBuiltin false) is meaningful.
type Resolved struct {
	IsBuiltin bool
	Kind      types.Kind
	Target    *Descriptor
}

// Resolve resolves a single member of owner to its built-in Kind or
// target Descriptor, returning an *types.Error with ErrKindDescriptor
// when resolution fails — surfaced to callers as *internal-error*
// through the traversal engine's status accumulation (spec §7).
func (r *Registry) Resolve(owner *Descriptor, m Member) (Resolved, error) {
	res, _, err := r.resolveMember(owner, m)
	return res, err
}

func (r *Registry) resolveMember(owner *Descriptor, m Member) (Resolved, *Descriptor, error) {
	if m.NamespaceZero {
		k := types.Kind(m.MemberTypeIndex)
		if !k.Valid() {
			return Resolved{}, nil, &types.Error{Kind: types.ErrKindDescriptor, Msg: fmt.Sprintf("%s.%s: invalid built-in kind index %d", owner.Name, m.Name, m.MemberTypeIndex)}
		}
		return Resolved{IsBuiltin: true, Kind: k}, nil, nil
	}
	target, ok := r.Lookup(owner.Namespace, m.MemberTypeIndex)
	if !ok {
		return Resolved{}, nil, &types.Error{Kind: types.ErrKindDescriptor, Msg: fmt.Sprintf("%s.%s: no descriptor at namespace %d index %d", owner.Name, m.Name, owner.Namespace, m.MemberTypeIndex)}
	}
	return Resolved{IsBuiltin: false, Target: target}, target, nil
}
