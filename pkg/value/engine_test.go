package value

import (
	"reflect"
	"testing"

	"github.com/opcuacore/core/pkg/descriptor"
	"github.com/opcuacore/core/pkg/types"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Name types.String
	Id   types.NodeId
	Tags []types.String
}

func widgetDescriptor(t *testing.T) (*descriptor.Registry, *descriptor.Descriptor) {
	t.Helper()
	reg := descriptor.NewRegistry()
	d, err := descriptor.New("Widget", 1, 0, reflect.TypeOf(widget{}), false, []descriptor.Member{
		{Name: "Name", FieldIndex: 0, NamespaceZero: true, MemberTypeIndex: int(types.KindString)},
		{Name: "Id", FieldIndex: 1, NamespaceZero: true, MemberTypeIndex: int(types.KindNodeId)},
		{Name: "Tags", FieldIndex: 2, IsArray: true, NamespaceZero: true, MemberTypeIndex: int(types.KindString)},
	})
	require.NoError(t, err)
	require.NoError(t, reg.Register(d))
	return reg, d
}

func widgetsEqual(a, b widget) bool {
	if !a.Name.Equal(b.Name) || !a.Id.Equal(b.Id) {
		return false
	}
	if len(a.Tags) != len(b.Tags) {
		return false
	}
	for i := range a.Tags {
		if !a.Tags[i].Equal(b.Tags[i]) {
			return false
		}
	}
	return true
}

func TestEngineCopyFaithfulness(t *testing.T) {
	reg, d := widgetDescriptor(t)
	src := widget{
		Name: types.NewString("sensor-1"),
		Id:   types.NumericNodeId(2, 77),
		Tags: []types.String{types.NewString("a"), types.NewString("b")},
	}
	var dst widget
	status := Copy(reg, d, &dst, &src)
	require.Equal(t, types.Good, status)
	require.True(t, widgetsEqual(src, dst))

	// Mutating the copy's backing array must not affect src (invariant 1
	// requires structural equality, which implies no aliasing).
	dst.Tags[0] = types.NewString("mutated")
	require.False(t, src.Tags[0].Equal(dst.Tags[0]))
}

func TestEngineDeleteIdempotent(t *testing.T) {
	reg, d := widgetDescriptor(t)
	src := widget{Name: types.NewString("sensor-1"), Tags: []types.String{types.NewString("a")}}
	var dst widget
	require.Equal(t, types.Good, Copy(reg, d, &dst, &src))

	DeleteMembers(reg, d, &dst)
	require.Equal(t, widget{}, dst)

	// Second deleteMembers on the zeroed buffer must be a no-op (invariant 2).
	DeleteMembers(reg, d, &dst)
	require.Equal(t, widget{}, dst)
}

func TestArrayNewEmptyIsSentinelNotNull(t *testing.T) {
	elem := Element{Kind: types.KindString}
	out := ArrayNew(elem, 0).([]types.String)
	require.NotNil(t, out)
	require.Len(t, out, 0)
}

func TestArrayCopyPreservesNullVsSentinel(t *testing.T) {
	elem := Element{Kind: types.KindString}

	var nilSrc []types.String
	dst, status := ArrayCopy(nil, elem, nilSrc)
	require.Equal(t, types.Good, status)
	require.Nil(t, dst.([]types.String))

	sentinelSrc := ArrayNew(elem, 0).([]types.String)
	dst2, status := ArrayCopy(nil, elem, sentinelSrc)
	require.Equal(t, types.Good, status)
	require.NotNil(t, dst2.([]types.String))
	require.Len(t, dst2.([]types.String), 0)
}

func TestArrayCopyDeepCopiesElements(t *testing.T) {
	reg := descriptor.NewRegistry()
	elem := Element{Kind: types.KindString}
	src := []types.String{types.NewString("x"), types.NewString("y")}
	out, status := ArrayCopy(reg, elem, src)
	require.Equal(t, types.Good, status)
	dst := out.([]types.String)
	require.Len(t, dst, 2)
	dst[0] = types.NewString("z")
	require.False(t, src[0].Equal(dst[0]))
}
