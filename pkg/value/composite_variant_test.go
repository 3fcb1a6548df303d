package value

import (
	"reflect"
	"testing"

	"github.com/opcuacore/core/pkg/descriptor"
	"github.com/opcuacore/core/pkg/types"
	"github.com/stretchr/testify/require"
)

// reading mirrors a DataValue-bearing reading record, exercising the
// engine's dispatch of KindVariant/KindDataValue/KindExtensionObject
// members of a composite descriptor (leaf.go's copyLeaf/deleteLeaf).
type reading struct {
	Tag     types.String
	Current Variant
	Stamped DataValue
	Payload ExtensionObject
}

func readingDescriptor(t *testing.T) (*descriptor.Registry, *descriptor.Descriptor) {
	t.Helper()
	reg := descriptor.NewRegistry()
	d, err := descriptor.New("Reading", 1, 1, reflect.TypeOf(reading{}), false, []descriptor.Member{
		{Name: "Tag", FieldIndex: 0, NamespaceZero: true, MemberTypeIndex: int(types.KindString)},
		{Name: "Current", FieldIndex: 1, NamespaceZero: true, MemberTypeIndex: int(types.KindVariant)},
		{Name: "Stamped", FieldIndex: 2, NamespaceZero: true, MemberTypeIndex: int(types.KindDataValue)},
		{Name: "Payload", FieldIndex: 3, NamespaceZero: true, MemberTypeIndex: int(types.KindExtensionObject)},
	})
	require.NoError(t, err)
	require.NoError(t, reg.Register(d))
	return reg, d
}

func TestEngineCopyDispatchesNestedVariantDataValueExtensionObject(t *testing.T) {
	reg, d := readingDescriptor(t)

	src := reading{
		Tag:     types.NewString("sensor-1"),
		Current: Variant{ElementKind: types.KindInt32, Storage: StorageData, Data: int32(42)},
		Stamped: DataValue{
			HasValue: true,
			Value:    Variant{ElementKind: types.KindString, Storage: StorageData, Data: types.NewString("stamped")},
		},
		Payload: ExtensionObject{
			TypeId:   types.NumericNodeId(0, 7),
			Encoding: EncodingByteString,
			Body:     types.NewByteString([]byte{1, 2}),
		},
	}

	var dst reading
	status := Copy(reg, d, &dst, &src)
	require.Equal(t, types.Good, status)

	require.Equal(t, int32(42), dst.Current.Data)
	require.Equal(t, "stamped", dst.Stamped.Value.Data.(types.String).String())
	require.Equal(t, []byte{1, 2}, dst.Payload.Body.Bytes())

	// Deep-copy: mutating dst's nested payload must not affect src.
	dst.Payload.Body.Bytes()[0] = 99
	require.Equal(t, byte(1), src.Payload.Body.Bytes()[0])

	DeleteMembers(reg, d, &dst)
	require.Equal(t, reading{}, dst)
}
