package value

import (
	"testing"

	"github.com/opcuacore/core/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestVariantCopyArrayIsDeep(t *testing.T) {
	v := Variant{ElementKind: types.KindString, Storage: StorageData, Data: []types.String{types.NewString("a"), types.NewString("b")}}
	out, status := v.Copy(nil)
	require.Equal(t, types.Good, status)

	dst := out.Data.([]types.String)
	dst[0] = types.NewString("mutated")
	require.Equal(t, "a", v.Data.([]types.String)[0].String())
}

func TestVariantCopyPromotesBorrowedStorage(t *testing.T) {
	var v Variant
	SetScalar(&v, Element{Kind: types.KindString}, types.NewString("borrowed"))
	require.Equal(t, StorageDataNoDelete, v.Storage)

	out, status := v.Copy(nil)
	require.Equal(t, types.Good, status)
	require.Equal(t, StorageData, out.Storage)
}

func TestVariantDeleteMembersSkipsBorrowedPayload(t *testing.T) {
	s := types.NewString("borrowed")
	var v Variant
	SetScalar(&v, Element{Kind: types.KindString}, s)
	v.DeleteMembers(nil)
	require.True(t, v.IsEmpty())
	// The borrowed payload itself must be untouched.
	require.Equal(t, "borrowed", s.String())
}

func TestVariantScalarArrayDiscriminant(t *testing.T) {
	empty := Variant{}
	require.True(t, empty.IsEmpty())
	require.False(t, empty.IsScalar())
	require.False(t, empty.IsArray())

	scalar := Variant{ElementKind: types.KindInt32, Storage: StorageData, Data: int32(5)}
	require.True(t, scalar.IsScalar())
	require.False(t, scalar.IsArray())

	arr := Variant{ElementKind: types.KindInt32, Storage: StorageData, Data: []int32{1, 2, 3}}
	require.True(t, arr.IsArray())
	require.Equal(t, 3, arr.ArrayLength())
}

func TestVariantValidateDimensions(t *testing.T) {
	v := Variant{ElementKind: types.KindInt32, Data: []int32{1, 2, 3, 4, 5, 6}, ArrayDimensions: []uint32{2, 3}}
	require.Equal(t, types.Good, v.ValidateDimensions())

	bad := Variant{ElementKind: types.KindInt32, Data: []int32{1, 2, 3}, ArrayDimensions: []uint32{2, 3}}
	require.Equal(t, types.BadInternalError, bad.ValidateDimensions())
}

func TestExtensionObjectCopyEncoded(t *testing.T) {
	eo := ExtensionObject{
		TypeId:   types.NumericNodeId(0, 42),
		Encoding: EncodingByteString,
		Body:     types.NewByteString([]byte{1, 2, 3}),
	}
	out, status := eo.Copy(nil)
	require.Equal(t, types.Good, status)
	require.Equal(t, []byte{1, 2, 3}, out.Body.Bytes())

	out.Body.Bytes()[0] = 9
	require.Equal(t, byte(1), eo.Body.Bytes()[0])
}

func TestDataValueCopyDeepCopiesVariant(t *testing.T) {
	dv := DataValue{
		HasValue:  true,
		Value:     Variant{ElementKind: types.KindString, Storage: StorageData, Data: types.NewString("x")},
		HasStatus: true,
		Status:    types.BadInternalError,
	}
	out, status := dv.Copy(nil)
	require.Equal(t, types.Good, status)
	require.Equal(t, types.BadInternalError, out.Status)
	require.Equal(t, "x", out.Value.Data.(types.String).String())
}
