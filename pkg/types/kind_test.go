package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindValidRejectsOutOfRange(t *testing.T) {
	require.True(t, KindBoolean.Valid())
	require.True(t, KindDiagnosticInfo.Valid())
	require.False(t, Kind(-1).Valid())
	require.False(t, kindCount.Valid())
}

func TestKindFixedSizeMatchesHeapOwnership(t *testing.T) {
	require.True(t, KindInt32.FixedSize())
	require.False(t, KindString.FixedSize(), "String owns a heap buffer")
	require.False(t, KindVariant.FixedSize())
}

func TestKindStringNamesEveryBuiltin(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		require.NotEmpty(t, k.String())
	}
}

func TestKindStringInvalidValue(t *testing.T) {
	require.Equal(t, "Kind(invalid)", Kind(-1).String())
}
