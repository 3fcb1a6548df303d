package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiagnosticInfoCopyIsRecursiveAndDeep(t *testing.T) {
	inner := DiagnosticInfo{HasSymbolicID: true, SymbolicID: 7}
	src := DiagnosticInfo{
		HasAdditionalInfo:      true,
		AdditionalInfo:         NewString("extra"),
		HasInnerDiagnosticInfo: true,
		InnerDiagnosticInfo:    &inner,
	}

	out := src.Copy()
	require.True(t, out.HasInnerDiagnosticInfo)
	require.NotSame(t, src.InnerDiagnosticInfo, out.InnerDiagnosticInfo)
	require.Equal(t, int32(7), out.InnerDiagnosticInfo.SymbolicID)

	out.InnerDiagnosticInfo.SymbolicID = 99
	require.Equal(t, int32(7), src.InnerDiagnosticInfo.SymbolicID)
}

func TestDiagnosticInfoDeleteMembersIsIdempotent(t *testing.T) {
	inner := DiagnosticInfo{HasSymbolicID: true}
	d := DiagnosticInfo{
		HasAdditionalInfo:      true,
		AdditionalInfo:         NewString("extra"),
		HasInnerDiagnosticInfo: true,
		InnerDiagnosticInfo:    &inner,
	}
	d.DeleteMembers()
	require.False(t, d.HasInnerDiagnosticInfo)
	require.Nil(t, d.InnerDiagnosticInfo)

	d.DeleteMembers()
	require.Nil(t, d.InnerDiagnosticInfo)
}

func TestDiagnosticInfoCopyWithoutInnerLeavesNilInner(t *testing.T) {
	d := DiagnosticInfo{HasSymbolicID: true, SymbolicID: 3}
	out := d.Copy()
	require.False(t, out.HasInnerDiagnosticInfo)
	require.Nil(t, out.InnerDiagnosticInfo)
}
