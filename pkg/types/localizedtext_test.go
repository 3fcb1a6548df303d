package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLocalizedTextCanonicalizesValidLocale(t *testing.T) {
	lt := NewLocalizedText("en-us", "hello")
	require.Equal(t, "en-US", lt.Locale.String())
	require.Equal(t, "hello", lt.Text.String())
}

func TestNewLocalizedTextKeepsMalformedLocaleRaw(t *testing.T) {
	lt := NewLocalizedText("not a locale!!", "hello")
	require.Equal(t, "not a locale!!", lt.Locale.String())
}

func TestLocalizedTextCopyIsDeep(t *testing.T) {
	lt := NewLocalizedText("en", "hi")
	out := lt.Copy()
	require.True(t, lt.Equal(out))
	out.DeleteMembers()
	require.False(t, lt.Text.IsNull())
}
