package types

import "golang.org/x/text/language"

// LocalizedText is (locale: String, text: String), spec §3.
type LocalizedText struct {
	Locale String
	Text   String
}

// NewLocalizedText builds a LocalizedText, canonicalizing locale through
// BCP-47 parsing when it looks like a valid language tag. A malformed
// locale is not a structural error — the core has no schema validation
// beyond structural invariants (spec §1 non-goals) — it is simply stored
// as given instead of canonicalized.
func NewLocalizedText(locale, text string) LocalizedText {
	if locale != "" {
		if tag, err := language.Parse(locale); err == nil {
			locale = tag.String()
		}
	}
	return LocalizedText{Locale: NewString(locale), Text: NewString(text)}
}

func (l LocalizedText) Equal(o LocalizedText) bool {
	return l.Locale.Equal(o.Locale) && l.Text.Equal(o.Text)
}

func (l LocalizedText) Copy() LocalizedText {
	return LocalizedText{Locale: l.Locale.Copy(), Text: l.Text.Copy()}
}

func (l *LocalizedText) DeleteMembers() {
	l.Locale.DeleteMembers()
	l.Text.DeleteMembers()
}
