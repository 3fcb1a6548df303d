package types

// DiagnosticInfo is a recursive structure carrying presence flags for
// symbolic id, namespace URI, locale and localized text (each an index
// into a string table maintained elsewhere — out of the core's scope),
// an additional-info String, an inner status code, and an owned pointer
// to a nested DiagnosticInfo — spec §3.
type DiagnosticInfo struct {
	HasSymbolicID    bool
	SymbolicID       int32
	HasNamespaceURI  bool
	NamespaceURI     int32
	HasLocale        bool
	Locale           int32
	HasLocalizedText bool
	LocalizedText    int32

	HasAdditionalInfo bool
	AdditionalInfo    String

	HasInnerStatusCode bool
	InnerStatusCode    StatusCode

	HasInnerDiagnosticInfo bool
	InnerDiagnosticInfo    *DiagnosticInfo
}

// Copy shallow-copies the flag/code fields, conditionally deep-copies the
// additional-info String, and recursively clones any inner diagnostic by
// allocating a new node — matching DiagnosticInfo_copy.
func (d DiagnosticInfo) Copy() DiagnosticInfo {
	out := d
	out.AdditionalInfo = String{}
	out.InnerDiagnosticInfo = nil

	if d.HasAdditionalInfo {
		out.AdditionalInfo = d.AdditionalInfo.Copy()
	}
	if d.HasInnerDiagnosticInfo && d.InnerDiagnosticInfo != nil {
		inner := d.InnerDiagnosticInfo.Copy()
		out.InnerDiagnosticInfo = &inner
		out.HasInnerDiagnosticInfo = true
	} else {
		out.HasInnerDiagnosticInfo = false
	}
	return out
}

// DeleteMembers frees the additional-info String and recursively deletes
// any owned inner diagnostic, then resets d to its zero value.
func (d *DiagnosticInfo) DeleteMembers() {
	d.AdditionalInfo.DeleteMembers()
	if d.HasInnerDiagnosticInfo && d.InnerDiagnosticInfo != nil {
		d.InnerDiagnosticInfo.DeleteMembers()
	}
	*d = DiagnosticInfo{}
}
