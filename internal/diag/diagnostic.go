package diag

import (
	"qljs/internal/source"
)

// Note is a secondary span/message attached to a Diagnostic, e.g. "variable
// declared here".
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is a single text replacement a fix-it would apply.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a suggested automated correction.
type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is the analyzer's sole output record (§6.2). RelatedSpans and
// Extra carry the fields §6.2 names ("declaration", "redeclaration",
// "original_declaration", "use", "name", "assignment", "in_keyword",
// "out_keyword", "var_kind") without giving every diagnostic kind its own
// Go struct.
type Diagnostic struct {
	Severity     Severity
	Code         Code
	Message      string
	Primary      source.Span
	RelatedSpans map[string]source.Span
	Extra        map[string]string
	Notes        []Note
	Fixes        []Fix
}

// WithRelatedSpan attaches a named related span (e.g. "declaration",
// "original_declaration") and returns the diagnostic for chaining.
func (d Diagnostic) WithRelatedSpan(field string, span source.Span) Diagnostic {
	if d.RelatedSpans == nil {
		d.RelatedSpans = make(map[string]source.Span, 1)
	}
	d.RelatedSpans[field] = span
	return d
}

// WithExtra attaches a named extra field (e.g. "var_kind", "name").
func (d Diagnostic) WithExtra(field, value string) Diagnostic {
	if d.Extra == nil {
		d.Extra = make(map[string]string, 1)
	}
	d.Extra[field] = value
	return d
}

// WithNote appends a note to the diagnostic.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// WithFix appends a fix-it suggestion to the diagnostic.
func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
