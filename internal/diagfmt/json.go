package diagfmt

import (
	"encoding/json"
	"io"

	"qljs/internal/diag"
	"qljs/internal/source"
)

// LocationJSON is a diagnostic span rendered for machine consumption.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON is a Note rendered for machine consumption.
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// FixEditJSON is a FixEdit rendered for machine consumption.
type FixEditJSON struct {
	Location LocationJSON `json:"location"`
	NewText  string       `json:"new_text"`
}

// FixJSON is a Fix rendered for machine consumption.
type FixJSON struct {
	Title string        `json:"title"`
	Edits []FixEditJSON `json:"edits,omitempty"`
}

// DiagnosticJSON is a Diagnostic rendered for machine consumption.
type DiagnosticJSON struct {
	Severity string            `json:"severity"`
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Location LocationJSON      `json:"location"`
	Extra    map[string]string `json:"extra,omitempty"`
	Notes    []NoteJSON        `json:"notes,omitempty"`
	Fixes    []FixJSON         `json:"fixes,omitempty"`
}

// DiagnosticsOutput is the top-level JSON document for one file's bag.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, opts JSONOpts) LocationJSON {
	path, start, end := locate(span, fs, opts.PathMode)
	loc := LocationJSON{File: path, StartByte: span.Start, EndByte: span.End}
	if opts.IncludePositions {
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// BuildDiagnosticsOutput converts bag into the JSON document shape without
// serializing it, so callers that need to merge multiple files' output
// (e.g. a batch lint run keyed by path) can do so before encoding.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	n := len(items)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}

	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, n)}
	for i := 0; i < n; i++ {
		d := items[i]
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts),
			Extra:    d.Extra,
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, fs, opts),
				})
			}
		}
		if opts.IncludeFixes {
			for _, fix := range d.Fixes {
				fj := FixJSON{Title: fix.Title}
				for _, edit := range fix.Edits {
					fj.Edits = append(fj.Edits, FixEditJSON{
						Location: makeLocation(edit.Span, fs, opts),
						NewText:  edit.NewText,
					})
				}
				dj.Fixes = append(dj.Fixes, fj)
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes bag as a single JSON document to w.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
