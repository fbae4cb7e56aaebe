package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"qljs/internal/diag"
	"qljs/internal/source"
)

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.Add("widget.ts", []byte("let x = 1;\nuse(x);\n"), 0)

	bag := diag.NewBag(16)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.UseOfUndeclaredVariable,
		Message:  "use of undeclared variable 'y'",
		Primary:  source.Span{File: fileID, Start: 15, End: 16},
	}.WithNote(source.Span{File: fileID, Start: 0, End: 1}, "did you mean 'x'?"))
	return bag, fs
}

func TestPrettyIncludesLocationAndMessage(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, ShowNotes: true})

	out := buf.String()
	if !strings.Contains(out, "widget.ts:2:") {
		t.Fatalf("expected output to reference widget.ts line 2, got: %s", out)
	}
	if !strings.Contains(out, "use of undeclared variable 'y'") {
		t.Fatalf("expected the diagnostic message in output, got: %s", out)
	}
	if !strings.Contains(out, "did you mean 'x'?") {
		t.Fatalf("expected the note in output when ShowNotes is set, got: %s", out)
	}
}

func TestPrettyOmitsNotesWhenNotRequested(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 0, ShowNotes: false})

	if strings.Contains(buf.String(), "did you mean") {
		t.Fatal("expected no note text when ShowNotes is false")
	}
}

func TestJSONRoundTripsDiagnosticFields(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("failed to unmarshal JSON output: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" {
		t.Fatalf("expected severity ERROR, got %q", d.Severity)
	}
	if d.Location.StartLine != 2 {
		t.Fatalf("expected start line 2, got %d", d.Location.StartLine)
	}
	if len(d.Notes) != 1 {
		t.Fatalf("expected one note, got %d", len(d.Notes))
	}
}

func TestJSONRespectsMax(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.Add("a.ts", []byte("x\ny\nz\n"), 0)
	bag := diag.NewBag(16)
	for i := 0; i < 3; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.RedundantDeleteStatementOnVariable,
			Message:  "redundant delete",
			Primary:  source.Span{File: fileID, Start: 0, End: 1},
		})
	}

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{Max: 2}); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("failed to unmarshal JSON output: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("expected Max to cap output at 2, got %d", out.Count)
	}
}

func TestSarifProducesValidDocument(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	if err := Sarif(&buf, bag, fs, SarifRunMeta{ToolName: "qljs", ToolVersion: "0.1.0"}); err != nil {
		t.Fatalf("Sarif returned error: %v", err)
	}

	var doc sarifDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("failed to unmarshal SARIF output: %v", err)
	}
	if len(doc.Runs) != 1 || len(doc.Runs[0].Results) != 1 {
		t.Fatalf("expected exactly one run with one result, got %+v", doc)
	}
	if doc.Runs[0].Results[0].Level != "error" {
		t.Fatalf("expected level error, got %q", doc.Runs[0].Results[0].Level)
	}
}
