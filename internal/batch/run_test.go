package batch

import (
	"context"
	"errors"
	"testing"

	"qljs/internal/analyzer"
	"qljs/internal/diag"
	"qljs/internal/events"
	"qljs/internal/globals"
	"qljs/internal/ident"
	"qljs/internal/scope"
	"qljs/internal/source"
)

func declareAndUse(path string) func(v events.Visitor) error {
	return func(v events.Visitor) error {
		v.VisitVariableUse(ident.Identifier{Text: "x", Span: source.Span{Start: 0, End: 1}})
		v.VisitVariableDeclaration(ident.Identifier{Text: "x", Span: source.Span{Start: 10, End: 11}}, scope.KindLet, 0)
		return nil
	}
}

func TestRunAnalyzesEachFileIndependently(t *testing.T) {
	tasks := []FileTask{
		{Path: "b.ts", Produce: declareAndUse("b.ts")},
		{Path: "a.ts", Produce: declareAndUse("a.ts")},
	}
	var seen []Event
	opts := Options{
		Globals:        globals.StrictMode(),
		VarOptions:     analyzer.VarOptions{},
		MaxDiagnostics: 16,
		Sink:           func(ev Event) { seen = append(seen, ev) },
	}

	results, err := Run(context.Background(), tasks, opts)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Path != "a.ts" || results[1].Path != "b.ts" {
		t.Fatalf("expected results sorted by path, got %q then %q", results[0].Path, results[1].Path)
	}
	for _, r := range results {
		if r.Bag.Len() != 1 || r.Bag.Items()[0].Code != diag.VariableUsedBeforeDeclaration {
			t.Fatalf("file %s: expected one use-before-declaration diagnostic, got %v", r.Path, r.Bag.Items())
		}
	}
	if len(seen) == 0 {
		t.Fatal("expected progress events to be emitted")
	}
}

func TestRunPropagatesProducerError(t *testing.T) {
	boom := errors.New("boom")
	tasks := []FileTask{
		{Path: "bad.ts", Produce: func(v events.Visitor) error { return boom }},
	}
	opts := Options{Globals: globals.StrictMode(), MaxDiagnostics: 16}
	results, err := Run(context.Background(), tasks, opts)
	if err != nil {
		t.Fatalf("Run itself should not fail on a per-file producer error, got %v", err)
	}
	if len(results) != 1 || results[0].Err != boom {
		t.Fatalf("expected the producer error surfaced on the result, got %+v", results)
	}
}
