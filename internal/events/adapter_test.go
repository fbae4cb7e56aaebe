package events

import (
	"testing"

	"qljs/internal/analyzer"
	"qljs/internal/diag"
	"qljs/internal/globals"
	"qljs/internal/ident"
	"qljs/internal/scope"
	"qljs/internal/source"
)

func TestAdapterForwardsDeclarationAndUse(t *testing.T) {
	bag := diag.NewBag(16)
	a := analyzer.New(globals.StrictMode(), &diag.BagReporter{Bag: bag}, analyzer.VarOptions{})
	var v Visitor = NewAdapter(a)

	x := ident.Identifier{Text: "x", Span: source.Span{File: 1, Start: 0, End: 1}}
	v.VisitVariableUse(x)
	decl := ident.Identifier{Text: "x", Span: source.Span{File: 1, Start: 10, End: 11}}
	v.VisitVariableDeclaration(decl, scope.KindLet, 0)
	v.VisitEndOfModule()

	if bag.Len() != 1 || bag.Items()[0].Code != diag.VariableUsedBeforeDeclaration {
		t.Fatalf("expected a single use-before-declaration diagnostic, got %v", bag.Items())
	}
}
