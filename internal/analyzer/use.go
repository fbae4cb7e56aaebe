package analyzer

import (
	"qljs/internal/ident"
	"qljs/internal/scope"
	"qljs/internal/source"
)

// VisitVariableUse records a value use (§4.2). Resolution is deferred to
// scope exit (§4.3): a parser may emit a use before the declaration that
// hoists to cover it.
func (a *Analyzer) VisitVariableUse(id ident.Identifier) {
	a.currentScope().AddPendingUse(scope.Use{Ident: id, Kind: scope.UseValue})
}

// VisitVariableTypeUse records a type use.
func (a *Analyzer) VisitVariableTypeUse(id ident.Identifier) {
	a.currentScope().AddPendingUse(scope.Use{Ident: id, Kind: scope.UseType})
}

// VisitVariableAssignment records an assignment use.
func (a *Analyzer) VisitVariableAssignment(id ident.Identifier) {
	a.currentScope().AddPendingUse(scope.Use{Ident: id, Kind: scope.UseAssignment})
}

// VisitVariableExportUse records an export use, which may refer to either
// the value or type namespace.
func (a *Analyzer) VisitVariableExportUse(id ident.Identifier) {
	a.currentScope().AddPendingUse(scope.Use{Ident: id, Kind: scope.UseExport})
}

// VisitVariableDeleteUse records a `delete` use; keywordSpan carries the
// `delete` keyword's span for diagnostics.
func (a *Analyzer) VisitVariableDeleteUse(id ident.Identifier, keywordSpan source.Span) {
	a.currentScope().AddPendingUse(scope.Use{Ident: id, Kind: scope.UseDelete, KeywordSpan: keywordSpan})
}

// VisitVariableTypePredicateUse records a parameter reference inside a
// type-predicate annotation of the function whose signature scope is
// currently open (§4.2). It is recorded in the current scope, which at the
// point a predicate annotation is visited is always that function's own
// scope (parameters and the predicate share one scope, §3).
func (a *Analyzer) VisitVariableTypePredicateUse(id ident.Identifier) {
	a.currentScope().AddPendingUse(scope.Use{Ident: id, Kind: scope.UseTypePredicate})
}
