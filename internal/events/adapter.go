package events

import (
	"qljs/internal/analyzer"
	"qljs/internal/ident"
	"qljs/internal/scope"
	"qljs/internal/source"
)

// Adapter wraps an *analyzer.Analyzer so it satisfies Visitor. Every method
// is a direct, unconditional forward — producers depend on Visitor rather
// than the concrete Analyzer type, so a future second event producer (a
// different parser, a fuzzer replaying a recorded event log) can drive the
// same analyzer without this package changing.
type Adapter struct {
	analyzer *analyzer.Analyzer
}

// NewAdapter returns a Visitor bound to a.
func NewAdapter(a *analyzer.Analyzer) *Adapter {
	return &Adapter{analyzer: a}
}

var _ Visitor = (*Adapter)(nil)

func (ad *Adapter) EnterBlockScope()          { ad.analyzer.EnterBlockScope() }
func (ad *Adapter) ExitBlockScope()           { ad.analyzer.ExitBlockScope() }
func (ad *Adapter) EnterFunctionScope()       { ad.analyzer.EnterFunctionScope() }
func (ad *Adapter) ExitFunctionScope()        { ad.analyzer.ExitFunctionScope() }
func (ad *Adapter) EnterFunctionBodyScope()   { ad.analyzer.EnterFunctionBodyScope() }
func (ad *Adapter) ExitFunctionBodyScope()    { ad.analyzer.ExitFunctionBodyScope() }
func (ad *Adapter) EnterClassScope()          { ad.analyzer.EnterClassScope() }
func (ad *Adapter) ExitClassScope()           { ad.analyzer.ExitClassScope() }
func (ad *Adapter) EnterClassBodyScope()      { ad.analyzer.EnterClassBodyScope() }
func (ad *Adapter) ExitClassBodyScope()       { ad.analyzer.ExitClassBodyScope() }
func (ad *Adapter) EnterInterfaceScope()      { ad.analyzer.EnterInterfaceScope() }
func (ad *Adapter) ExitInterfaceScope()       { ad.analyzer.ExitInterfaceScope() }
func (ad *Adapter) EnterNamespaceScope()      { ad.analyzer.EnterNamespaceScope() }
func (ad *Adapter) ExitNamespaceScope()       { ad.analyzer.ExitNamespaceScope() }
func (ad *Adapter) EnterWithScope()           { ad.analyzer.EnterWithScope() }
func (ad *Adapter) ExitWithScope()            { ad.analyzer.ExitWithScope() }
func (ad *Adapter) EnterConditionalTypeScope() { ad.analyzer.EnterConditionalTypeScope() }
func (ad *Adapter) ExitConditionalTypeScope()  { ad.analyzer.ExitConditionalTypeScope() }
func (ad *Adapter) EnterForScope()            { ad.analyzer.EnterForScope() }
func (ad *Adapter) ExitForScope()             { ad.analyzer.ExitForScope() }

func (ad *Adapter) VisitVariableDeclaration(id ident.Identifier, kind scope.VariableKind, flags scope.DeclFlags) {
	ad.analyzer.VisitVariableDeclaration(id, kind, flags)
}

func (ad *Adapter) VisitVariableUse(id ident.Identifier) { ad.analyzer.VisitVariableUse(id) }

func (ad *Adapter) VisitVariableTypeUse(id ident.Identifier) {
	ad.analyzer.VisitVariableTypeUse(id)
}

func (ad *Adapter) VisitVariableAssignment(id ident.Identifier) {
	ad.analyzer.VisitVariableAssignment(id)
}

func (ad *Adapter) VisitVariableExportUse(id ident.Identifier) {
	ad.analyzer.VisitVariableExportUse(id)
}

func (ad *Adapter) VisitVariableDeleteUse(id ident.Identifier, keywordSpan source.Span) {
	ad.analyzer.VisitVariableDeleteUse(id, keywordSpan)
}

func (ad *Adapter) VisitVariableTypePredicateUse(id ident.Identifier) {
	ad.analyzer.VisitVariableTypePredicateUse(id)
}

func (ad *Adapter) VisitEndOfModule() { ad.analyzer.VisitEndOfModule() }
