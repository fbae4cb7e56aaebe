// Package events implements the Event Source Adapter (spec.md §6.1): a
// thin translator that fixes the wire ABI a parser or other event producer
// targets, and forwards every call onto an *analyzer.Analyzer unchanged.
package events

import (
	"qljs/internal/ident"
	"qljs/internal/scope"
	"qljs/internal/source"
)

// Visitor is the event ABI spec.md §6.1 names: an upstream producer (a
// parser, a replayed event log, a test fixture) calls these methods in
// source order as it walks a syntax tree. The producer is responsible for
// resolving the `new Foo<T>(...)` vs `<`-as-operator ambiguity in
// JavaScript mode before it ever calls VisitVariableTypeUse or
// VisitVariableUse (SPEC_FULL Resolved Open Question #3) — this interface
// only ever sees the already-disambiguated result.
type Visitor interface {
	EnterBlockScope()
	ExitBlockScope()
	EnterFunctionScope()
	ExitFunctionScope()
	EnterFunctionBodyScope()
	ExitFunctionBodyScope()
	EnterClassScope()
	ExitClassScope()
	EnterClassBodyScope()
	ExitClassBodyScope()
	EnterInterfaceScope()
	ExitInterfaceScope()
	EnterNamespaceScope()
	ExitNamespaceScope()
	EnterWithScope()
	ExitWithScope()
	EnterConditionalTypeScope()
	ExitConditionalTypeScope()
	EnterForScope()
	ExitForScope()

	VisitVariableDeclaration(id ident.Identifier, kind scope.VariableKind, flags scope.DeclFlags)
	VisitVariableUse(id ident.Identifier)
	VisitVariableTypeUse(id ident.Identifier)
	VisitVariableAssignment(id ident.Identifier)
	VisitVariableExportUse(id ident.Identifier)
	VisitVariableDeleteUse(id ident.Identifier, keywordSpan source.Span)
	VisitVariableTypePredicateUse(id ident.Identifier)

	VisitEndOfModule()
}
