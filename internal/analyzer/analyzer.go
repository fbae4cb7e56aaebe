// Package analyzer implements the Variable Analyzer (spec.md §2.6, §4.2-4.6):
// the event-driven state machine that consumes parser visit events,
// maintains a scope stack, resolves uses, and emits diagnostics.
package analyzer

import (
	"qljs/internal/diag"
	"qljs/internal/globals"
	"qljs/internal/scope"
	"qljs/internal/scopestack"
)

// Analyzer processes exactly one module end-to-end (§5: single-threaded,
// no suspension points, no shared mutable state across instances). Create
// one per file; do not reuse after VisitEndOfModule.
type Analyzer struct {
	stack    *scopestack.Stack
	globals  *globals.Set
	reporter diag.Reporter
	options  VarOptions

	// finalized guards against events after visit_end_of_module (§4.2:
	// "visit_end_of_module is terminal").
	finalized bool
}

// New constructs an Analyzer. globalSet must not be mutated for the
// lifetime of the Analyzer (§5: analyzers share only the immutable Global
// Declared Set and the config cache across a batch run).
func New(globalSet *globals.Set, reporter diag.Reporter, options VarOptions) *Analyzer {
	return &Analyzer{
		stack:    scopestack.New(),
		globals:  globalSet,
		reporter: reporter,
		options:  options,
	}
}

func (a *Analyzer) emit(d diag.Diagnostic) {
	if a.reporter != nil {
		a.reporter.Report(d)
	}
}

// currentScope returns the innermost active scope.
func (a *Analyzer) currentScope() *scope.Scope {
	return a.stack.Current()
}
