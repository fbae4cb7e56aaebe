package analyzer

import (
	"fmt"

	"qljs/internal/diag"
	"qljs/internal/scope"
)

// VisitEndOfModule finalizes analysis (§4.6): it resolves every use still
// pending in the module scope against the Global Declared Set and reports
// whatever remains unresolved. It is terminal; further visit calls on this
// Analyzer are a programmer error.
func (a *Analyzer) VisitEndOfModule() {
	if a.finalized {
		a.reportInvariantViolation("visit_end_of_module called more than once")
		return
	}
	if a.stack.Len() != 1 {
		a.reportInvariantViolation(fmt.Sprintf("visit_end_of_module with %d unclosed scope(s)", a.stack.Len()-1))
	}

	moduleScope := a.stack.Current()
	for _, u := range moduleScope.DrainPendingUses() {
		if a.tryResolveInScope(u, moduleScope) {
			continue
		}
		a.resolveAgainstGlobals(u)
	}
	a.finalized = true
}

// resolveAgainstGlobals implements §4.6 step 2-3.
func (a *Analyzer) resolveAgainstGlobals(u scope.Use) {
	props, known := a.globals.Lookup(u.Ident.Text)

	switch u.Kind {
	case scope.UseValue:
		if !known {
			a.reportUndeclaredVariable(u)
			return
		}
		if props.IsTypeOnly {
			a.reportUndeclaredVariable(u)
		}

	case scope.UseType:
		if !known {
			a.reportUndeclaredType(u)
		}

	case scope.UseAssignment:
		if !known || !props.IsWritable {
			a.reportAssignmentToUndeclared(u)
		}

	case scope.UseExport:
		if !known {
			a.reportUndeclaredVariable(u)
		}

	case scope.UseDelete:
		if known {
			a.reportRedundantDeleteGlobal(u)
		} else {
			a.reportUndeclaredVariable(u)
		}

	case scope.UseTypePredicate:
		// A type-predicate use only ever resolves against the directly
		// enclosing function's own parameters (§4.3); one that reaches
		// end-of-module unresolved was already reported when its function
		// scope exited (analyzer/scopes.go), so there is nothing to do.
	}
}

func (a *Analyzer) reportUndeclaredVariable(u scope.Use) {
	d := diag.NewError(diag.UseOfUndeclaredVariable, u.Ident.Span,
		fmt.Sprintf("use of undeclared variable '%s'", u.Ident.Text)).
		WithRelatedSpan("use", u.Ident.Span).
		WithExtra("name", u.Ident.Text)
	a.emit(d)
}

func (a *Analyzer) reportUndeclaredType(u scope.Use) {
	d := diag.NewError(diag.UseOfUndeclaredType, u.Ident.Span,
		fmt.Sprintf("use of undeclared type '%s'", u.Ident.Text)).
		WithRelatedSpan("use", u.Ident.Span).
		WithExtra("name", u.Ident.Text)
	a.emit(d)
}

func (a *Analyzer) reportAssignmentToUndeclared(u scope.Use) {
	d := diag.NewError(diag.AssignmentToUndeclaredVariable, u.Ident.Span,
		fmt.Sprintf("assignment to undeclared variable '%s'", u.Ident.Text)).
		WithRelatedSpan("assignment", u.Ident.Span).
		WithExtra("name", u.Ident.Text)
	a.emit(d)
}

func (a *Analyzer) reportRedundantDeleteGlobal(u scope.Use) {
	span := u.Ident.Span
	if u.KeywordSpan.Len() > 0 {
		span = u.KeywordSpan
	}
	d := diag.NewWarning(diag.RedundantDeleteStatementOnVariable, span,
		fmt.Sprintf("redundant delete statement on variable '%s'", u.Ident.Text)).
		WithRelatedSpan("use", u.Ident.Span).
		WithExtra("name", u.Ident.Text)
	a.emit(d)
}
