package analyzer

import (
	"fmt"

	"qljs/internal/diag"
	"qljs/internal/scope"
	"qljs/internal/source"
)

func zeroSpan() source.Span { return source.Span{} }

func (a *Analyzer) reportRedeclaration(original, redeclaration scope.Declaration) {
	d := diag.NewError(diag.RedeclarationOfVariable, redeclaration.Ident.Span,
		fmt.Sprintf("redeclaration of variable '%s'", redeclaration.Ident.Text)).
		WithRelatedSpan("redeclaration", redeclaration.Ident.Span).
		WithRelatedSpan("original_declaration", original.Ident.Span).
		WithExtra("name", redeclaration.Ident.Text)
	a.emit(d)
}

func (a *Analyzer) reportUseBeforeDeclaration(u scope.Use, decl scope.Declaration) {
	d := diag.NewError(diag.VariableUsedBeforeDeclaration, u.Ident.Span,
		fmt.Sprintf("variable '%s' used before its declaration", u.Ident.Text)).
		WithRelatedSpan("use", u.Ident.Span).
		WithRelatedSpan("declaration", decl.Ident.Span).
		WithExtra("name", u.Ident.Text)
	a.emit(d)
}

func (a *Analyzer) reportAssignmentToConst(u scope.Use, decl scope.Declaration) {
	d := diag.NewError(diag.AssignmentToConstVariable, u.Ident.Span,
		fmt.Sprintf("assignment to const variable '%s'", u.Ident.Text)).
		WithRelatedSpan("assignment", u.Ident.Span).
		WithRelatedSpan("declaration", decl.Ident.Span).
		WithExtra("name", u.Ident.Text).
		WithExtra("var_kind", decl.Kind.String())
	a.emit(d)
}

func (a *Analyzer) reportAssignmentToConstBeforeDeclaration(u scope.Use, decl scope.Declaration) {
	d := diag.NewError(diag.AssignmentToConstVariableBeforeDeclaration, u.Ident.Span,
		fmt.Sprintf("assignment to const variable '%s' before its declaration", u.Ident.Text)).
		WithRelatedSpan("assignment", u.Ident.Span).
		WithRelatedSpan("declaration", decl.Ident.Span).
		WithExtra("name", u.Ident.Text).
		WithExtra("var_kind", decl.Kind.String())
	a.emit(d)
}

func (a *Analyzer) reportAssignmentToImported(u scope.Use, decl scope.Declaration) {
	d := diag.NewError(diag.AssignmentToImportedVariable, u.Ident.Span,
		fmt.Sprintf("assignment to imported variable '%s'", u.Ident.Text)).
		WithRelatedSpan("assignment", u.Ident.Span).
		WithRelatedSpan("declaration", decl.Ident.Span).
		WithExtra("name", u.Ident.Text).
		WithExtra("var_kind", decl.Kind.String())
	a.emit(d)
}

func (a *Analyzer) reportAssignmentBeforeDeclaration(u scope.Use, decl scope.Declaration) {
	d := diag.NewError(diag.AssignmentBeforeVariableDeclaration, u.Ident.Span,
		fmt.Sprintf("assignment to variable '%s' before its declaration", u.Ident.Text)).
		WithRelatedSpan("assignment", u.Ident.Span).
		WithRelatedSpan("declaration", decl.Ident.Span).
		WithExtra("name", u.Ident.Text)
	a.emit(d)
}

func (a *Analyzer) reportRedundantDelete(u scope.Use, decl scope.Declaration) {
	span := u.Ident.Span
	if u.KeywordSpan.Len() > 0 {
		span = u.KeywordSpan
	}
	d := diag.NewWarning(diag.RedundantDeleteStatementOnVariable, span,
		fmt.Sprintf("redundant delete statement on variable '%s'", u.Ident.Text)).
		WithRelatedSpan("use", u.Ident.Span).
		WithRelatedSpan("declaration", decl.Ident.Span).
		WithExtra("name", u.Ident.Text)
	a.emit(d)
}

func (a *Analyzer) reportUndeclaredParameterInTypePredicate(u scope.Use) {
	d := diag.NewError(diag.UseOfUndeclaredParameterInTypePredicate, u.Ident.Span,
		fmt.Sprintf("'%s' is not a parameter of this function", u.Ident.Text)).
		WithExtra("name", u.Ident.Text)
	a.emit(d)
}

func (a *Analyzer) reportInvariantViolation(message string) {
	if a.options.StrictInternalChecks {
		panic("analyzer: " + message)
	}
	d := diag.NewError(diag.InternalAnalyzerInvariantViolation, zeroSpan(), message)
	a.emit(d)
}
