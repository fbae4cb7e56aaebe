package analyzer

import (
	"fmt"

	"qljs/internal/diag"
	"qljs/internal/ident"
	"qljs/internal/scope"
)

// VisitVariableDeclaration adds a declaration to the appropriate scope,
// applying the redeclaration rules of §4.4 and the hoisting target
// selection of §4.1.
func (a *Analyzer) VisitVariableDeclaration(id ident.Identifier, kind scope.VariableKind, flags scope.DeclFlags) {
	target := a.declarationTargetScope(kind)
	d := scope.Declaration{Ident: id, Kind: kind, Flags: flags}

	if conflict := target.AddDeclaration(d); conflict.Found {
		a.reportRedeclaration(conflict.Original, d)
	} else if target.Kind == scope.KindFunctionBody && d.Kind.IsStrict() {
		a.checkGenericParameterConflict(d)
	}

	if a.stack.AtModule() && d.Kind.IsStrict() {
		a.checkShadowsGlobal(d)
	}
}

// declarationTargetScope picks the scope a declaration is recorded into:
// var always hoists to the nearest function_body/module scope (§4.1);
// function hoists the same way only under LegacyFunctionHoisting; every
// other kind is recorded in its own lexical scope.
func (a *Analyzer) declarationTargetScope(kind scope.VariableKind) *scope.Scope {
	if kind == scope.KindVar {
		return a.stack.EnclosingVarHoistScope()
	}
	if kind == scope.KindFunction && a.options.LegacyFunctionHoisting {
		return a.stack.EnclosingVarHoistScope()
	}
	return a.currentScope()
}

// checkGenericParameterConflict implements §4.4 rule 9: a generic
// parameter declared on a function's signature scope conflicts with a
// strict declaration of the same name in its function_body, with the
// generic parameter reported as the original regardless of textual order
// (the parameter list always precedes the body).
func (a *Analyzer) checkGenericParameterConflict(d scope.Declaration) {
	parent := a.stack.Parent()
	if parent == nil || parent.Kind != scope.KindFunction_ {
		return
	}
	decls, ok := parent.Lookup(d.Ident.Text)
	if !ok {
		return
	}
	for _, pd := range decls {
		if pd.Kind == scope.KindGenericParameter {
			a.reportRedeclaration(pd, d)
			return
		}
	}
}

func (a *Analyzer) checkShadowsGlobal(d scope.Declaration) {
	props, known := a.globals.Lookup(d.Ident.Text)
	if !known || props.IsShadowable {
		return
	}
	diagnostic := diag.NewError(diag.VariableShadowsNonShadowableGlobal, d.Ident.Span,
		fmt.Sprintf("declaration of '%s' shadows a non-shadowable global variable", d.Ident.Text)).
		WithRelatedSpan("declaration", d.Ident.Span).
		WithExtra("name", d.Ident.Text)
	a.emit(diagnostic)
}
