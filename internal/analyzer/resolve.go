package analyzer

import "qljs/internal/scope"

// tryResolveInScope attempts to resolve u against sc's own declarations,
// applying the per-use-kind rules of §4.3 step 1-2. It returns whether the
// use was resolved (whether or not resolving it also produced a
// diagnostic, e.g. use-before-declaration).
func (a *Analyzer) tryResolveInScope(u scope.Use, sc *scope.Scope) bool {
	switch u.Kind {
	case scope.UseValue:
		d, ok := sc.DeclaresValue(u.Ident.Text)
		if !ok {
			return false
		}
		a.checkUseBeforeDeclaration(u, d)
		return true

	case scope.UseAssignment:
		d, ok := sc.DeclaresValue(u.Ident.Text)
		if !ok {
			return false
		}
		a.checkAssignment(u, d)
		return true

	case scope.UseType:
		_, ok := sc.DeclaresType(u.Ident.Text)
		return ok

	case scope.UseExport:
		if _, ok := sc.DeclaresValue(u.Ident.Text); ok {
			return true
		}
		_, ok := sc.DeclaresType(u.Ident.Text)
		return ok

	case scope.UseDelete:
		d, ok := sc.DeclaresValue(u.Ident.Text)
		if !ok {
			return false
		}
		a.reportRedundantDelete(u, d)
		return true

	case scope.UseTypePredicate:
		d, ok := sc.DeclaresValue(u.Ident.Text)
		if !ok || !isParameterKind(d.Kind) {
			return false
		}
		return true

	default:
		return false
	}
}

func isParameterKind(k scope.VariableKind) bool {
	switch k {
	case scope.KindArrowParameter, scope.KindFunctionParameter, scope.KindIndexSignatureParameter:
		return true
	default:
		return false
	}
}

// checkUseBeforeDeclaration implements §4.3 step 1's third bullet: a value
// use textually preceding a TDZ-sensitive declaration (let, const, class,
// interface, generic_parameter) is an error. var/function/import are
// hoisted and never trigger it (VariableKind.TriggersUseBeforeDeclaration).
func (a *Analyzer) checkUseBeforeDeclaration(u scope.Use, d scope.Declaration) {
	if !d.Kind.TriggersUseBeforeDeclaration() {
		return
	}
	if !u.Ident.Before(d.Ident) {
		return
	}
	a.reportUseBeforeDeclaration(u, d)
}

// checkAssignment implements §4.3 step 1's mutability bullets.
func (a *Analyzer) checkAssignment(u scope.Use, d scope.Declaration) {
	precedes := u.Ident.Before(d.Ident)
	isConstLike := d.Kind == scope.KindConst || d.Kind == scope.KindClass
	isImportLike := d.Kind.IsImportFamily()

	switch {
	case isConstLike && precedes:
		a.reportAssignmentToConstBeforeDeclaration(u, d)
	case isConstLike:
		a.reportAssignmentToConst(u, d)
	case isImportLike:
		a.reportAssignmentToImported(u, d)
	case d.Kind.IsStrict() && d.Kind.Mutable() && precedes:
		a.reportAssignmentBeforeDeclaration(u, d)
	default:
		// var, function, parameters, let-after-declaration: mutable and
		// in scope, no diagnostic.
	}
}
