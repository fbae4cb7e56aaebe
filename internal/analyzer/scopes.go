package analyzer

import "qljs/internal/scope"

// enterScope pushes a new Scope of kind and makes it current (§4.1).
func (a *Analyzer) enterScope(kind scope.Kind) *scope.Scope {
	return a.stack.Push(kind)
}

// exitScope pops the current scope, verifies it matches kind (the
// visit_enter_X_scope/visit_exit_X_scope pairing invariant, §6.1), and
// resolves its pending uses per §4.3.
func (a *Analyzer) exitScope(kind scope.Kind) {
	popped := a.stack.Pop()
	if popped == nil {
		a.reportInvariantViolation("visit_exit_" + kind.String() + "_scope with no matching scope on the stack")
		return
	}
	if popped.Kind != kind {
		a.reportInvariantViolation("visit_exit_" + kind.String() + "_scope does not match the innermost scope (" + popped.Kind.String() + ")")
	}
	a.resolveScopeExit(popped)
}

func (a *Analyzer) resolveScopeExit(popped *scope.Scope) {
	parent := a.stack.Current()
	for _, u := range popped.DrainPendingUses() {
		if a.tryResolveInScope(u, popped) {
			continue
		}

		if u.Kind == scope.UseTypePredicate && popped.Kind.IsFunctionBoundary() {
			a.reportUndeclaredParameterInTypePredicate(u)
			continue
		}

		if popped.Kind == scope.KindWith && (u.Kind == scope.UseValue || u.Kind == scope.UseAssignment) {
			// §4.3: "crossing a with scope suppresses propagation of
			// undeclared-variable and assignment-to-const diagnostics for
			// that use, as the with object may bind the name dynamically."
			continue
		}

		if popped.Kind.IsFunctionBoundary() {
			u.CrossedFunctionBoundary = true
		}
		if popped.Kind == scope.KindWith {
			u.CrossedWith = true
		}
		if parent != nil {
			parent.AddPendingUse(u)
		}
	}
}

// EnterBlockScope pushes a generic block scope.
func (a *Analyzer) EnterBlockScope() { a.enterScope(scope.KindBlock) }

// ExitBlockScope pops the current block scope.
func (a *Analyzer) ExitBlockScope() { a.exitScope(scope.KindBlock) }

// EnterFunctionScope pushes a function's signature scope (parameters,
// generic parameters, type predicate). Its body is a separate
// function_body scope (§3: "for parameter/body separation").
func (a *Analyzer) EnterFunctionScope() { a.enterScope(scope.KindFunction_) }

// ExitFunctionScope pops the function's signature scope.
func (a *Analyzer) ExitFunctionScope() { a.exitScope(scope.KindFunction_) }

// EnterFunctionBodyScope pushes a function body scope; var declarations
// anywhere in nested blocks hoist here, and so do block-level function
// declarations when VarOptions.LegacyFunctionHoisting is set (§4.1).
func (a *Analyzer) EnterFunctionBodyScope() { a.enterScope(scope.KindFunctionBody) }

// ExitFunctionBodyScope pops the function body scope.
func (a *Analyzer) ExitFunctionBodyScope() { a.exitScope(scope.KindFunctionBody) }

// EnterClassScope pushes the scope that owns a class's own name binding
// and heritage clauses.
func (a *Analyzer) EnterClassScope() { a.enterScope(scope.KindClass_) }

// ExitClassScope pops the class scope.
func (a *Analyzer) ExitClassScope() { a.exitScope(scope.KindClass_) }

// EnterClassBodyScope pushes the scope for a class body's members.
func (a *Analyzer) EnterClassBodyScope() { a.enterScope(scope.KindClassBody) }

// ExitClassBodyScope pops the class body scope.
func (a *Analyzer) ExitClassBodyScope() { a.exitScope(scope.KindClassBody) }

// EnterInterfaceScope pushes a TypeScript interface body scope.
func (a *Analyzer) EnterInterfaceScope() { a.enterScope(scope.KindInterface_) }

// ExitInterfaceScope pops the interface scope.
func (a *Analyzer) ExitInterfaceScope() { a.exitScope(scope.KindInterface_) }

// EnterNamespaceScope pushes a TypeScript namespace/module body scope.
func (a *Analyzer) EnterNamespaceScope() { a.enterScope(scope.KindNamespace_) }

// ExitNamespaceScope pops the namespace scope.
func (a *Analyzer) ExitNamespaceScope() { a.exitScope(scope.KindNamespace_) }

// EnterWithScope pushes the scope of a `with` statement body, which
// suppresses undeclared-variable reporting on exit (§4.3).
func (a *Analyzer) EnterWithScope() { a.enterScope(scope.KindWith) }

// ExitWithScope pops the with scope.
func (a *Analyzer) ExitWithScope() { a.exitScope(scope.KindWith) }

// EnterConditionalTypeScope pushes the scope introduced by a conditional
// type's `extends` clause, which scopes `infer` bindings (§4.3, §4.4).
func (a *Analyzer) EnterConditionalTypeScope() { a.enterScope(scope.KindConditionalType) }

// ExitConditionalTypeScope pops the conditional type scope.
func (a *Analyzer) ExitConditionalTypeScope() { a.exitScope(scope.KindConditionalType) }

// EnterForScope pushes the scope of a for-statement's init clause (e.g.
// `for (let i = 0; ...)`).
func (a *Analyzer) EnterForScope() { a.enterScope(scope.KindFor) }

// ExitForScope pops the for scope.
func (a *Analyzer) ExitForScope() { a.exitScope(scope.KindFor) }
