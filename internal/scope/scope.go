package scope

// Scope is the working set of declarations and pending uses for one lexical
// scope (spec.md §2.4, §3). It is owned by exactly one scope-stack frame at
// a time; PendingUses are drained into the parent scope on exit and never
// back-referenced (§9 "Scope-exit semantics").
type Scope struct {
	Kind Kind

	// Declarations maps a name to every declaration of it seen in this
	// scope, in textual order. Multiple var/function declarations of one
	// name coalesce into this same list (§3 invariant).
	Declarations map[string][]Declaration

	// PendingUses holds uses not yet resolved against this scope's own
	// declarations. Drained (moved, not copied) into the parent on exit.
	PendingUses []Use

	IsFunctionBoundary bool
	IsBlock            bool
	AllowsVarHoist     bool
}

// New constructs an empty Scope of the given kind, deriving the three
// lexical flags from the closed ScopeKind property table.
func New(kind Kind) *Scope {
	return &Scope{
		Kind:               kind,
		Declarations:       make(map[string][]Declaration),
		IsFunctionBoundary: kind.IsFunctionBoundary(),
		IsBlock:            kind.IsBlockLike(),
		AllowsVarHoist:     kind.AllowsVarHoist(),
	}
}

// Conflict describes a redeclaration verdict for one added Declaration.
type Conflict struct {
	Original Declaration
	Found    bool
}

// AddDeclaration applies the local (single-scope) half of the §4.4
// redeclaration rules: it checks the incoming declaration against every
// declaration already recorded for the same name in this scope, returns the
// first conflict found (if any), and always appends the declaration (even
// on conflict — per §7's recoverable-error policy, analysis continues with
// both bindings present).
//
// Rules that span two scopes (generic_parameter in a function's signature
// scope vs. a strict declaration in its function_body, §4.4 rule 9) are not
// evaluated here; the analyzer checks those itself as each declaration is
// made (checkGenericParameterConflict in internal/analyzer).
func (s *Scope) AddDeclaration(d Declaration) Conflict {
	existing := s.Declarations[d.Ident.Text]
	result := Conflict{}
	for _, e := range existing {
		if original, ok := conflictsWith(e, d); ok {
			result = Conflict{Original: original, Found: true}
			break
		}
	}
	s.Declarations[d.Ident.Text] = append(existing, d)
	return result
}

// Lookup returns every declaration of name recorded in this scope.
func (s *Scope) Lookup(name string) ([]Declaration, bool) {
	decls, ok := s.Declarations[name]
	return decls, ok
}

// DeclaresValue reports whether any declaration of name in this scope
// declares a value.
func (s *Scope) DeclaresValue(name string) (Declaration, bool) {
	for _, d := range s.Declarations[name] {
		if d.Kind.DeclaresValue() {
			return d, true
		}
	}
	return Declaration{}, false
}

// DeclaresType reports whether any declaration of name in this scope
// declares a type.
func (s *Scope) DeclaresType(name string) (Declaration, bool) {
	for _, d := range s.Declarations[name] {
		if d.Kind.DeclaresType() {
			return d, true
		}
	}
	return Declaration{}, false
}

// AddPendingUse appends a use to this scope's pending list.
func (s *Scope) AddPendingUse(u Use) {
	s.PendingUses = append(s.PendingUses, u)
}

// DrainPendingUses removes and returns all pending uses, per §9's
// "drain pending uses into the parent" scope-exit discipline.
func (s *Scope) DrainPendingUses() []Use {
	drained := s.PendingUses
	s.PendingUses = nil
	return drained
}

func isVarOrFunction(k VariableKind) bool {
	return k == KindVar || k == KindFunction
}

func isLooseKind(k VariableKind) bool {
	switch k {
	case KindArrowParameter, KindFunctionParameter, KindIndexSignatureParameter,
		KindGenericParameter, KindFunctionTypeParameter, KindInferType, KindCatch:
		return true
	default:
		return false
	}
}

// conflictsWith implements §4.4's per-pair decision table for two
// declarations already known to live in the same scope. It returns the
// declaration that should be reported as the "original" when a conflict is
// found.
func conflictsWith(existing, incoming Declaration) (Declaration, bool) {
	e, n := existing.Kind, incoming.Kind

	if isVarOrFunction(e) && isVarOrFunction(n) {
		return Declaration{}, false
	}

	// catch + var naming the caught binding -> OK (legacy).
	if (e == KindCatch && n == KindVar) || (n == KindCatch && e == KindVar) {
		return Declaration{}, false
	}
	// catch + strict -> conflict, catch is the original.
	if e == KindCatch && n.IsStrict() {
		return existing, true
	}
	if n == KindCatch && e.IsStrict() {
		return incoming, true
	}

	if isLooseKind(e) && (isVarOrFunction(n) || isLooseKind(n)) {
		return Declaration{}, false
	}
	if isLooseKind(n) && (isVarOrFunction(e) || isLooseKind(e)) {
		return Declaration{}, false
	}

	// class + interface (declaration merging) and interface + interface.
	if (e == KindClass && n == KindInterface) || (e == KindInterface && n == KindClass) || (e == KindInterface && n == KindInterface) {
		return Declaration{}, false
	}

	// import-family always wins as the reported original.
	if e.IsImportFamily() != n.IsImportFamily() {
		if e.IsImportFamily() {
			return existing, true
		}
		return incoming, true
	}

	if e.IsStrict() && n.IsStrict() {
		return existing, true
	}
	if e.IsStrict() && isVarOrFunction(n) {
		return existing, true
	}
	if n.IsStrict() && isVarOrFunction(e) {
		return incoming, true
	}

	return Declaration{}, false
}
