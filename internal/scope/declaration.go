package scope

import (
	"qljs/internal/ident"
	"qljs/internal/source"
)

// DeclFlags are the per-declaration flags from spec.md §3.
type DeclFlags uint8

const (
	FlagInitialized DeclFlags = 1 << iota
	FlagDeclaredInForInit
	FlagIsExport
)

func (f DeclFlags) Has(flag DeclFlags) bool { return f&flag != 0 }

// Declaration is a binding introduced by a program construct (GLOSSARY).
type Declaration struct {
	Ident ident.Identifier
	Kind  VariableKind
	Flags DeclFlags
}

// Use is a name reference awaiting resolution against an ancestor scope
// (GLOSSARY: "pending use").
type Use struct {
	Ident       ident.Identifier
	Kind        UseKind
	KeywordSpan source.Span // delete's keyword span (§4.2); zero if not a delete use

	// CrossedFunctionBoundary and CrossedWith record propagation history
	// (§4.3) so the resolver at an ancestor scope can apply the right
	// suppression rules without re-walking the scope chain.
	CrossedFunctionBoundary bool
	CrossedWith             bool
}
