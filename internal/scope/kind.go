// Package scope implements the Scope component (spec.md §2.4, §3, §4.4):
// the working set of declarations and pending uses for one lexical scope,
// and the closed VariableKind/UseKind/ScopeKind sum types the analyzer
// dispatches on.
package scope

// VariableKind is the closed set of declaration kinds from spec.md §3.
type VariableKind uint8

const (
	KindInvalid VariableKind = iota
	KindArrowParameter
	KindCatch
	KindClass
	KindConst
	KindEnum
	KindFunction
	KindFunctionParameter
	KindFunctionTypeParameter
	KindGenericParameter
	KindImport
	KindImportAlias
	KindImportType
	KindIndexSignatureParameter
	KindInferType
	KindInterface
	KindLet
	KindNamespace
	KindTypeAlias
	KindVar
)

func (k VariableKind) String() string {
	switch k {
	case KindArrowParameter:
		return "arrow_parameter"
	case KindCatch:
		return "catch"
	case KindClass:
		return "class"
	case KindConst:
		return "const"
	case KindEnum:
		return "enum"
	case KindFunction:
		return "function"
	case KindFunctionParameter:
		return "function_parameter"
	case KindFunctionTypeParameter:
		return "function_type_parameter"
	case KindGenericParameter:
		return "generic_parameter"
	case KindImport:
		return "import"
	case KindImportAlias:
		return "import_alias"
	case KindImportType:
		return "import_type"
	case KindIndexSignatureParameter:
		return "index_signature_parameter"
	case KindInferType:
		return "infer_type"
	case KindInterface:
		return "interface"
	case KindLet:
		return "let"
	case KindNamespace:
		return "namespace"
	case KindTypeAlias:
		return "type_alias"
	case KindVar:
		return "var"
	default:
		return "invalid"
	}
}

// kindProps mirrors the property table in spec.md §3 exactly.
type kindProps struct {
	declaresValue          bool
	declaresType           bool
	mutable                bool
	hoistedAcrossBlocks    bool
	hoistedAcrossFunctions bool
}

var propsByKind = map[VariableKind]kindProps{
	KindVar:                     {declaresValue: true, hoistedAcrossBlocks: true, mutable: true},
	KindFunction:                {declaresValue: true, hoistedAcrossBlocks: true, mutable: true},
	KindLet:                     {declaresValue: true, mutable: true},
	KindConst:                   {declaresValue: true},
	KindClass:                   {declaresValue: true, declaresType: true},
	KindImport:                  {declaresValue: true, declaresType: true},
	KindImportAlias:             {declaresValue: true, declaresType: true},
	KindImportType:              {declaresType: true},
	KindInterface:               {declaresType: true},
	KindTypeAlias:               {declaresType: true},
	KindEnum:                    {declaresValue: true, declaresType: true},
	KindNamespace:               {declaresValue: true, declaresType: true},
	KindGenericParameter:        {declaresType: true},
	KindInferType:               {declaresType: true},
	KindFunctionTypeParameter:   {declaresType: true},
	KindArrowParameter:          {declaresValue: true, mutable: true},
	KindFunctionParameter:       {declaresValue: true, mutable: true},
	KindCatch:                   {declaresValue: true, mutable: true},
	KindIndexSignatureParameter: {declaresValue: true, mutable: true},
}

func props(k VariableKind) kindProps {
	return propsByKind[k]
}

// DeclaresValue reports whether kind introduces a binding in the value
// namespace. import's value/type ambiguity (§3) is resolved permissively:
// it is treated as declaring both.
func (k VariableKind) DeclaresValue() bool { return props(k).declaresValue }

// DeclaresType reports whether kind introduces a binding in the type
// namespace.
func (k VariableKind) DeclaresType() bool { return props(k).declaresType }

// Mutable reports whether assignment to this kind is permitted outside its
// initializer.
func (k VariableKind) Mutable() bool { return props(k).mutable }

// HoistedAcrossBlocks reports whether a declaration of this kind is visible
// earlier in its containing block than its textual position (§3, §4.1).
func (k VariableKind) HoistedAcrossBlocks() bool { return props(k).hoistedAcrossBlocks }

// HoistedAcrossFunctions reports whether a declaration of this kind is
// visible outside the function it is lexically nested in. No kind in the
// closed set crosses a function boundary (§3).
func (k VariableKind) HoistedAcrossFunctions() bool { return props(k).hoistedAcrossFunctions }

// IsStrict reports whether kind is a "strict declaration kind" (GLOSSARY):
// let, const, class, interface, import, enum, namespace. import_alias and
// import_type share import's strict redeclaration behavior (§4.4 "import +
// anything else"), since they are import-family bindings; this is a
// resolved ambiguity, not part of the closed list in the GLOSSARY itself.
func (k VariableKind) IsStrict() bool {
	switch k {
	case KindLet, KindConst, KindClass, KindInterface,
		KindImport, KindImportAlias, KindImportType,
		KindEnum, KindNamespace:
		return true
	default:
		return false
	}
}

// IsImportFamily reports whether kind is import, import_alias, or
// import_type: §4.4's "import + anything else" rule applies to all three.
func (k VariableKind) IsImportFamily() bool {
	switch k {
	case KindImport, KindImportAlias, KindImportType:
		return true
	default:
		return false
	}
}

// TriggersUseBeforeDeclaration reports whether a value use textually
// preceding this kind's declaration must be reported (§4.3 step 1, third
// bullet). var/function/import are hoisted and never trigger it.
func (k VariableKind) TriggersUseBeforeDeclaration() bool {
	switch k {
	case KindLet, KindConst, KindClass, KindInterface, KindGenericParameter:
		return true
	default:
		return false
	}
}

// UseKind is the closed set of use kinds from spec.md §3.
type UseKind uint8

const (
	UseInvalid UseKind = iota
	UseValue
	UseType
	UseAssignment
	UseExport
	UseDelete
	UseTypePredicate
)

func (k UseKind) String() string {
	switch k {
	case UseValue:
		return "value"
	case UseType:
		return "type"
	case UseAssignment:
		return "assignment"
	case UseExport:
		return "export"
	case UseDelete:
		return "delete"
	case UseTypePredicate:
		return "type_predicate"
	default:
		return "invalid"
	}
}

// Kind is the closed set of scope kinds from spec.md §3.
type Kind uint8

const (
	KindScopeInvalid Kind = iota
	KindModule
	KindFunction_
	KindFunctionBody
	KindBlock
	KindFor
	KindClass_
	KindClassBody
	KindInterface_
	KindNamespace_
	KindWith
	KindConditionalType
	KindArrow
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindFunction_:
		return "function"
	case KindFunctionBody:
		return "function_body"
	case KindBlock:
		return "block"
	case KindFor:
		return "for"
	case KindClass_:
		return "class"
	case KindClassBody:
		return "class_body"
	case KindInterface_:
		return "interface"
	case KindNamespace_:
		return "namespace"
	case KindWith:
		return "with"
	case KindConditionalType:
		return "conditional_type"
	case KindArrow:
		return "arrow"
	default:
		return "invalid"
	}
}

// IsFunctionBoundary reports whether entering this scope kind starts a new
// function for hoisting/TDZ-clearing purposes (§4.3 "crossing a function
// boundary").
func (k Kind) IsFunctionBoundary() bool {
	switch k {
	case KindFunction_, KindFunctionBody, KindArrow:
		return true
	default:
		return false
	}
}

// AllowsVarHoist reports whether a var (or, under LegacyFunctionHoisting, a
// block function) declared in a descendant block targets this scope
// directly (§4.1). Module and function-body scopes are hoist targets. There
// is no catch scope kind: a catch body arrives as a block scope, so a var in
// it hoists past it like a var in any other block.
func (k Kind) AllowsVarHoist() bool {
	switch k {
	case KindModule, KindFunctionBody:
		return true
	default:
		return false
	}
}

// IsBlockLike reports whether kind is a plain block (used by §4.4's
// function-redeclaration-in-nested-block exception).
func (k Kind) IsBlockLike() bool {
	switch k {
	case KindBlock, KindFor:
		return true
	default:
		return false
	}
}
