package diag

// Code is a compact numeric diagnostic identifier with a stable string form.
type Code uint16

const (
	UnknownCode Code = 0

	// Binding errors (§7): use-before-declaration, undeclared names,
	// redeclaration.
	VariableUsedBeforeDeclaration            Code = 1000
	UseOfUndeclaredVariable                  Code = 1001
	UseOfUndeclaredType                       Code = 1002
	UseOfUndeclaredParameterInTypePredicate   Code = 1003
	RedeclarationOfVariable                  Code = 1004
	VariableShadowsNonShadowableGlobal        Code = 1005

	// Mutability errors (§7).
	AssignmentToConstVariable                  Code = 1100
	AssignmentToConstVariableBeforeDeclaration Code = 1101
	AssignmentToImportedVariable               Code = 1102
	AssignmentBeforeVariableDeclaration        Code = 1103
	AssignmentToUndeclaredVariable              Code = 1104

	// Stylistic/suspect diagnostics (§7).
	FunctionCallBeforeDeclarationInBlockScope Code = 1200
	RedundantDeleteStatementOnVariable        Code = 1201

	// TypeScript generic-parameter-list structural errors (§7). These
	// originate upstream of the analyzer (in the generic-parameter-list
	// parser) but share this diagnostic vocabulary so the CLI can render
	// them alongside analyzer diagnostics.
	VarianceKeywordsInWrongOrder            Code = 1300
	CommaNotAllowedBeforeFirstGenericParam  Code = 1301
	MultipleCommasInGenericParameterList    Code = 1302
	GenericParameterListIsEmpty             Code = 1303
	RequiresSpaceBetweenGreaterAndEqual     Code = 1304
	UnexpectedColonAfterGenericDefinition   Code = 1305
	MissingCommaBetweenGenericParameters    Code = 1306
	GenericsNotAllowedInJavaScript          Code = 1307

	// Internal-error fallback (§7): a programmer error (mismatched
	// visit_enter_*/visit_exit_* pairing) absorbed in release builds.
	InternalAnalyzerInvariantViolation Code = 1900

	// I/O and configuration errors, outside the analyzer core but part of
	// the same diagnostic vocabulary (§4.7).
	IOLoadFileError      Code = 2000
	ConfigParseError     Code = 2001
	ConfigGlobalsInvalid Code = 2002
)

var codeNames = map[Code]string{
	UnknownCode:                                "UNKNOWN",
	VariableUsedBeforeDeclaration:              "E0001",
	UseOfUndeclaredVariable:                    "E0002",
	UseOfUndeclaredType:                        "E0003",
	UseOfUndeclaredParameterInTypePredicate:    "E0004",
	RedeclarationOfVariable:                    "E0005",
	VariableShadowsNonShadowableGlobal:         "E0006",
	AssignmentToConstVariable:                  "E0007",
	AssignmentToConstVariableBeforeDeclaration: "E0008",
	AssignmentToImportedVariable:               "E0009",
	AssignmentBeforeVariableDeclaration:        "E0010",
	AssignmentToUndeclaredVariable:             "E0011",
	FunctionCallBeforeDeclarationInBlockScope:  "E0012",
	RedundantDeleteStatementOnVariable:         "E0013",
	VarianceKeywordsInWrongOrder:               "E0014",
	CommaNotAllowedBeforeFirstGenericParam:     "E0015",
	MultipleCommasInGenericParameterList:       "E0016",
	GenericParameterListIsEmpty:                "E0017",
	RequiresSpaceBetweenGreaterAndEqual:        "E0018",
	UnexpectedColonAfterGenericDefinition:      "E0019",
	MissingCommaBetweenGenericParameters:       "E0020",
	GenericsNotAllowedInJavaScript:             "E0021",
	InternalAnalyzerInvariantViolation:         "E9000",
	IOLoadFileError:                            "E9001",
	ConfigParseError:                           "E9002",
	ConfigGlobalsInvalid:                       "E9003",
}

var codeDescriptions = map[Code]string{
	VariableUsedBeforeDeclaration:              "variable used before declaration",
	UseOfUndeclaredVariable:                    "use of undeclared variable",
	UseOfUndeclaredType:                        "use of undeclared type",
	UseOfUndeclaredParameterInTypePredicate:    "use of undeclared parameter in type predicate",
	RedeclarationOfVariable:                    "redeclaration of variable",
	VariableShadowsNonShadowableGlobal:         "declaration shadows a non-shadowable global variable",
	AssignmentToConstVariable:                  "assignment to const variable",
	AssignmentToConstVariableBeforeDeclaration: "assignment to const variable before its declaration",
	AssignmentToImportedVariable:               "assignment to imported variable",
	AssignmentBeforeVariableDeclaration:        "assignment to variable before its declaration",
	AssignmentToUndeclaredVariable:             "assignment to undeclared variable",
	FunctionCallBeforeDeclarationInBlockScope:  "function called before its declaration in block scope",
	RedundantDeleteStatementOnVariable:         "redundant delete statement on variable",
	VarianceKeywordsInWrongOrder:               "variance keywords are in the wrong order",
	CommaNotAllowedBeforeFirstGenericParam:     "comma is not allowed before the first generic parameter",
	MultipleCommasInGenericParameterList:       "multiple commas in generic parameter list",
	GenericParameterListIsEmpty:                "generic parameter list is empty",
	RequiresSpaceBetweenGreaterAndEqual:        "'>=' requires a space between '>' and '='",
	UnexpectedColonAfterGenericDefinition:      "unexpected ':' after generic definition",
	MissingCommaBetweenGenericParameters:       "missing comma between generic parameters",
	GenericsNotAllowedInJavaScript:             "generics are not allowed in JavaScript",
	InternalAnalyzerInvariantViolation:         "internal error: analyzer invariant violated",
	IOLoadFileError:                            "failed to load file",
	ConfigParseError:                           "failed to parse configuration file",
	ConfigGlobalsInvalid:                       "invalid global variable entry in configuration",
}

// ID returns the stable short identifier used in golden output and
// machine-readable formats (e.g. "E0005").
func (c Code) ID() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "E????"
}

// String returns a human-readable description of the diagnostic kind.
func (c Code) String() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown diagnostic"
}
