package eventlog

import (
	"fmt"

	"qljs/internal/scope"
)

// kindByName mirrors scope.VariableKind.String() exactly (spec.md §3):
// every closed-set kind must round-trip through this table.
var kindByName = map[string]scope.VariableKind{
	"arrow_parameter":           scope.KindArrowParameter,
	"catch":                     scope.KindCatch,
	"class":                     scope.KindClass,
	"const":                     scope.KindConst,
	"enum":                      scope.KindEnum,
	"function":                  scope.KindFunction,
	"function_parameter":        scope.KindFunctionParameter,
	"function_type_parameter":   scope.KindFunctionTypeParameter,
	"generic_parameter":         scope.KindGenericParameter,
	"import":                    scope.KindImport,
	"import_alias":              scope.KindImportAlias,
	"import_type":               scope.KindImportType,
	"index_signature_parameter": scope.KindIndexSignatureParameter,
	"infer_type":                scope.KindInferType,
	"interface":                 scope.KindInterface,
	"let":                       scope.KindLet,
	"namespace":                 scope.KindNamespace,
	"type_alias":                scope.KindTypeAlias,
	"var":                       scope.KindVar,
}

func parseKind(name string) (scope.VariableKind, error) {
	k, ok := kindByName[name]
	if !ok {
		return scope.KindInvalid, fmt.Errorf("eventlog: unknown variable kind %q", name)
	}
	return k, nil
}

var flagByName = map[string]scope.DeclFlags{
	"initialized":          scope.FlagInitialized,
	"declared_in_for_init": scope.FlagDeclaredInForInit,
	"is_export":            scope.FlagIsExport,
}

func parseFlags(names []string) (scope.DeclFlags, error) {
	var flags scope.DeclFlags
	for _, name := range names {
		f, ok := flagByName[name]
		if !ok {
			return 0, fmt.Errorf("eventlog: unknown declaration flag %q", name)
		}
		flags |= f
	}
	return flags, nil
}
