package analyzer

// VarOptions parameterizes one analyzer run (spec.md §4.7). The
// configuration loader (internal/config) is responsible for producing one
// of these per source file; the analyzer itself never reads a config file.
type VarOptions struct {
	TypeScript        bool
	JSX               bool
	AllowDeclareClass bool

	// LegacyFunctionHoisting resolves SPEC_FULL's Resolved Open Question 2:
	// when true, a `function` declared inside a nested block hoists to the
	// enclosing function body like `var` (legacy/sloppy-mode behavior).
	// Default false: a block function stays local to its block for both
	// visibility and redeclaration purposes (§4.4's explicit exception).
	LegacyFunctionHoisting bool

	// StrictInternalChecks makes a mismatched visit_enter_*/visit_exit_*
	// pairing panic instead of being absorbed into a single
	// Diag_Internal_Analyzer_Invariant_Violation diagnostic (§7: "should
	// crash in debug builds; in release builds ... absorbed"). Test code
	// sets this to true; production CLI/LSP paths leave it false.
	StrictInternalChecks bool
}
