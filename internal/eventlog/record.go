// Package eventlog decodes a JSON-encoded replay of the event ABI
// internal/events.Visitor exposes (spec.md §6.1). Visitor's own doc
// comment anticipates "a replayed event log" as a legitimate producer
// alongside a parser and a test fixture; this package is that producer —
// the form in which a batch run or a fixture can drive the analyzer
// without depending on an actual JS/TS parser, which spec.md §6.1 places
// fully outside the analyzer's scope ("This is fully external to the
// analyzer").
package eventlog

// Op is the wire tag naming one events.Visitor method call.
type Op string

const (
	OpEnterBlockScope    Op = "enter_block_scope"
	OpExitBlockScope     Op = "exit_block_scope"
	OpEnterFunctionScope Op = "enter_function_scope"
	OpExitFunctionScope  Op = "exit_function_scope"

	OpEnterFunctionBodyScope Op = "enter_function_body_scope"
	OpExitFunctionBodyScope  Op = "exit_function_body_scope"

	OpEnterClassScope     Op = "enter_class_scope"
	OpExitClassScope      Op = "exit_class_scope"
	OpEnterClassBodyScope Op = "enter_class_body_scope"
	OpExitClassBodyScope  Op = "exit_class_body_scope"

	OpEnterInterfaceScope Op = "enter_interface_scope"
	OpExitInterfaceScope  Op = "exit_interface_scope"
	OpEnterNamespaceScope Op = "enter_namespace_scope"
	OpExitNamespaceScope  Op = "exit_namespace_scope"

	OpEnterWithScope Op = "enter_with_scope"
	OpExitWithScope  Op = "exit_with_scope"

	OpEnterConditionalTypeScope Op = "enter_conditional_type_scope"
	OpExitConditionalTypeScope  Op = "exit_conditional_type_scope"

	OpEnterForScope Op = "enter_for_scope"
	OpExitForScope  Op = "exit_for_scope"

	OpDeclaration      Op = "declaration"
	OpUse              Op = "use"
	OpTypeUse          Op = "type_use"
	OpAssignment       Op = "assignment"
	OpExportUse        Op = "export_use"
	OpDeleteUse        Op = "delete_use"
	OpTypePredicateUse Op = "type_predicate_use"

	OpEndOfModule Op = "end_of_module"
)

// Record is one event-log entry. Which fields apply depends on Op: the
// scope enter/exit ops use only Op; declaration additionally uses Kind
// and Flags; every use-family op (use, type_use, assignment, export_use,
// delete_use, type_predicate_use) uses Text/Start/End; delete_use alone
// also uses KeywordStart/KeywordEnd for the `delete` keyword's own span
// (§4.2).
type Record struct {
	Op           Op       `json:"op"`
	Text         string   `json:"text,omitempty"`
	Start        uint32   `json:"start,omitempty"`
	End          uint32   `json:"end,omitempty"`
	Kind         string   `json:"kind,omitempty"`
	Flags        []string `json:"flags,omitempty"`
	KeywordStart uint32   `json:"keyword_start,omitempty"`
	KeywordEnd   uint32   `json:"keyword_end,omitempty"`
}

// Log is one file's worth of replayable events, in source order. File
// names the logical source path the events were produced from, and Source
// carries that file's original text, so a standalone event-log file is
// self-describing for tooling (including diagnostic rendering, which needs
// source text for context lines) that only has the log, not a separately
// stored copy of the source file.
type Log struct {
	File   string   `json:"file,omitempty"`
	Source string   `json:"source,omitempty"`
	Events []Record `json:"events"`
}
