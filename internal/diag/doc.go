// Package diag defines the diagnostic model the variable analyzer reports
// through.
//
// # Purpose
//
//   - Provide deterministic data structures for the findings the analyzer
//     produces: use/declaration errors, mutability errors, hoisting and
//     redeclaration warnings (§7).
//   - Offer light-weight utilities (Reporter, Bag) that let the analyzer emit
//     diagnostics without coupling to a concrete transport or formatting
//     layer; the CLI and LSP pipe decide how a Diagnostic is rendered.
//   - Model fix suggestions as structured edits a caller can apply.
//
// # Scope
//
// Package diag performs no IO or CLI integration itself. Its only text
// formatting is FormatGoldenDiagnostics (golden.go), a one-line-per-entry
// form for golden tests; user-facing rendering lives in internal/diagfmt,
// and framing onto an LSP connection lives in internal/pipe.
//
// # Data model
//
// Diagnostic is the central record (§6.2). It contains:
//
//   - Severity – Info, Warning, Error (severity.go).
//   - Code – compact numeric identifier (codes.go) with a stable string ID.
//   - Message – human oriented text.
//   - Primary – the canonical source.Span pointing at the issue.
//   - RelatedSpans / Extra – the named fields §6.2 attaches to specific
//     diagnostic kinds ("declaration", "original_declaration", "var_kind", …)
//     without giving every kind its own struct.
//   - Notes – optional secondary spans/messages for additional context.
//   - Fixes – optional Fix records describing how to address the problem.
//
// Notes should be used sparingly: each note must add new context (e.g.
// "variable declared here") rather than repeating the diagnostic message.
//
// # Fix suggestions
//
// Fix is intentionally minimal: a Title and a list of FixEdit (Span, new
// text). There is no applicability/thunk machinery; fixes here are plain
// data a caller applies directly.
//
// # Emitting diagnostics
//
// The analyzer uses a diag.Reporter to decouple emission from storage: it
// builds each Diagnostic with a constructor such as NewError, chains
// WithRelatedSpan / WithExtra / WithNote as needed, and hands the result to
// its Reporter. Other callers can instead construct a ReportBuilder via
// NewReportBuilder (or the ReportError / ReportWarning helpers) and chain
// the same methods before calling Emit.
//
// diag.BagReporter aggregates diagnostics into a Bag, which supports
// sorting and deduplication. diag.DedupReporter suppresses diagnostics that
// are identical in code, severity, primary span, and message; the analyzer
// does not wrap its Reporter in one.
package diag
