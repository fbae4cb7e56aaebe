package diag

import "qljs/internal/source"

// New constructs a bare diagnostic; use WithRelatedSpan/WithExtra/WithNote to
// attach the fields particular diagnostic kinds need.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError constructs a SevError diagnostic, the severity of every
// binding/mutability error in §7.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// NewWarning constructs a SevWarning diagnostic, used by the
// stylistic/suspect diagnostics in §7.
func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}
