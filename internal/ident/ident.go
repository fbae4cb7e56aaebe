// Package ident defines the Identifier value type the analyzer resolves.
package ident

import "qljs/internal/source"

// Identifier is a name reference carrying the source span it came from.
// Text is borrowed from the source buffer; equality is byte-exact (§3).
type Identifier struct {
	Text string
	Span source.Span
}

// IsEmpty reports whether this is the zero Identifier.
func (id Identifier) IsEmpty() bool {
	return id.Text == "" && id.Span == (source.Span{})
}

// Before reports whether id's span starts strictly before other's.
func (id Identifier) Before(other Identifier) bool {
	return id.Span.Start < other.Span.Start
}
