// Package batch implements the parallel per-file analysis driver (spec.md
// §5): one independent Analyzer per file, run concurrently, sharing only
// the immutable Global Declared Set.
package batch

import "time"

// Stage describes which half of one file's analysis an Event reports on.
// Unlike a compiler pipeline this analyzer has no separate parse/lower/
// build phases of its own — Produce covers the entire span during which
// the caller's event producer drives the analyzer, and Finalize covers
// VisitEndOfModule's resolution against the Global Declared Set.
type Stage string

const (
	StageProduce  Stage = "produce"
	StageFinalize Stage = "finalize"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for one file (or, when File is empty, for the
// batch run as a whole).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Sink consumes progress events. A nil Sink is valid and discards events.
type Sink func(Event)

func (s Sink) emit(ev Event) {
	if s != nil {
		s(ev)
	}
}
