package eventlog

import (
	"encoding/json"
	"fmt"
	"io"

	"qljs/internal/events"
	"qljs/internal/ident"
	"qljs/internal/source"
)

// Decode parses a JSON-encoded Log from r.
func Decode(r io.Reader) (Log, error) {
	var log Log
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&log); err != nil {
		return Log{}, fmt.Errorf("eventlog: decode: %w", err)
	}
	return log, nil
}

// Replay drives v with log's events in order, resolving each record's
// byte offsets against file. It stops at the first malformed record: a
// corrupt event log is a tooling bug, not a source-level condition the
// analyzer's own most-permissive-assumption recovery policy (§7) is meant
// to cover, so this layer fails loudly rather than guessing.
func Replay(v events.Visitor, log Log, file source.FileID) error {
	for i, rec := range log.Events {
		if err := replayOne(v, rec, file); err != nil {
			return fmt.Errorf("eventlog: record %d: %w", i, err)
		}
	}
	return nil
}

// ProduceFunc adapts log into a batch.FileTask.Produce closure: it
// replays every record against v except end_of_module, which the caller
// (batch.Run) issues itself once Produce returns (see FileTask's doc
// comment). A log built for standalone replay via Replay may still carry
// its own end_of_module record; ProduceFunc skips it rather than erroring
// so the same log works either way.
func ProduceFunc(log Log, file source.FileID) func(events.Visitor) error {
	return func(v events.Visitor) error {
		for i, rec := range log.Events {
			if rec.Op == OpEndOfModule {
				continue
			}
			if err := replayOne(v, rec, file); err != nil {
				return fmt.Errorf("eventlog: record %d: %w", i, err)
			}
		}
		return nil
	}
}

func replayOne(v events.Visitor, rec Record, file source.FileID) error {
	switch rec.Op {
	case OpEnterBlockScope:
		v.EnterBlockScope()
	case OpExitBlockScope:
		v.ExitBlockScope()
	case OpEnterFunctionScope:
		v.EnterFunctionScope()
	case OpExitFunctionScope:
		v.ExitFunctionScope()
	case OpEnterFunctionBodyScope:
		v.EnterFunctionBodyScope()
	case OpExitFunctionBodyScope:
		v.ExitFunctionBodyScope()
	case OpEnterClassScope:
		v.EnterClassScope()
	case OpExitClassScope:
		v.ExitClassScope()
	case OpEnterClassBodyScope:
		v.EnterClassBodyScope()
	case OpExitClassBodyScope:
		v.ExitClassBodyScope()
	case OpEnterInterfaceScope:
		v.EnterInterfaceScope()
	case OpExitInterfaceScope:
		v.ExitInterfaceScope()
	case OpEnterNamespaceScope:
		v.EnterNamespaceScope()
	case OpExitNamespaceScope:
		v.ExitNamespaceScope()
	case OpEnterWithScope:
		v.EnterWithScope()
	case OpExitWithScope:
		v.ExitWithScope()
	case OpEnterConditionalTypeScope:
		v.EnterConditionalTypeScope()
	case OpExitConditionalTypeScope:
		v.ExitConditionalTypeScope()
	case OpEnterForScope:
		v.EnterForScope()
	case OpExitForScope:
		v.ExitForScope()

	case OpDeclaration:
		kind, err := parseKind(rec.Kind)
		if err != nil {
			return err
		}
		flags, err := parseFlags(rec.Flags)
		if err != nil {
			return err
		}
		v.VisitVariableDeclaration(identAt(rec, file), kind, flags)
	case OpUse:
		v.VisitVariableUse(identAt(rec, file))
	case OpTypeUse:
		v.VisitVariableTypeUse(identAt(rec, file))
	case OpAssignment:
		v.VisitVariableAssignment(identAt(rec, file))
	case OpExportUse:
		v.VisitVariableExportUse(identAt(rec, file))
	case OpDeleteUse:
		keyword := source.Span{File: file, Start: rec.KeywordStart, End: rec.KeywordEnd}
		v.VisitVariableDeleteUse(identAt(rec, file), keyword)
	case OpTypePredicateUse:
		v.VisitVariableTypePredicateUse(identAt(rec, file))

	case OpEndOfModule:
		v.VisitEndOfModule()

	default:
		return fmt.Errorf("eventlog: unknown op %q", rec.Op)
	}
	return nil
}

func identAt(rec Record, file source.FileID) ident.Identifier {
	return ident.Identifier{
		Text: rec.Text,
		Span: source.Span{File: file, Start: rec.Start, End: rec.End},
	}
}
