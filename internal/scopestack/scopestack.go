// Package scopestack implements the Scope Stack component (spec.md §2.5,
// §4.1): stack discipline over scope.Scope values, with the lookups the
// analyzer needs during resolution (enclosing function, nearest var-hoist
// target).
package scopestack

import "qljs/internal/scope"

// Stack is a LIFO of active scopes. The module scope is always at index 0
// and is never popped during analysis (§3 invariant: "the scope stack is
// never empty during analysis; module is the root").
type Stack struct {
	frames []*scope.Scope
}

// New returns a Stack with its module scope already pushed.
func New() *Stack {
	s := &Stack{}
	s.Push(scope.KindModule)
	return s
}

// Push creates a new Scope of kind and makes it current.
func (s *Stack) Push(kind scope.Kind) *scope.Scope {
	sc := scope.New(kind)
	s.frames = append(s.frames, sc)
	return sc
}

// Pop removes and returns the current scope. Pop and Push are strictly
// paired with visit_enter_*/visit_exit_* events (§4.1); the caller is
// responsible for draining PendingUses into the new current scope before
// discarding the popped one.
func (s *Stack) Pop() *scope.Scope {
	if len(s.frames) == 0 {
		return nil
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top
}

// Current returns the innermost (top) scope.
func (s *Stack) Current() *scope.Scope {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Parent returns the scope directly enclosing Current, or nil at the
// module scope.
func (s *Stack) Parent() *scope.Scope {
	if len(s.frames) < 2 {
		return nil
	}
	return s.frames[len(s.frames)-2]
}

// Len reports the number of active scopes, module included.
func (s *Stack) Len() int { return len(s.frames) }

// AtModule reports whether Current is the root module scope.
func (s *Stack) AtModule() bool { return len(s.frames) == 1 }

// EnclosingFunction returns the nearest scope (Current included) whose kind
// is a function boundary (function, function_body, or arrow), or nil if
// none exists above the module scope.
func (s *Stack) EnclosingFunction() *scope.Scope {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].IsFunctionBoundary {
			return s.frames[i]
		}
	}
	return nil
}

// EnclosingVarHoistScope returns the nearest scope (Current included) that
// accepts hoisted var declarations: the enclosing function_body or, at
// top level, the module scope (§4.1).
func (s *Stack) EnclosingVarHoistScope() *scope.Scope {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].AllowsVarHoist {
			return s.frames[i]
		}
	}
	return s.frames[0]
}

// Frames exposes the full stack, outermost first, for callers (the
// analyzer's with/class-boundary suppression logic) that need to walk past
// the nearest match.
func (s *Stack) Frames() []*scope.Scope {
	return s.frames
}
