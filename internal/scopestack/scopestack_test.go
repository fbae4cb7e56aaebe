package scopestack

import (
	"testing"

	"qljs/internal/scope"
)

func TestNewStartsWithModuleScope(t *testing.T) {
	s := New()
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if !s.AtModule() {
		t.Error("AtModule() should be true right after New")
	}
	if s.Current().Kind != scope.KindModule {
		t.Errorf("Current().Kind = %v, want KindModule", s.Current().Kind)
	}
	if s.Parent() != nil {
		t.Error("Parent() at module scope should be nil")
	}
}

func TestPushPop(t *testing.T) {
	s := New()
	fn := s.Push(scope.KindFunctionBody)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Current() != fn {
		t.Error("Current() should return the just-pushed scope")
	}
	if s.AtModule() {
		t.Error("AtModule() should be false with a second frame pushed")
	}
	if s.Parent().Kind != scope.KindModule {
		t.Error("Parent() should be the module scope")
	}

	popped := s.Pop()
	if popped != fn {
		t.Error("Pop() should return the scope just pushed")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d after pop, want 1", s.Len())
	}
}

func TestPopOnEmptyStackReturnsNil(t *testing.T) {
	s := &Stack{}
	if s.Pop() != nil {
		t.Error("Pop() on an empty stack should return nil")
	}
	if s.Current() != nil {
		t.Error("Current() on an empty stack should return nil")
	}
}

func TestEnclosingFunction(t *testing.T) {
	s := New()
	if s.EnclosingFunction() != nil {
		t.Error("module scope alone has no enclosing function")
	}
	fn := s.Push(scope.KindFunctionBody)
	s.Push(scope.KindBlock)
	if s.EnclosingFunction() != fn {
		t.Error("EnclosingFunction() should find the function_body through a nested block")
	}
}

func TestEnclosingVarHoistScope(t *testing.T) {
	s := New()
	module := s.Current()
	block := s.Push(scope.KindBlock)
	_ = block
	if s.EnclosingVarHoistScope() != module {
		t.Error("a var in a top-level block should hoist to the module scope")
	}

	fnBody := s.Push(scope.KindFunctionBody)
	s.Push(scope.KindBlock)
	if s.EnclosingVarHoistScope() != fnBody {
		t.Error("a var in a nested block should hoist to the enclosing function_body")
	}
}

func TestFramesOrder(t *testing.T) {
	s := New()
	s.Push(scope.KindFunctionBody)
	s.Push(scope.KindBlock)
	frames := s.Frames()
	if len(frames) != 3 {
		t.Fatalf("len(Frames()) = %d, want 3", len(frames))
	}
	if frames[0].Kind != scope.KindModule || frames[2].Kind != scope.KindBlock {
		t.Error("Frames() should be ordered outermost first")
	}
}
