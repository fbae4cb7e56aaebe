// Package globals implements the Global Declared Set (spec.md §2.2): a
// read-only table the analyzer consults once a module's pending uses reach
// end-of-module (§4.6) and can never resolve locally.
package globals

// Properties describes how a name use is permitted to act against a global.
type Properties struct {
	IsWritable   bool
	IsShadowable bool
	IsTypeOnly   bool
}

// Set is an immutable-after-construction table of global names.
//
// A Set is built once (typically by merging the built-in strict-mode
// globals with whatever `quick-lint-js.config` declares, §6.4) and then
// shared read-only across every analyzer instance in a batch run (§5).
type Set struct {
	entries map[string]Properties
}

// NewSet returns an empty Set. Use Declare to populate it before handing it
// to an analyzer; once in use it must not be mutated concurrently.
func NewSet() *Set {
	return &Set{entries: make(map[string]Properties)}
}

// Declare adds or overwrites the properties for name. Declaring the same
// name with identical properties twice is a no-op observable from the
// analyzer's perspective (P3: idempotence of globals).
func (s *Set) Declare(name string, p Properties) {
	s.entries[name] = p
}

// Lookup returns the properties registered for name, if any.
func (s *Set) Lookup(name string) (Properties, bool) {
	p, ok := s.entries[name]
	return p, ok
}

// Len reports the number of distinct global names.
func (s *Set) Len() int {
	return len(s.entries)
}

// Clone returns an independent copy of the set, e.g. so a per-file config
// override (extra globals from quick-lint-js.config) does not mutate the
// shared base set other analyzer instances in the same batch read (§5).
func (s *Set) Clone() *Set {
	out := NewSet()
	for name, p := range s.entries {
		out.entries[name] = p
	}
	return out
}

// nonShadowableStrictGlobals resolves spec.md §9 Open Question 1: the exact
// set of names with is_shadowable=false under strict mode. TypeScript files
// and "use strict" JavaScript are always strict in this analyzer (SPEC_FULL
// Resolved Open Questions #1), so these five are unconditional.
var nonShadowableStrictGlobals = map[string]Properties{
	"undefined": {IsWritable: false, IsShadowable: false, IsTypeOnly: false},
	"NaN":       {IsWritable: false, IsShadowable: false, IsTypeOnly: false},
	"Infinity":  {IsWritable: false, IsShadowable: false, IsTypeOnly: false},
	"eval":      {IsWritable: false, IsShadowable: false, IsTypeOnly: false},
	"arguments": {IsWritable: false, IsShadowable: false, IsTypeOnly: false},
}

// StrictMode returns the baseline Set every analyzer run starts from: the
// non-shadowable strict-mode globals, plus the handful of ambient runtime
// globals every JS/TS environment exposes whether or not a config file adds
// more (globalThis, console, and the ECMAScript intrinsics a linter must
// never flag as undeclared).
func StrictMode() *Set {
	s := NewSet()
	for name, p := range nonShadowableStrictGlobals {
		s.Declare(name, p)
	}
	for _, name := range []string{
		"globalThis", "console", "Object", "Array", "Function", "String",
		"Number", "Boolean", "Symbol", "BigInt", "Math", "JSON", "Date",
		"RegExp", "Error", "TypeError", "RangeError", "SyntaxError",
		"Promise", "Map", "Set", "WeakMap", "WeakSet", "Proxy", "Reflect",
	} {
		s.Declare(name, Properties{IsWritable: true, IsShadowable: true})
	}
	for _, name := range []string{
		"any", "unknown", "never", "void", "object", "boolean", "number",
		"string", "symbol", "bigint", "undefined", "null",
	} {
		if _, ok := s.Lookup(name); ok {
			continue
		}
		s.Declare(name, Properties{IsWritable: false, IsShadowable: false, IsTypeOnly: true})
	}
	return s
}
