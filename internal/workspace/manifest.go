// Package workspace implements the optional qljs-workspace.toml manifest: a
// single file letting one CLI invocation lint multiple project roots, each
// with its own include globs and VarOptions overrides, instead of requiring
// a separate invocation per root.
package workspace

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"qljs/internal/analyzer"
)

// FileName is the well-known workspace manifest name searched for in the
// directory the CLI is invoked from (or passed explicitly via --workspace).
const FileName = "qljs-workspace.toml"

// ErrRootMissing indicates a [[root]] entry is missing its path field.
var ErrRootMissing = errors.New("missing root.path")

// Root describes one lint root within a workspace: a directory to search,
// glob patterns selecting which files within it to lint, and VarOptions
// overrides that apply to every file under this root.
type Root struct {
	Name    string
	Path    string
	Include []string

	TypeScript             bool
	JSX                    bool
	AllowDeclareClass      bool
	LegacyFunctionHoisting bool
}

// VarOptions returns the analyzer.VarOptions this root's overrides produce.
func (r Root) VarOptions() analyzer.VarOptions {
	return analyzer.VarOptions{
		TypeScript:             r.TypeScript,
		JSX:                    r.JSX,
		AllowDeclareClass:      r.AllowDeclareClass,
		LegacyFunctionHoisting: r.LegacyFunctionHoisting,
	}
}

// Manifest is a parsed qljs-workspace.toml: the set of roots a single `qljs
// lint` invocation should cover.
type Manifest struct {
	// WorkspaceDir is the directory containing the manifest; every Root.Path
	// is resolved relative to it.
	WorkspaceDir string
	Roots        []Root
}

type rootEntry struct {
	Name                   string   `toml:"name"`
	Path                   string   `toml:"path"`
	Include                []string `toml:"include"`
	TypeScript             bool     `toml:"typescript"`
	JSX                    bool     `toml:"jsx"`
	AllowDeclareClass      bool     `toml:"allow-declare-class"`
	LegacyFunctionHoisting bool     `toml:"legacy-function-hoisting"`
}

type manifestFile struct {
	Root []rootEntry `toml:"root"`
}

// defaultInclude is used for a root that declares no include globs.
var defaultInclude = []string{"**/*.js", "**/*.ts", "**/*.jsx", "**/*.tsx"}

// Load parses the workspace manifest at path.
func Load(path string) (*Manifest, error) {
	var mf manifestFile
	if _, err := toml.DecodeFile(path, &mf); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if len(mf.Root) == 0 {
		return nil, fmt.Errorf("%s: no [[root]] entries defined", path)
	}

	m := &Manifest{WorkspaceDir: filepath.Dir(path)}
	seen := make(map[string]bool, len(mf.Root))
	for _, entry := range mf.Root {
		p := strings.TrimSpace(entry.Path)
		if p == "" {
			return nil, fmt.Errorf("%s: root %q: %w", path, entry.Name, ErrRootMissing)
		}
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			name = p
		}
		if seen[name] {
			return nil, fmt.Errorf("%s: duplicate root name %q", path, name)
		}
		seen[name] = true

		include := entry.Include
		if len(include) == 0 {
			include = defaultInclude
		}

		m.Roots = append(m.Roots, Root{
			Name:                   name,
			Path:                   resolveRootPath(m.WorkspaceDir, p),
			Include:                include,
			TypeScript:             entry.TypeScript,
			JSX:                    entry.JSX,
			AllowDeclareClass:      entry.AllowDeclareClass,
			LegacyFunctionHoisting: entry.LegacyFunctionHoisting,
		})
	}
	return m, nil
}

func resolveRootPath(workspaceDir, p string) string {
	clean := filepath.FromSlash(p)
	if filepath.IsAbs(clean) {
		return filepath.Clean(clean)
	}
	return filepath.Join(workspaceDir, clean)
}

// MatchesInclude reports whether relPath (slash-separated, relative to the
// root) matches any of the root's include globs.
func (r Root) MatchesInclude(relPath string) (bool, error) {
	slashPath := filepath.ToSlash(relPath)
	for _, pattern := range r.Include {
		ok, err := matchGlob(pattern, slashPath)
		if err != nil {
			return false, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
