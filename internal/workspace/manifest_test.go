package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadParsesRootsWithOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[[root]]
name = "frontend"
path = "frontend"
include = ["**/*.tsx", "**/*.ts"]
typescript = true
jsx = true

[[root]]
path = "scripts"
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(m.Roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(m.Roots))
	}

	frontend := m.Roots[0]
	if frontend.Name != "frontend" || !frontend.TypeScript || !frontend.JSX {
		t.Fatalf("unexpected frontend root: %+v", frontend)
	}
	if frontend.Path != filepath.Join(dir, "frontend") {
		t.Fatalf("expected root path resolved relative to workspace dir, got %q", frontend.Path)
	}

	scripts := m.Roots[1]
	if scripts.Name != "scripts" {
		t.Fatalf("expected root name to default to its path, got %q", scripts.Name)
	}
	if len(scripts.Include) == 0 {
		t.Fatal("expected default include globs for a root with none declared")
	}
}

func TestLoadRejectsMissingRootPath(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[[root]]
name = "broken"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a root missing path")
	}
}

func TestLoadRejectsDuplicateRootNames(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[[root]]
name = "app"
path = "a"

[[root]]
name = "app"
path = "b"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for duplicate root names")
	}
}

func TestLoadRejectsEmptyManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a manifest with no roots")
	}
}

func TestRootMatchesIncludeWithDoubleStarGlob(t *testing.T) {
	r := Root{Include: []string{"**/*.ts", "src/*.json"}}

	cases := []struct {
		path string
		want bool
	}{
		{"index.ts", true},
		{"src/components/widget.ts", true},
		{"src/data.json", true},
		{"nested/deep/data.json", false},
		{"README.md", false},
	}
	for _, tc := range cases {
		got, err := r.MatchesInclude(tc.path)
		if err != nil {
			t.Fatalf("MatchesInclude(%q) returned error: %v", tc.path, err)
		}
		if got != tc.want {
			t.Fatalf("MatchesInclude(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
