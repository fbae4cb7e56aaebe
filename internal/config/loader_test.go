package config

import (
	"os"
	"path/filepath"
	"testing"

	"qljs/internal/globals"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoaderFindsConfigInAncestorDirectory(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"typescript": true}`)

	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	l := NewLoader(globals.StrictMode(), nil)
	cfg, err := l.Load(filepath.Join(nested, "widget.ts"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.VarOptions.TypeScript {
		t.Fatal("expected typescript option from ancestor config to apply")
	}
}

func TestLoaderReturnsDefaultWhenNoConfigFound(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(globals.StrictMode(), nil)
	cfg, err := l.Load(filepath.Join(dir, "widget.ts"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.VarOptions.TypeScript {
		t.Fatal("expected default VarOptions with no config file present")
	}
	if _, ok := cfg.Globals.Lookup("undefined"); !ok {
		t.Fatal("expected base globals even with no config file")
	}
}

func TestLoaderCachesByCanonicalPath(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"jsx": true}`)

	dirA := filepath.Join(root, "a")
	dirB := filepath.Join(root, "b")
	if err := os.MkdirAll(dirA, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(dirB, 0o755); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(globals.StrictMode(), nil)
	cfgA, err := l.Load(filepath.Join(dirA, "x.ts"))
	if err != nil {
		t.Fatalf("Load(a) returned error: %v", err)
	}
	cfgB, err := l.Load(filepath.Join(dirB, "y.ts"))
	if err != nil {
		t.Fatalf("Load(b) returned error: %v", err)
	}
	if cfgA != cfgB {
		t.Fatal("expected both files under the same config root to share one cached Config")
	}
	if len(l.cache) != 1 {
		t.Fatalf("expected exactly one cache entry, got %d", len(l.cache))
	}
}

func TestLoaderRefreshReportsChangeEvent(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `{"typescript": false}`)

	l := NewLoader(globals.StrictMode(), nil)
	cfg, err := l.Load(filepath.Join(root, "x.ts"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.VarOptions.TypeScript {
		t.Fatal("expected initial typescript option to be false")
	}

	if err := os.WriteFile(path, []byte(`{"typescript": true}`), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	canonical, err := canonicalize(path)
	if err != nil {
		t.Fatalf("canonicalize returned error: %v", err)
	}
	ev, err := l.Refresh(canonical)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if ev == nil {
		t.Fatal("expected a ChangeEvent after editing the config file")
	}
	if ev.Old.VarOptions.TypeScript {
		t.Fatal("expected Old to reflect the pre-edit config")
	}
	if !ev.New.VarOptions.TypeScript {
		t.Fatal("expected New to reflect the post-edit config")
	}
}

func TestLoaderRefreshIsNilWhenContentUnchanged(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `{"typescript": true}`)

	l := NewLoader(globals.StrictMode(), nil)
	if _, err := l.Load(filepath.Join(root, "x.ts")); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	canonical, err := canonicalize(path)
	if err != nil {
		t.Fatalf("canonicalize returned error: %v", err)
	}
	ev, err := l.Refresh(canonical)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if ev != nil {
		t.Fatal("expected no ChangeEvent when content is unchanged")
	}
}
