package main

import (
	"os"
	"path/filepath"
	"testing"

	"qljs/internal/workspace"
)

func writeEventLog(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	content := `{"events":[{"op":"end_of_module"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWalkEventLogsFindsNestedFiles(t *testing.T) {
	dir := t.TempDir()
	writeEventLog(t, filepath.Join(dir, "a.qljs-events.json"))
	writeEventLog(t, filepath.Join(dir, "sub", "b.qljs-events.json"))
	if err := os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := walkEventLogs(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(found), found)
	}
}

func TestWalkEventLogsSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.qljs-events.json")
	writeEventLog(t, path)

	found, err := walkEventLogs(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 || found[0] != path {
		t.Fatalf("got %v, want [%s]", found, path)
	}
}

func TestWalkEventLogsRejectsNonEventLogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := walkEventLogs(path, nil); err == nil {
		t.Fatal("expected error for non-event-log file")
	}
}

func TestWalkEventLogsAppliesIncludeMatcher(t *testing.T) {
	dir := t.TempDir()
	writeEventLog(t, filepath.Join(dir, "src", "keep.js.qljs-events.json"))
	writeEventLog(t, filepath.Join(dir, "src", "skip.js.qljs-events.json"))

	root := &workspace.Root{Path: dir, Include: []string{"src/keep.js"}}
	found, err := walkEventLogs(dir, root)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 || filepath.Base(found[0]) != "keep.js.qljs-events.json" {
		t.Fatalf("got %v, want only keep.js.qljs-events.json", found)
	}
}

func TestCollectLintPathsDedupsAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeEventLog(t, filepath.Join(dir, "b.qljs-events.json"))
	writeEventLog(t, filepath.Join(dir, "a.qljs-events.json"))

	paths, err := collectLintPaths([]string{dir, dir}, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2 (deduped): %v", len(paths), paths)
	}
	if filepath.Base(paths[0]) != "a.qljs-events.json" || filepath.Base(paths[1]) != "b.qljs-events.json" {
		t.Fatalf("paths not sorted: %v", paths)
	}
}

func TestDedupSorted(t *testing.T) {
	in := []string{"a", "a", "b", "b", "b", "c"}
	out := dedupSorted(in)
	want := []string{"a", "b", "c"}
	if len(out) != len(want) {
		t.Fatalf("got %v, want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("got %v, want %v", out, want)
		}
	}
}
