package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"qljs/internal/eventlog"
	"qljs/internal/workspace"
)

// collectLintPaths resolves the event-log files one `lint` invocation
// should cover: explicit file/directory arguments, a workspace manifest's
// roots, or both.
func collectLintPaths(args []string, workspacePath string) ([]string, error) {
	var paths []string

	for _, arg := range args {
		found, err := walkEventLogs(arg, nil)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}

	if workspacePath != "" {
		manifest, err := workspace.Load(workspacePath)
		if err != nil {
			return nil, err
		}
		for _, root := range manifest.Roots {
			found, err := walkEventLogs(root.Path, &root)
			if err != nil {
				return nil, err
			}
			paths = append(paths, found...)
		}
	}

	sort.Strings(paths)
	return dedupSorted(paths), nil
}

// walkEventLogs collects *.qljs-events.json files under root (or root
// itself, if it is such a file). When matcher is non-nil, a candidate is
// kept only if its logical source path (root-relative, Ext trimmed)
// matches one of the root's include globs.
func walkEventLogs(root string, matcher *workspace.Root) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", root, err)
	}
	if !info.IsDir() {
		if !strings.HasSuffix(root, eventlog.Ext) {
			return nil, fmt.Errorf("%s: not a %s file", root, eventlog.Ext)
		}
		return []string{root}, nil
	}

	var found []string
	err = filepath.Walk(root, func(path string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if fi.IsDir() || !strings.HasSuffix(path, eventlog.Ext) {
			return nil
		}
		if matcher != nil {
			rel, relErr := filepath.Rel(root, strings.TrimSuffix(path, eventlog.Ext))
			if relErr != nil {
				return relErr
			}
			ok, matchErr := matcher.MatchesInclude(rel)
			if matchErr != nil {
				return matchErr
			}
			if !ok {
				return nil
			}
		}
		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func dedupSorted(paths []string) []string {
	out := paths[:0]
	var last string
	for i, p := range paths {
		if i > 0 && p == last {
			continue
		}
		out = append(out, p)
		last = p
	}
	return out
}
