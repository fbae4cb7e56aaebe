// Package config implements the Configuration Loader (spec.md §4.7): it
// maps an input file path to a VarOptions record plus extra globals by
// searching ancestor directories for a well-known config file, caching
// parsed configs by canonical path.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"qljs/internal/analyzer"
	"qljs/internal/globals"
)

// FileName is the well-known config file name searched for in ancestor
// directories of every linted file (§6.4).
const FileName = "quick-lint-js.config"

// Config is the resolved record handed to the analyzer for one file: the
// VarOptions it should run with, plus any globals the file adds on top of
// the base Global Declared Set.
type Config struct {
	VarOptions analyzer.VarOptions
	Globals    *globals.Set
}

type globalEntry struct {
	Writable   *bool `json:"writable"`
	Shadowable *bool `json:"shadowable"`
	TypeOnly   bool  `json:"type-only"`
}

// configFile is the on-disk JSON shape of quick-lint-js.config (§6.4). The
// loader owns translating it into a Config; the file format itself is
// external to the analyzer core.
type configFile struct {
	Globals                map[string]globalEntry `json:"globals"`
	TypeScript             bool                   `json:"typescript"`
	JSX                    bool                   `json:"jsx"`
	AllowDeclareClass      bool                   `json:"allow-declare-class"`
	LegacyFunctionHoisting bool                   `json:"legacy-function-hoisting"`
}

// parse decodes raw JSON config content into a Config, layering its
// globals on top of base.
func parse(content []byte, base *globals.Set) (*Config, error) {
	var cf configFile
	if err := json.Unmarshal(content, &cf); err != nil {
		return nil, fmt.Errorf("%s: invalid JSON: %w", FileName, err)
	}

	set := base.Clone()
	for name, entry := range cf.Globals {
		p := globals.Properties{
			IsWritable:   entry.Writable == nil || *entry.Writable,
			IsShadowable: entry.Shadowable == nil || *entry.Shadowable,
			IsTypeOnly:   entry.TypeOnly,
		}
		set.Declare(name, p)
	}

	return &Config{
		VarOptions: analyzer.VarOptions{
			TypeScript:             cf.TypeScript,
			JSX:                    cf.JSX,
			AllowDeclareClass:      cf.AllowDeclareClass,
			LegacyFunctionHoisting: cf.LegacyFunctionHoisting,
		},
		Globals: set,
	}, nil
}

// loadFile reads and parses path, which must already be an existing
// config file (the caller resolved ancestor-directory search).
func loadFile(path string, base *globals.Set) (*Config, []byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg, err := parse(content, base)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, content, nil
}
