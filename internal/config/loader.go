package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"qljs/internal/globals"
)

// ChangeEvent reports that Refresh found a config file's content changed
// since it was last loaded (§4.7: "reporting change events on refresh with
// the prior and new content being structurally unequal").
type ChangeEvent struct {
	CanonicalPath string
	Old           *Config
	New           *Config
}

type cacheEntry struct {
	config  *Config
	content []byte
}

// Loader resolves VarOptions/globals for a file path by searching ancestor
// directories for quick-lint-js.config, canonicalizing the found path, and
// caching by that canonical path (one load per canonical path, §4.7).
//
// Per §5's concurrency model, Loader's methods are safe to call from a
// single thread in practice; if shared across threads, Refresh must be
// externally serialized and readers must observe a consistent snapshot —
// this implementation achieves that with one mutex guarding the whole
// cache map rather than a lock-free swap, since the loader is not on the
// analyzer's hot path.
type Loader struct {
	mu      sync.Mutex
	cache   map[string]*cacheEntry
	base    *globals.Set
	disk    *DiskCache
	noFound map[string]*Config // default config for dirs with no config file found, cached by dir
}

// NewLoader returns a Loader whose base Global Declared Set every resolved
// Config's globals extend. disk may be nil to disable the persistent cache.
func NewLoader(base *globals.Set, disk *DiskCache) *Loader {
	return &Loader{
		cache:   make(map[string]*cacheEntry),
		base:    base,
		disk:    disk,
		noFound: make(map[string]*Config),
	}
}

// Load resolves the Config that applies to filePath: it searches filePath's
// directory and its ancestors for quick-lint-js.config, returning the
// default Config (base globals, JavaScript VarOptions) if none is found.
func (l *Loader) Load(filePath string) (*Config, error) {
	startDir := filepath.Dir(filePath)
	configPath, found, err := findConfigFile(startDir)
	if err != nil {
		return nil, err
	}
	if !found {
		return l.defaultConfig(startDir), nil
	}

	canonical, err := canonicalize(configPath)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if entry, ok := l.cache[canonical]; ok {
		return entry.config, nil
	}

	cfg, content, err := l.loadAndCache(canonical)
	if err != nil {
		return nil, err
	}
	_ = content
	return cfg, nil
}

func (l *Loader) loadAndCache(canonical string) (*Config, []byte, error) {
	if l.disk != nil {
		if content, ok, err := l.disk.Get(canonical); err == nil && ok {
			if cfg, parseErr := parse(content, l.base); parseErr == nil {
				l.cache[canonical] = &cacheEntry{config: cfg, content: content}
				return cfg, content, nil
			}
			// Fall through to a fresh read/parse below; a corrupt cache entry
			// is overwritten by the Put call that follows.
		}
	}

	cfg, content, err := loadFile(canonical, l.base)
	if err != nil {
		return nil, nil, err
	}
	l.cache[canonical] = &cacheEntry{config: cfg, content: content}
	if l.disk != nil {
		_ = l.disk.Put(canonical, content) // best-effort; a disk cache miss just costs a re-parse
	}
	return cfg, content, nil
}

func (l *Loader) defaultConfig(dir string) *Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	if cfg, ok := l.noFound[dir]; ok {
		return cfg
	}
	cfg := &Config{Globals: l.base}
	l.noFound[dir] = cfg
	return cfg
}

// Refresh re-reads canonicalConfigPath, replacing its cache entry if the
// content changed, and reports a ChangeEvent when it did. A canonical path
// with no existing cache entry is treated as a first load (no ChangeEvent).
func (l *Loader) Refresh(canonicalConfigPath string) (*ChangeEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	prior, hadPrior := l.cache[canonicalConfigPath]

	content, err := os.ReadFile(canonicalConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", canonicalConfigPath, err)
	}
	newCfg, err := parse(content, l.base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", canonicalConfigPath, err)
	}
	l.cache[canonicalConfigPath] = &cacheEntry{config: newCfg, content: content}

	if !hadPrior {
		return nil, nil
	}
	if reflect.DeepEqual(prior.content, content) {
		return nil, nil
	}
	return &ChangeEvent{CanonicalPath: canonicalConfigPath, Old: prior.config, New: newCfg}, nil
}

func findConfigFile(startDir string) (path string, ok bool, err error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return resolved, nil
}
