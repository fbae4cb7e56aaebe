package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// diskCacheSchemaVersion is bumped whenever DiskPayload's shape changes, so
// a stale cache from an older binary is ignored rather than misread.
const diskCacheSchemaVersion uint16 = 1

// DiskCache persists quick-lint-js.config content across process runs, keyed
// by the canonical path of the config file. It exists so a Loader serving a
// long-lived LSP session (or a CLI invoked repeatedly against the same
// project) can skip re-reading config files that have not changed on disk,
// at the cost of one stat comparing the config file's modification time
// with the cache entry's.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the on-disk record for one cached config file.
type DiskPayload struct {
	Schema  uint16
	Path    string
	Content []byte
}

// OpenDiskCache initializes and returns a disk cache under the standard
// per-user cache directory (XDG_CACHE_HOME, falling back to ~/.cache).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "config")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(canonicalConfigPath string) string {
	sum := sha256.Sum256([]byte(canonicalConfigPath))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".mp")
}

// Put writes canonicalConfigPath's content to the disk cache, replacing any
// prior entry atomically (write to a temp file, then rename).
func (c *DiskCache) Put(canonicalConfigPath string, content []byte) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(canonicalConfigPath)
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer os.Remove(tmpName) // no-op once the rename below succeeds

	payload := DiskPayload{Schema: diskCacheSchemaVersion, Path: canonicalConfigPath, Content: content}
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, p)
}

// Get returns the cached content for canonicalConfigPath, if present,
// written by a compatible schema version, and not older than the config
// file on disk. A cache miss is not an error.
func (c *DiskCache) Get(canonicalConfigPath string) (content []byte, ok bool, err error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(canonicalConfigPath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	if cached, statErr := f.Stat(); statErr == nil {
		if src, srcErr := os.Stat(canonicalConfigPath); srcErr == nil && src.ModTime().After(cached.ModTime()) {
			return nil, false, nil
		}
	}

	var payload DiskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != diskCacheSchemaVersion || payload.Path != canonicalConfigPath {
		return nil, false, nil
	}
	return payload.Content, true, nil
}
