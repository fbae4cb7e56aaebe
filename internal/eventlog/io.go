package eventlog

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Ext is the conventional suffix for a standalone event-log file.
const Ext = ".qljs-events.json"

// LoadFile reads and decodes the event log at path, returning it alongside
// the logical source path it describes: log.File if the log sets one,
// otherwise path with Ext trimmed (or path unchanged if it doesn't carry
// that suffix).
func LoadFile(path string) (Log, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Log{}, "", fmt.Errorf("eventlog: %s: %w", path, err)
	}
	log, err := Decode(bytes.NewReader(content))
	if err != nil {
		return Log{}, "", fmt.Errorf("eventlog: %s: %w", path, err)
	}

	sourcePath := log.File
	if sourcePath == "" {
		sourcePath = strings.TrimSuffix(path, Ext)
	}
	return log, sourcePath, nil
}
