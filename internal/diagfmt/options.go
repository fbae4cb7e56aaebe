// Package diagfmt renders a diag.Bag for human and machine consumption: a
// colorized pretty printer with source context for terminals, a JSON
// encoding for editor/CI tooling, and a SARIF encoding for code-scanning
// pipelines.
package diagfmt

// PathMode controls how a diagnostic's file path is rendered.
type PathMode uint8

const (
	// PathModeAuto keeps the stored path when it is relative or shorter than
	// 40 bytes, and shows only its base name otherwise.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures Pretty.
type PrettyOpts struct {
	Color     bool
	Context   int  // lines of source context shown above/below the primary span
	PathMode  PathMode
	ShowNotes bool
	ShowFixes bool
}

// JSONOpts configures JSON.
type JSONOpts struct {
	IncludePositions bool // include resolved line/col alongside byte offsets
	PathMode         PathMode
	Max              int // 0 means unlimited
	IncludeNotes     bool
	IncludeFixes     bool
}

// SarifRunMeta identifies the tool in a SARIF run object.
type SarifRunMeta struct {
	ToolName    string
	ToolVersion string
}
