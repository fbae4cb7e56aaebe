package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/unicode/norm"

	"qljs/internal/diag"
	"qljs/internal/source"
)

var (
	errorStyle = color.New(color.FgRed, color.Bold)
	warnStyle  = color.New(color.FgYellow, color.Bold)
	infoStyle  = color.New(color.FgCyan, color.Bold)
	pathStyle  = color.New(color.FgWhite, color.Bold)
	pointStyle = color.New(color.FgRed, color.Bold)
	noteStyle  = color.New(color.FgBlue)
)

func severityStyle(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorStyle
	case diag.SevWarning:
		return warnStyle
	default:
		return infoStyle
	}
}

// Pretty writes bag's diagnostics in a human-readable form:
//
//	<path>:<line>:<col>: <SEVERITY> <CODE>: <message>
//	  | <source line>
//	  |      ^~~~~~~
//
// followed by any notes, in the same shape. Call bag.Sort() first for a
// deterministic, severity/location-ordered report.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeOne(w, d, fs, opts)
	}
}

func writeOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	path, start, _ := locate(d.Primary, fs, opts.PathMode)
	message := norm.NFC.String(d.Message)

	sevText := d.Severity.String()
	style := severityStyle(d.Severity)
	if opts.Color {
		sevText = style.Sprint(sevText)
	}

	header := fmt.Sprintf("%s:%d:%d: %s %s: %s", path, start.Line, start.Col, sevText, d.Code.ID(), message)
	if opts.Color {
		header = fmt.Sprintf("%s:%d:%d: %s %s: %s", pathStyle.Sprint(path), start.Line, start.Col, sevText, d.Code.ID(), message)
	}
	fmt.Fprintln(w, header)

	writeContext(w, d.Primary, fs, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			notePath, noteStart, _ := locate(note.Span, fs, opts.PathMode)
			noteMsg := norm.NFC.String(note.Msg)
			line := fmt.Sprintf("  note: %s:%d:%d: %s", notePath, noteStart.Line, noteStart.Col, noteMsg)
			if opts.Color {
				line = noteStyle.Sprint(line)
			}
			fmt.Fprintln(w, line)
		}
	}

	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(w, "  fix: %s\n", fix.Title)
		}
	}
}

func writeContext(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	if opts.Context < 0 {
		return
	}
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)

	lo := start.Line
	for i := 0; i < opts.Context && lo > 1; i++ {
		lo--
	}
	hi := end.Line
	for i := 0; i < opts.Context; i++ {
		hi++
	}

	for line := lo; line <= hi; line++ {
		text := file.GetLine(line)
		if line > start.Line && text == "" && line > end.Line {
			break
		}
		fmt.Fprintf(w, "  %4d | %s\n", line, strings.TrimRight(text, "\r\n"))
		if line == start.Line {
			fmt.Fprint(w, "       | ")
			caretLine := buildCaretLine(text, start, end, line)
			if opts.Color {
				caretLine = pointStyle.Sprint(caretLine)
			}
			fmt.Fprintln(w, caretLine)
		}
	}
}

func buildCaretLine(lineText string, start, end source.LineCol, line uint32) string {
	col := int(start.Col)
	if col < 1 {
		col = 1
	}
	width := 1
	if line == end.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	lead := strings.Repeat(" ", col-1)
	return lead + strings.Repeat("^", width)
}

func locate(span source.Span, fs *source.FileSet, mode PathMode) (path string, start, end source.LineCol) {
	file := fs.Get(span.File)
	start, end = fs.Resolve(span)
	switch mode {
	case PathModeAbsolute:
		path = file.FormatPath("absolute", "")
	case PathModeRelative:
		path = file.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		path = file.FormatPath("basename", "")
	default:
		path = file.FormatPath("auto", fs.BaseDir())
	}
	return path, start, end
}
