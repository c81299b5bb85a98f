package diag

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/width"
)

// RenderMode selects the output format of Render/RenderAll. Grounded on
// the teacher's CompilerError.Format(color bool) boolean flag, split into
// a named enum since a third mode (minified, no source context) is
// planned for the non-TTY CLI path.
type RenderMode int

const (
	// Plain renders "file:line:col: severity: message" with no source
	// context or color, the teacher's Format(false) output.
	Plain RenderMode = iota
	// Clang16Color renders a source excerpt, a caret line, and ANSI
	// color the way clang (and the teacher's FormatWithContext(true))
	// does: a dim gutter, a bold location, a colored severity label.
	Clang16Color
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiRed   = "\033[1;31m"
	ansiYellow = "\033[1;33m"
	ansiCyan  = "\033[1;36m"
)

func severityColor(sev Severity) string {
	switch sev {
	case Note:
		return ansiCyan
	case Warning:
		return ansiYellow
	default:
		return ansiRed
	}
}

// Render writes one Diagnostic to w. contextLines controls how many
// source lines FormatWithContext-style output includes around the caret;
// it is ignored in Plain mode.
func Render(w io.Writer, s *Sink, d *Diagnostic, mode RenderMode, contextLines int) {
	switch mode {
	case Clang16Color:
		renderClang(w, s, d, contextLines, true)
	default:
		renderPlain(w, d)
	}
}

// RenderAll renders every diagnostic in s, in report order, with a blank
// line between consecutive diagnostics when mode is Clang16Color —
// matching the teacher's FormatErrors multi-error separation.
func RenderAll(w io.Writer, s *Sink, mode RenderMode, contextLines int) {
	for i, d := range s.diags {
		if mode == Clang16Color && i > 0 {
			fmt.Fprintln(w)
		}
		Render(w, s, d, mode, contextLines)
	}
}

func renderPlain(w io.Writer, d *Diagnostic) {
	loc := fmt.Sprintf("%d:%d", d.Span.Start.Line, d.Span.Start.Column)
	if d.Code != "" {
		fmt.Fprintf(w, "%s: %s [%s]: %s\n", loc, d.Severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(w, "%s: %s: %s\n", loc, d.Severity, d.Message)
	}
}

// renderClang reproduces the teacher's FormatWithContext shape: a
// "file:line:col: severity: message" header, then a numbered source
// line, then a caret line under the offending column. Display-width of
// the prefix (not rune count) is used to align the caret, since a line
// containing wide runes before the error column would otherwise point
// at the wrong screen cell — the lexer itself counts columns in runes,
// not display cells, so this compensates the way the teacher's ASCII-
// only source never had to.
func renderClang(w io.Writer, s *Sink, d *Diagnostic, contextLines int, color bool) {
	line := d.Span.Start.Line
	col := d.Span.Start.Column

	sevLabel := d.Severity.String()
	if color {
		fmt.Fprintf(w, "%s%s:%d:%d:%s %s%s:%s %s\n", ansiBold, s.File, line, col, ansiReset,
			severityColor(d.Severity), sevLabel, ansiReset, d.Message)
	} else {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", s.File, line, col, sevLabel, d.Message)
	}

	first := line - contextLines
	if first < 1 {
		first = 1
	}
	for ln := first; ln <= line; ln++ {
		src := s.sourceLine(ln)
		if ln == line && src == "" {
			continue
		}
		gutter := fmt.Sprintf("%5d | ", ln)
		if color {
			fmt.Fprintf(w, "%s%s%s%s\n", ansiDim, gutter, ansiReset, src)
		} else {
			fmt.Fprintf(w, "%s%s\n", gutter, src)
		}
		if ln == line {
			fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", len(gutter)), caretLine(src, col, color))
		}
	}
}

// caretLine builds a line of spaces plus a single "^" positioned at the
// display-cell column that rune index col-1 in src occupies. Runs of
// wide (East Asian fullwidth/wide) runes before the caret consume two
// cells each; everything else consumes one.
func caretLine(src string, col int, color bool) string {
	cells := 0
	runes := []rune(src)
	stop := col - 1
	if stop > len(runes) {
		stop = len(runes)
	}
	for _, r := range runes[:stop] {
		if p := width.LookupRune(r); p.Kind() == width.EastAsianWide || p.Kind() == width.EastAsianFullwidth {
			cells += 2
		} else {
			cells++
		}
	}
	caret := strings.Repeat(" ", cells) + "^"
	if color {
		return ansiBold + caret + ansiReset
	}
	return caret
}
