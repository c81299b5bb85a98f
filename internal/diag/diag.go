// Package diag implements the diagnostic sink/engine spec.md §1 and §6
// call for: a Severity-tagged message with a source Span, rendered with
// a clang-style caret pointing at the offending column. Grounded on the
// teacher's internal/errors/errors.go (CompilerError.Format/FormatWithContext),
// re-keyed onto token.Span and extended with a Severity axis so
// recoverable diagnostics and fatal ones share one sink instead of the
// teacher's plain "every error is fatal" model.
package diag

import (
	"fmt"
	"strings"

	"github.com/nitrate-lang/nitratec/internal/token"
)

// Severity classifies a Diagnostic along the recoverable/fatal axis
// spec.md §5 requires: a Note never stops compilation, a Warning never
// stops compilation either, an Error prevents IR lowering from running
// but keeps recovering syntax errors within the same file, and a Fatal
// aborts the whole compilation immediately — the closest analogue this
// implementation has to the original's signal-handling crash guard.
type Severity int

const (
	Note Severity = iota
	Warning
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal error"
	default:
		return "error"
	}
}

// Diagnostic is one reported message.
type Diagnostic struct {
	Severity Severity
	Message  string
	Span     token.Span
	Code     string
}

// Sink accumulates Diagnostics during parsing/lowering. It is not safe
// for concurrent use — per spec.md §5, a compilation context belongs to
// one goroutine.
type Sink struct {
	File  string
	Source string
	diags []*Diagnostic
}

// NewSink creates a Sink for a single source file.
func NewSink(file, source string) *Sink {
	return &Sink{File: file, Source: source}
}

func (s *Sink) Report(sev Severity, sp token.Span, code, format string, args ...any) {
	s.diags = append(s.diags, &Diagnostic{
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		Span:     sp,
		Code:     code,
	})
}

func (s *Sink) Notef(sp token.Span, format string, args ...any) {
	s.Report(Note, sp, "", format, args...)
}

func (s *Sink) Warnf(sp token.Span, format string, args ...any) {
	s.Report(Warning, sp, "", format, args...)
}

func (s *Sink) Errorf(sp token.Span, format string, args ...any) {
	s.Report(Error, sp, "", format, args...)
}

// Diagnostics returns every diagnostic reported so far, in report order.
func (s *Sink) Diagnostics() []*Diagnostic { return s.diags }

// HasErrors reports whether any Error or Fatal diagnostic was recorded;
// pipeline.Compile consults this to decide whether to proceed past parsing.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diags {
		if d.Severity >= Error {
			return true
		}
	}
	return false
}

func (s *Sink) sourceLine(n int) string {
	if s.Source == "" {
		return ""
	}
	lines := strings.Split(s.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}
