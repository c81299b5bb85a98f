// Package pipeline is the toolchain's one Go-error boundary (spec.md
// §4.4.6, §7): everything inside a compilation unit reports through
// diag.Sink and recovers locally, so lex/parse/lower failures never
// surface as a Go error. Compile drives the lexer, parser, and lowerer
// in sequence and is the only place that turns accumulated diagnostics
// into a pass/fail verdict for a caller.
package pipeline

import (
	"fmt"

	"github.com/nitrate-lang/nitratec/internal/config"
	"github.com/nitrate-lang/nitratec/internal/diag"
	"github.com/nitrate-lang/nitratec/internal/ir"
	"github.com/nitrate-lang/nitratec/internal/lexer"
	"github.com/nitrate-lang/nitratec/internal/lower"
	"github.com/nitrate-lang/nitratec/internal/parser"
	"github.com/nitrate-lang/nitratec/internal/token"
)

// Result is what Compile hands back: the lowered module (nil on
// failure), whether the compilation unit succeeded, and every
// diagnostic accumulated along the way, in report order.
type Result struct {
	Module      *ir.Module
	OK          bool
	Diagnostics []*diag.Diagnostic
}

// Compile lexes, parses, and lowers one source file's content, in that
// order, stopping at the first stage that reports an Error or Fatal
// diagnostic (spec.md §7's propagation policy: parsing never proceeds
// into lowering on unrecovered syntax errors). A lowering-internal
// invariant violation (a nil required child reaching a switch with no
// matching case) is caught here rather than left to unwind past this
// package, mirroring the original's signal-based crash guard without
// OS signal handling (spec.md §9's redesign guidance).
func Compile(filename, source string, cfg *config.Config) (res Result) {
	sink := diag.NewSink(filename, source)
	defer func() {
		if r := recover(); r != nil {
			sink.Report(diag.Fatal, token.Span{}, "InternalError", "panic during lowering: %v", r)
			res = Result{OK: false, Diagnostics: sink.Diagnostics()}
		}
	}()

	l := lexer.New(source)
	p := parser.New(l)
	prog := p.ParseProgram()
	for _, pe := range p.Errors() {
		sink.Report(diag.Error, spanOf(pe), pe.Code, "%s", pe.Message)
	}
	if sink.HasErrors() {
		return Result{OK: false, Diagnostics: sink.Diagnostics()}
	}

	mod := ir.NewModule(filename)
	lw := lower.New(mod, sink)
	if cfg != nil {
		lw.SetDefaultABI(cfg.ABI())
	}
	mod = lw.LowerProgram(prog)

	return Result{Module: mod, OK: !sink.HasErrors(), Diagnostics: sink.Diagnostics()}
}

// spanOf widens a parser.ParseError's single position into a zero-width
// token.Span, the shape diag.Sink.Report expects.
func spanOf(pe *parser.ParseError) token.Span { return token.Span{Start: pe.Pos, End: pe.Pos} }

// FormatDiagnostic renders one diagnostic as a single line, for callers
// that want plain text rather than diag.RenderAll's caret-annotated
// output (spec.md §6 names both a terse and a verbose rendering).
func FormatDiagnostic(d *diag.Diagnostic) string {
	if d.Code == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s[%s]: %s", d.Severity, d.Code, d.Message)
}
