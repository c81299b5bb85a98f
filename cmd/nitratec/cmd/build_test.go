package cmd

import (
	"testing"

	"github.com/nitrate-lang/nitratec/internal/diag"
	"github.com/nitrate-lang/nitratec/internal/ir"
	"github.com/nitrate-lang/nitratec/internal/lower"
	"github.com/nitrate-lang/nitratec/internal/mangle"
)

func lowerSource(t *testing.T, src string) (*ir.Module, *diag.Sink) {
	t.Helper()
	prog, perrs := parseProgram(src)
	if len(perrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", perrs)
	}
	sink := diag.NewSink("test.nx", src)
	mod := lower.New(ir.NewModule("test"), sink).LowerProgram(prog)
	return mod, sink
}

func TestRunBuildLowersConstant(t *testing.T) {
	mod, sink := lowerSource(t, "const PI: f64 = 3.14;")
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
	if len(mod.Globals) != 1 {
		t.Fatalf("expected 1 global, got %d", len(mod.Globals))
	}
	name, typ := declName(mod, mod.Globals[0])
	if name != "PI" {
		t.Fatalf("expected name PI, got %s", name)
	}
	if mangle.Mangle(name, typ) == "" {
		t.Fatal("expected a non-empty mangled name")
	}
}

func TestDeclNameUnwrapsExtern(t *testing.T) {
	mod, sink := lowerSource(t, `export "c" fn puts(s: *u8) -> void;`)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
	if len(mod.Globals) != 1 {
		t.Fatalf("expected 1 global, got %d", len(mod.Globals))
	}
	name, typ := declName(mod, mod.Globals[0])
	if name != "puts" {
		t.Fatalf("expected name puts, got %s", name)
	}
	if _, ok := typ.(*ir.FunctionType); !ok {
		t.Fatalf("expected *ir.FunctionType, got %T", typ)
	}
}

func TestReadSourceEval(t *testing.T) {
	input, name, err := readSource("let x = 1;", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "<eval>" {
		t.Fatalf("expected <eval>, got %s", name)
	}
	if input != "let x = 1;" {
		t.Fatalf("unexpected input: %s", input)
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	if _, _, err := readSource("", []string{"/nonexistent/file.nx"}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
