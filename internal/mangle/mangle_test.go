package mangle

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/nitrate-lang/nitratec/internal/ir"
	"github.com/nitrate-lang/nitratec/internal/token"
)

func TestMangleConstantScenarioB(t *testing.T) {
	m := ir.NewModule("test")
	f64 := m.PrimitiveType(token.Span{}, ir.PrimF64)
	got := Mangle("PI", f64)
	if got != "_Q2PIDd_0" {
		t.Fatalf("expected _Q2PIDd_0, got %s", got)
	}
}

func TestDemangleConstantScenarioB(t *testing.T) {
	out, ok := Demangle("_Q2PIDd_0")
	if !ok {
		t.Fatal("expected demangle to succeed")
	}
	if gjson.Get(out, "name").String() != "PI" {
		t.Fatalf("expected name PI, got %s", out)
	}
	if gjson.Get(out, "type").String() != "f64" {
		t.Fatalf("expected type f64, got %s", out)
	}
}

func TestMangleCVerbatimForSimpleName(t *testing.T) {
	if got := MangleC("strlen"); got != "strlen" {
		t.Fatalf("expected strlen verbatim, got %s", got)
	}
}

func TestMangleCReplacesColons(t *testing.T) {
	if got := MangleC("outer::inner::f"); got != "outer__inner__f" {
		t.Fatalf("expected outer__inner__f, got %s", got)
	}
}

func TestMangleRoundTripPreservesName(t *testing.T) {
	m := ir.NewModule("test")
	i32 := m.PrimitiveType(token.Span{}, ir.PrimI32)
	ptr := m.NewPointerType(token.Span{}, i32)
	fn := m.NewFunctionType(token.Span{}, []ir.Node{ptr}, false, m.VoidType(token.Span{}))

	names := []string{"f", "outer::inner::g"}
	for _, name := range names {
		mangled := Mangle(name, fn)
		out, ok := Demangle(mangled)
		if !ok {
			t.Fatalf("demangle failed for %s -> %s", name, mangled)
		}
		if got := gjson.Get(out, "name").String(); got != name {
			t.Fatalf("round-trip name mismatch: want %s, got %s", name, got)
		}
	}
}

func TestDemangleNonQuixNameReturnedVerbatim(t *testing.T) {
	out, ok := Demangle("strlen")
	if !ok || out != "strlen" {
		t.Fatalf("expected strlen to pass through verbatim, got %q ok=%v", out, ok)
	}
}

func TestDemangleMalformedFailsSafely(t *testing.T) {
	if _, ok := Demangle("_Qgarbage"); ok {
		t.Fatal("expected malformed _Q name to fail safely")
	}
}

func TestMangleDeterministic(t *testing.T) {
	m := ir.NewModule("test")
	u8 := m.PrimitiveType(token.Span{}, ir.PrimU8)
	a := Mangle("x::y", u8)
	b := Mangle("x::y", u8)
	if a != b {
		t.Fatalf("expected mangle to be deterministic, got %s vs %s", a, b)
	}
}
