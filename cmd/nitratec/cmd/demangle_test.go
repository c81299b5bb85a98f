package cmd

import (
	"testing"

	"github.com/nitrate-lang/nitratec/internal/ir"
	"github.com/nitrate-lang/nitratec/internal/mangle"
	"github.com/nitrate-lang/nitratec/internal/token"
)

func TestRunDemangleRoundTrip(t *testing.T) {
	mod := ir.NewModule("test")
	f64 := mod.PrimitiveType(token.Span{}, ir.PrimF64)
	mangled := mangle.Mangle("PI", f64)

	out, ok := mangle.Demangle(mangled)
	if !ok {
		t.Fatalf("expected %q to demangle cleanly", mangled)
	}
	if out == "" {
		t.Fatal("expected non-empty demangled output")
	}
}

func TestRunDemangleRejectsMalformed(t *testing.T) {
	if _, ok := mangle.Demangle("_Qgarbage"); ok {
		t.Fatal("expected malformed mangled name to be rejected")
	}
}
