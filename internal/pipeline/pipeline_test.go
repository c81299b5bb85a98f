package pipeline

import (
	"testing"

	"github.com/nitrate-lang/nitratec/internal/config"
)

// A well-formed compilation unit lowers cleanly: OK is true, a module
// comes back, and no diagnostic was reported.
func TestCompileWellFormedSource(t *testing.T) {
	res := Compile("test.nx", "const PI: f64 = 3.14;\n", config.Default())
	if !res.OK {
		t.Fatalf("expected OK, got diagnostics: %v", res.Diagnostics)
	}
	if res.Module == nil {
		t.Fatal("expected a non-nil module")
	}
	if len(res.Module.Globals) != 1 {
		t.Fatalf("expected 1 global, got %d", len(res.Module.Globals))
	}
}

// A syntax error stops the pipeline before lowering runs: OK is false
// and the diagnostic set is non-empty.
func TestCompileSyntaxErrorStopsBeforeLowering(t *testing.T) {
	res := Compile("test.nx", "const = ;\n", config.Default())
	if res.OK {
		t.Fatal("expected OK to be false for malformed source")
	}
	if len(res.Diagnostics) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
}

// A nil config is tolerated: Compile still lowers with the lowerer's
// zero-value default ABI rather than panicking.
func TestCompileNilConfig(t *testing.T) {
	res := Compile("test.nx", "const PI: f64 = 3.14;\n", nil)
	if !res.OK {
		t.Fatalf("expected OK with nil config, got diagnostics: %v", res.Diagnostics)
	}
}
