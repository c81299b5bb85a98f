package config

import (
	"testing"

	"github.com/nitrate-lang/nitratec/internal/diag"
	"github.com/nitrate-lang/nitratec/internal/ir"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Backend != BackendLLVMIR {
		t.Fatalf("expected default backend llvm-ir, got %s", cfg.Backend)
	}
	if cfg.RenderMode() != diag.Plain {
		t.Fatal("expected default render mode Plain")
	}
	if cfg.ABI() != ir.ABIDefault {
		t.Fatal("expected default ABI")
	}
}

func TestParseFillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`backend: c11
default_abi: c
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend != BackendC11 {
		t.Fatalf("expected c11 backend, got %s", cfg.Backend)
	}
	if cfg.ABI() != ir.ABIC {
		t.Fatal("expected ABIC")
	}
	if cfg.Diagnostics != "plain" {
		t.Fatalf("expected diagnostics to default to plain, got %s", cfg.Diagnostics)
	}
	if cfg.ContextLines != 2 {
		t.Fatalf("expected context_lines to default to 2, got %d", cfg.ContextLines)
	}
}

func TestParseClang16Color(t *testing.T) {
	cfg, err := Parse([]byte(`diagnostics: clang16color
context_lines: 4
include_paths:
  - ./units
  - /usr/local/nitrate/units
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RenderMode() != diag.Clang16Color {
		t.Fatal("expected Clang16Color render mode")
	}
	if len(cfg.IncludePaths) != 2 {
		t.Fatalf("expected 2 include paths, got %d", len(cfg.IncludePaths))
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("backend: [unterminated")); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/nitratec.yaml"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
