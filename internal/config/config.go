// Package config loads nitratec's compiler configuration from a YAML
// document: the output backend, default ABI, diagnostic rendering mode,
// and unit/include search paths (spec.md §OVERVIEW's "configurable
// knobs" on the code-emission backend).
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/nitrate-lang/nitratec/internal/diag"
	"github.com/nitrate-lang/nitratec/internal/ir"
)

// Backend names the target the emission stage should produce. The IR
// module itself is backend-agnostic (spec.md §OVERVIEW); this is purely
// the knob a driver passes downstream.
type Backend string

const (
	BackendLLVMIR Backend = "llvm-ir"
	BackendAsm    Backend = "asm"
	BackendObject Backend = "object"
	BackendC11    Backend = "c11"
	BackendCPP11  Backend = "cpp11"
	BackendTS     Backend = "typescript"
	BackendRust   Backend = "rust"
	BackendPython Backend = "python3"
	BackendCSharp Backend = "csharp"
)

// Config is the root of a nitratec.yaml document.
type Config struct {
	// Backend selects the code-emission target. Defaults to BackendLLVMIR.
	Backend Backend `yaml:"backend"`

	// OptLevel is a 0-3 optimization hint passed through to the backend;
	// nitratec itself performs no optimization.
	OptLevel int `yaml:"opt_level"`

	// DefaultABI names the calling convention assumed for declarations
	// with no explicit export clause ("" -> default, "q" -> QUIX, "c" -> C).
	DefaultABI string `yaml:"default_abi"`

	// Diagnostics selects how Sink diagnostics are rendered: "plain" or
	// "clang16color".
	Diagnostics string `yaml:"diagnostics"`

	// ContextLines is the number of source lines of context shown around
	// a caret in clang16color mode.
	ContextLines int `yaml:"context_lines"`

	// IncludePaths are searched, in order, for imported units.
	IncludePaths []string `yaml:"include_paths"`

	// OutputPath overrides the default derived output file name.
	OutputPath string `yaml:"output_path"`
}

// Default returns the configuration used when no nitratec.yaml is
// present: LLVM IR output, no optimization, the module's own default
// ABI, and plain diagnostics.
func Default() *Config {
	return &Config{
		Backend:      BackendLLVMIR,
		OptLevel:     0,
		DefaultABI:   "",
		Diagnostics:  "plain",
		ContextLines: 2,
	}
}

// Load reads and parses a YAML configuration file, filling in any field
// left zero-valued with Default()'s value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document into a Config, applying defaults for
// anything left unset.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: invalid YAML: %w", err)
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendLLVMIR
	}
	if cfg.Diagnostics == "" {
		cfg.Diagnostics = "plain"
	}
	if cfg.ContextLines == 0 {
		cfg.ContextLines = 2
	}
	return cfg, nil
}

// ABI resolves DefaultABI to the ir.ABI the lowerer should assume for
// declarations with no explicit export clause.
func (c *Config) ABI() ir.ABI {
	switch c.DefaultABI {
	case "q":
		return ir.ABIQuix
	case "c":
		return ir.ABIC
	default:
		return ir.ABIDefault
	}
}

// RenderMode resolves Diagnostics to a diag.RenderMode.
func (c *Config) RenderMode() diag.RenderMode {
	if c.Diagnostics == "clang16color" {
		return diag.Clang16Color
	}
	return diag.Plain
}
