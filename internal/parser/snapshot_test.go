package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/nitrate-lang/nitratec/internal/ast"
)

// TestParseSnapshots pins the S-expression dump of a handful of
// representative programs against a committed golden file, the way the
// teacher's interp/fixture_test.go pins interpreter output — here over
// the parser's AST instead of a running program's stdout.
func TestParseSnapshots(t *testing.T) {
	sources := map[string]string{
		"const_decl":   `const PI: f64 = 3.14;`,
		"function_def": `fn add(a: i32, b: i32) -> i32 { return a + b }`,
		"struct_decl":  `struct Point { pub x: f32, pub y: f32 }`,
		"if_while_for": `fn main() -> void {
			if (1 < 2) { } else { }
			while (1 < 2) { }
			for (var i: i32 = 0; i < 10; i++) { }
		}`,
		"export_c": `export "c" fn puts(s: *u8) -> void;`,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			prog := parseProgram(t, src)
			snaps.MatchSnapshot(t, ast.String(prog.Root))
		})
	}
}
