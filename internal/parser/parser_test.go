package parser

import (
	"testing"

	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/lexer"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return prog
}

func firstDecl(t *testing.T, prog *ast.Program) ast.Decl {
	t.Helper()
	if len(prog.Root.Stmts) == 0 {
		t.Fatal("expected at least one top-level declaration")
	}
	ds, ok := prog.Root.Stmts[0].(interface{ Decl() ast.Decl })
	if !ok {
		t.Fatalf("expected declStmt, got %T", prog.Root.Stmts[0])
	}
	return ds.Decl()
}

func TestParseRecursiveFunction(t *testing.T) {
	src := `fn f(x: i32) -> i32 { retif x <= 0, 0; return f(x - 1) + x }`
	prog := parseProgram(t, src)
	fn, ok := firstDecl(t, prog).(*ast.FunctionDef)
	if !ok {
		t.Fatalf("expected FunctionDef, got %T", firstDecl(t, prog))
	}
	if fn.Name != "f" {
		t.Fatalf("expected name f, got %s", fn.Name)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "x" {
		t.Fatalf("unexpected params: %+v", fn.Params)
	}
	if len(fn.Body.Stmts) != 2 {
		t.Fatalf("expected 2 body statements, got %d", len(fn.Body.Stmts))
	}
	if _, ok := fn.Body.Stmts[0].(*ast.RetIfStmt); !ok {
		t.Fatalf("expected RetIfStmt first, got %T", fn.Body.Stmts[0])
	}
}

func TestParseVarLetConst(t *testing.T) {
	src := `var a: i32 = 1; let b = 2; const c: i32 = 3;`
	prog := parseProgram(t, src)
	if len(prog.Root.Stmts) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(prog.Root.Stmts))
	}
}

func TestParseStructDecl(t *testing.T) {
	src := `struct Point { pub x: f32, pub y: f32 }`
	prog := parseProgram(t, src)
	sd, ok := firstDecl(t, prog).(*ast.StructDecl)
	if !ok {
		t.Fatalf("expected StructDecl, got %T", firstDecl(t, prog))
	}
	if sd.Name != "Point" || len(sd.Fields) != 2 {
		t.Fatalf("unexpected struct: %+v", sd)
	}
}

func TestParseGroupDecl(t *testing.T) {
	src := `group Packed { a: u8, b: u32 }`
	prog := parseProgram(t, src)
	gd, ok := firstDecl(t, prog).(*ast.GroupDecl)
	if !ok {
		t.Fatalf("expected GroupDecl, got %T", firstDecl(t, prog))
	}
	if len(gd.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(gd.Fields))
	}
}

func TestParseEnumWithImplicitValues(t *testing.T) {
	src := `enum Color { Red = 1, Green, Blue }`
	prog := parseProgram(t, src)
	ed, ok := firstDecl(t, prog).(*ast.EnumDecl)
	if !ok {
		t.Fatalf("expected EnumDecl, got %T", firstDecl(t, prog))
	}
	if len(ed.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(ed.Items))
	}
	if ed.Items[1].Value != nil {
		t.Fatal("expected Green to have an implicit (nil) value")
	}
}

func TestParseIfWhileFor(t *testing.T) {
	src := `fn main() -> void {
		if (1 < 2) { } else { }
		while (1 < 2) { }
		for (var i: i32 = 0; i < 10; i++) { }
	}`
	prog := parseProgram(t, src)
	fn := firstDecl(t, prog).(*ast.FunctionDef)
	if len(fn.Body.Stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(fn.Body.Stmts))
	}
	if _, ok := fn.Body.Stmts[0].(*ast.IfStmt); !ok {
		t.Errorf("expected IfStmt, got %T", fn.Body.Stmts[0])
	}
	if _, ok := fn.Body.Stmts[1].(*ast.WhileStmt); !ok {
		t.Errorf("expected WhileStmt, got %T", fn.Body.Stmts[1])
	}
	if _, ok := fn.Body.Stmts[2].(*ast.ForStmt); !ok {
		t.Errorf("expected ForStmt, got %T", fn.Body.Stmts[2])
	}
}

func TestParseTernaryAndBinaryPrecedence(t *testing.T) {
	src := `let x = 1 + 2 * 3;`
	prog := parseProgram(t, src)
	decl := firstDecl(t, prog).(*ast.LetDecl)
	bin, ok := decl.Init.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected BinaryExpr, got %T", decl.Init)
	}
	if bin.Op != "+" {
		t.Fatalf("expected top-level '+' (lower precedence binds looser), got %q", bin.Op)
	}
	if _, ok := bin.Right.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected right side to be the '*' subexpression, got %T", bin.Right)
	}
}

func TestParseAttrSetOnStruct(t *testing.T) {
	src := `struct Foo with [packed] { a: i32 }`
	prog := parseProgram(t, src)
	sd := firstDecl(t, prog).(*ast.StructDecl)
	if sd.Attrs == nil || len(sd.Attrs.Attrs) != 1 || sd.Attrs.Attrs[0].Name != "packed" {
		t.Fatalf("expected [packed] attr set, got %+v", sd.Attrs)
	}
}
