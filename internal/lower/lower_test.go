package lower

import (
	"testing"

	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/diag"
	"github.com/nitrate-lang/nitratec/internal/ir"
	"github.com/nitrate-lang/nitratec/internal/token"
)

// testDeclStmt mirrors internal/parser's unexported declStmt wrapper:
// lowering detects a top-level declaration structurally via Decl(), so
// these tests exercise that same contract without importing the parser
// package.
type testDeclStmt struct {
	ast.Node
	decl ast.Decl
}

func (testDeclStmt) stmtNode() {}
func (d testDeclStmt) Decl() ast.Decl { return d.decl }

func wrap(d ast.Decl) ast.Stmt { return testDeclStmt{Node: d, decl: d} }

func newProgram(stmts ...ast.Stmt) *ast.Program {
	return &ast.Program{Root: ast.NewBlockStmt(token.Span{}, ast.SafetyUnknown, stmts)}
}

func newLowerer() *Lowerer {
	return New(ir.NewModule("test"), diag.NewSink("test.nx", ""))
}

func f64Type() ast.TypeNode { return ast.NewPrimitiveType(token.Span{}, ast.KindF64) }
func i32Type() ast.TypeNode { return ast.NewPrimitiveType(token.Span{}, ast.KindI32) }

// Scenario A (spec.md §8): an empty program lowers to an empty module
// with no diagnostics.
func TestLowerEmptyProgram(t *testing.T) {
	l := newLowerer()
	mod := l.LowerProgram(newProgram())
	if len(mod.Globals) != 0 {
		t.Fatalf("expected no globals, got %d", len(mod.Globals))
	}
	if l.Sink.HasErrors() {
		t.Fatal("expected no diagnostics")
	}
}

// Scenario B (spec.md §8): `const PI: f64 = 3.14` lowers to a single
// read-only Global whose mangled name matches the worked example.
func TestLowerConstantScenarioB(t *testing.T) {
	l := newLowerer()
	decl := ast.NewConstDecl(token.Span{}, "PI", f64Type(), ast.NewFloatLiteral(token.Span{}, "3.14"), ast.VisPublic)
	mod := l.LowerProgram(newProgram(wrap(decl)))

	if len(mod.Globals) != 1 {
		t.Fatalf("expected 1 global, got %d", len(mod.Globals))
	}
	g, ok := mod.Globals[0].(*ir.Global)
	if !ok {
		t.Fatalf("expected *ir.Global, got %T", mod.Globals[0])
	}
	if !g.ReadOnly {
		t.Fatal("expected const to lower to a read-only global")
	}
	if g.Name != "PI" {
		t.Fatalf("expected name PI, got %s", g.Name)
	}
}

// A recursive function's self-call resolves its Ident.Ref to the same
// *ir.Fn pointer being defined, proving the binding happens before the
// body is lowered.
func TestLowerRecursiveFunctionResolvesSelfCall(t *testing.T) {
	l := newLowerer()
	selfCall := ast.NewCallExpr(token.Span{}, ast.NewIdentifier(token.Span{}, "fact"), nil)
	body := ast.NewBlockStmt(token.Span{}, ast.SafetyUnknown, []ast.Stmt{
		ast.NewExprStmt(token.Span{}, selfCall),
	})
	def := ast.NewFunctionDef(token.Span{}, "fact", nil, i32Type(), body, ast.VisPublic)
	mod := l.LowerProgram(newProgram(wrap(def)))

	fn, ok := mod.Globals[0].(*ir.Fn)
	if !ok {
		t.Fatalf("expected *ir.Fn, got %T", mod.Globals[0])
	}
	block, ok := fn.Body.(*ir.Block)
	if !ok || len(block.Stmts) != 1 {
		t.Fatalf("expected a 1-statement body, got %#v", fn.Body)
	}
	call, ok := block.Stmts[0].(*ir.Call)
	if !ok {
		t.Fatalf("expected *ir.Call, got %T", block.Stmts[0])
	}
	ident, ok := call.Callee.(*ir.Ident)
	if !ok {
		t.Fatalf("expected callee *ir.Ident, got %T", call.Callee)
	}
	if ident.Ref != fn {
		t.Fatal("expected recursive call's Ident.Ref to resolve to the enclosing Fn")
	}
}

// Group composite fields are reordered by descending bit-size and
// padded so each field starts at an offset that is a multiple of its
// own alignment (spec.md §4.4.3, testable property 8).
func TestLowerGroupLayoutSortsAndPads(t *testing.T) {
	l := newLowerer()
	fields := []ast.CompositeTypeField{
		{Name: "flag", Type: ast.NewPrimitiveType(token.Span{}, ast.KindU8)},
		{Name: "big", Type: ast.NewPrimitiveType(token.Span{}, ast.KindI64)},
	}
	t2 := l.lowerType(ast.NewGroupType(token.Span{}, fields))
	st, ok := t2.(*ir.StructType)
	if !ok {
		t.Fatalf("expected *ir.StructType, got %T", t2)
	}
	if st.Fields[0].Name != "big" {
		t.Fatalf("expected the 8-byte field first, got %s", st.Fields[0].Name)
	}
	lastName := st.Fields[len(st.Fields)-1].Name
	if lastName != "flag" {
		t.Fatalf("expected the 1-byte field last, got %s", lastName)
	}
}

// Enum items default the first implicit value to 0 and propagate
// predecessor+1 afterward, while an explicit value is used verbatim.
func TestLowerEnumDefaultingAndExplicitValues(t *testing.T) {
	l := newLowerer()
	items := []*ast.EnumItemDecl{
		ast.NewEnumItemDecl(token.Span{}, "Red", nil),
		ast.NewEnumItemDecl(token.Span{}, "Green", nil),
		ast.NewEnumItemDecl(token.Span{}, "Blue", ast.NewIntLiteral(token.Span{}, "10")),
	}
	decl := ast.NewEnumDecl(token.Span{}, "Color", nil, items, ast.VisPublic)
	mod := l.LowerProgram(newProgram(wrap(decl)))

	wantVals := map[string]int64{"Color::Red": 0, "Color::Green": 1, "Color::Blue": 10}
	if len(mod.Globals) != 3 {
		t.Fatalf("expected 3 globals, got %d", len(mod.Globals))
	}
	for _, n := range mod.Globals {
		g := n.(*ir.Global)
		lit := g.Value.(*ir.IntLit)
		want, ok := wantVals[g.Name]
		if !ok {
			t.Fatalf("unexpected enum global name %s", g.Name)
		}
		if lit.Value != want {
			t.Fatalf("%s: expected %d, got %d", g.Name, want, lit.Value)
		}
	}
}

// Export with the "c" ABI name wraps the inner declaration in an Extern
// tagged ABIC; an unrecognized ABI name is a BadTree-class diagnostic
// that drops the whole declaration rather than guessing.
func TestLowerExportCABI(t *testing.T) {
	l := newLowerer()
	fn := ast.NewFunctionDecl(token.Span{}, "puts", []*ast.ParamDecl{
		ast.NewParamDecl(token.Span{}, "s", ast.NewPointerType(token.Span{}, ast.NewPrimitiveType(token.Span{}, ast.KindU8)), nil),
	}, ast.NewVoidType(token.Span{}), ast.VisPublic)
	decl := ast.NewExportDecl(token.Span{}, "c", fn)
	mod := l.LowerProgram(newProgram(wrap(decl)))

	if len(mod.Globals) != 1 {
		t.Fatalf("expected 1 global, got %d", len(mod.Globals))
	}
	ext, ok := mod.Globals[0].(*ir.Extern)
	if !ok {
		t.Fatalf("expected *ir.Extern, got %T", mod.Globals[0])
	}
	if ext.ABI != ir.ABIC {
		t.Fatalf("expected ABIC, got %s", ext.ABI)
	}
}

func TestLowerExportUnrecognizedABIReportsAndSkips(t *testing.T) {
	l := newLowerer()
	fn := ast.NewFunctionDecl(token.Span{}, "f", nil, ast.NewVoidType(token.Span{}), ast.VisPublic)
	decl := ast.NewExportDecl(token.Span{}, "bogus", fn)
	mod := l.LowerProgram(newProgram(wrap(decl)))

	if len(mod.Globals) != 0 {
		t.Fatalf("expected the malformed export to contribute no globals, got %d", len(mod.Globals))
	}
	if !l.Sink.HasErrors() {
		t.Fatal("expected a diagnostic for the unrecognized ABI name")
	}
}

// A duplicate top-level name in the same scope is a VariableRedefinition:
// reported, and only the first binding survives.
func TestLowerVariableRedefinitionIsReportedAndSkipped(t *testing.T) {
	l := newLowerer()
	a := ast.NewLetDecl(token.Span{}, "x", i32Type(), ast.NewIntLiteral(token.Span{}, "1"), ast.VisPublic)
	b := ast.NewLetDecl(token.Span{}, "x", i32Type(), ast.NewIntLiteral(token.Span{}, "2"), ast.VisPublic)
	l.pushScope()
	out1 := l.lowerDecl(a)
	out2 := l.lowerDecl(b)
	l.popScope()

	if len(out1) != 1 || out2 != nil {
		t.Fatalf("expected the first decl to lower and the second to be skipped, got %d and %d", len(out1), len(out2))
	}
	if !l.Sink.HasErrors() {
		t.Fatal("expected a VariableRedefinition diagnostic")
	}
}

// Ternary lowers to If(cond, then, else) verbatim.
func TestLowerTernaryToIf(t *testing.T) {
	l := newLowerer()
	tern := ast.NewTernaryExpr(token.Span{},
		ast.NewBoolLiteral(token.Span{}, true),
		ast.NewIntLiteral(token.Span{}, "1"),
		ast.NewIntLiteral(token.Span{}, "2"))
	n := l.lowerExpr(tern)
	if _, ok := n.(*ir.If); !ok {
		t.Fatalf("expected *ir.If, got %T", n)
	}
}

// A string literal lowers to a zero-terminated list of u8 IntLits.
func TestLowerStringLiteralZeroTerminated(t *testing.T) {
	l := newLowerer()
	n := l.lowerExpr(ast.NewStringLiteral(token.Span{}, "hi"))
	sb, ok := n.(*ir.StringBytes)
	if !ok {
		t.Fatalf("expected *ir.StringBytes, got %T", n)
	}
	if len(sb.Bytes) != 3 {
		t.Fatalf("expected 3 bytes (h, i, NUL), got %d", len(sb.Bytes))
	}
	if sb.Bytes[2].Value != 0 {
		t.Fatalf("expected trailing NUL, got %d", sb.Bytes[2].Value)
	}
}

// A bad tree at top level (a statement that is not a declaration)
// reports a diagnostic and lowering resumes with the next item.
func TestLowerBadTreeAtTopLevelResumesWithNextItem(t *testing.T) {
	l := newLowerer()
	good := ast.NewConstDecl(token.Span{}, "ok", i32Type(), ast.NewIntLiteral(token.Span{}, "1"), ast.VisPublic)
	bad := ast.NewBreakStmt(token.Span{}) // not a declaration
	mod := l.LowerProgram(newProgram(bad, wrap(good)))

	if len(mod.Globals) != 1 {
		t.Fatalf("expected the good decl to still lower, got %d globals", len(mod.Globals))
	}
	if !l.Sink.HasErrors() {
		t.Fatal("expected a BadTree diagnostic for the stray statement")
	}
}

// A templated call is Unimplemented, not BadTree: the lowerer
// recognizes the construct but deliberately does not lower it.
func TestLowerTemplateCallReportsUnimplemented(t *testing.T) {
	l := newLowerer()
	call := ast.NewTemplateCallExpr(token.Span{}, ast.NewIdentifier(token.Span{}, "f"),
		[]ast.TypeNode{i32Type()}, nil)
	body := ast.NewBlockStmt(token.Span{}, ast.SafetyUnknown, []ast.Stmt{ast.NewExprStmt(token.Span{}, call)})
	def := ast.NewFunctionDef(token.Span{}, "g", nil, ast.NewVoidType(token.Span{}), body, ast.VisPublic)
	l.LowerProgram(newProgram(wrap(def)))

	if !l.Sink.HasErrors() {
		t.Fatal("expected a diagnostic for the template call")
	}
	found := false
	for _, d := range l.Sink.Diagnostics() {
		if d.Code == "Unimplemented" {
			found = true
		}
		if d.Code == "BadTree" {
			t.Fatal("expected Unimplemented, not BadTree, for an unsupported template call")
		}
	}
	if !found {
		t.Fatal("expected an Unimplemented diagnostic")
	}
}

// `while cond body` with no init/step lowers directly to *ir.While.
func TestLowerWhileStmtToIRWhile(t *testing.T) {
	l := newLowerer()
	stmt := ast.NewWhileStmt(token.Span{}, ast.NewBoolLiteral(token.Span{}, true),
		ast.NewBlockStmt(token.Span{}, ast.SafetyUnknown, nil))
	n := l.lowerStmt(stmt)
	if _, ok := n.(*ir.While); !ok {
		t.Fatalf("expected *ir.While, got %T", n)
	}
}

// A for loop carrying an init and a step lowers to *ir.For with both
// clauses populated.
func TestLowerForStmtToIRFor(t *testing.T) {
	l := newLowerer()
	init := ast.NewLetDecl(token.Span{}, "i", i32Type(), ast.NewIntLiteral(token.Span{}, "0"), ast.VisPublic)
	cond := ast.NewBinaryExpr(token.Span{}, ast.NewIdentifier(token.Span{}, "i"), "<", ast.NewIntLiteral(token.Span{}, "10"))
	step := ast.NewExprStmt(token.Span{}, ast.NewPostUnaryExpr(token.Span{}, ast.NewIdentifier(token.Span{}, "i"), "++"))
	stmt := ast.NewForStmt(token.Span{}, wrap(init), cond, step, ast.NewBlockStmt(token.Span{}, ast.SafetyUnknown, nil))

	n := l.lowerStmt(stmt)
	forNode, ok := n.(*ir.For)
	if !ok {
		t.Fatalf("expected *ir.For, got %T", n)
	}
	if forNode.Init == nil || forNode.Step == nil {
		t.Fatal("expected both Init and Step to be populated")
	}
}

// foreach desugars to a hidden iterator local followed by an *ir.While
// loop driving it through the iterator protocol.
func TestLowerForeachDesugarsToIteratorWhile(t *testing.T) {
	l := newLowerer()
	stmt := ast.NewForeachStmt(token.Span{}, "item", false, "",
		ast.NewIdentifier(token.Span{}, "items"),
		ast.NewBlockStmt(token.Span{}, ast.SafetyUnknown, nil))

	n := l.lowerStmt(stmt)
	block, ok := n.(*ir.Block)
	if !ok || len(block.Stmts) != 2 {
		t.Fatalf("expected a 2-statement block (iterator local, while), got %#v", n)
	}
	if _, ok := block.Stmts[0].(*ir.Local); !ok {
		t.Fatalf("expected the iterator local first, got %T", block.Stmts[0])
	}
	while, ok := block.Stmts[1].(*ir.While)
	if !ok {
		t.Fatalf("expected *ir.While second, got %T", block.Stmts[1])
	}
	cond, ok := while.Cond.(*ir.Call)
	if !ok {
		t.Fatalf("expected the loop condition to be a has_next() call, got %T", while.Cond)
	}
	callee := cond.Callee.(*ir.Ident)
	if callee.Name != "has_next" {
		t.Fatalf("expected has_next callee, got %s", callee.Name)
	}
}

// `form (name in iterable) body` lowers directly to *ir.Form.
func TestLowerParallelFormToIRForm(t *testing.T) {
	l := newLowerer()
	stmt := ast.NewParallelFormStmt(token.Span{}, "item", ast.NewIdentifier(token.Span{}, "items"),
		ast.NewBlockStmt(token.Span{}, ast.SafetyUnknown, nil))
	n := l.lowerStmt(stmt)
	form, ok := n.(*ir.Form)
	if !ok {
		t.Fatalf("expected *ir.Form, got %T", n)
	}
	if form.ValIdent != "item" {
		t.Fatalf("expected ValIdent item, got %s", form.ValIdent)
	}
}

// A switch lowers to one *ir.Switch carrying the scrutinee once plus
// ordered Case arms, rather than a re-evaluated If-chain.
func TestLowerSwitchToIRSwitch(t *testing.T) {
	l := newLowerer()
	cases := []*ast.CaseStmt{
		ast.NewCaseStmt(token.Span{}, ast.NewIntLiteral(token.Span{}, "1"),
			ast.NewBlockStmt(token.Span{}, ast.SafetyUnknown, nil)),
		ast.NewCaseStmt(token.Span{}, ast.NewIntLiteral(token.Span{}, "2"),
			ast.NewBlockStmt(token.Span{}, ast.SafetyUnknown, nil)),
	}
	def := ast.NewBlockStmt(token.Span{}, ast.SafetyUnknown, nil)
	stmt := ast.NewSwitchStmt(token.Span{}, ast.NewIdentifier(token.Span{}, "x"), cases, def)

	n := l.lowerStmt(stmt)
	sw, ok := n.(*ir.Switch)
	if !ok {
		t.Fatalf("expected *ir.Switch, got %T", n)
	}
	if len(sw.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(sw.Cases))
	}
	if sw.Default == nil {
		t.Fatal("expected the default arm to be populated")
	}
}

// x++ lowers directly to a single *ir.PostUnExpr rather than a
// clone-and-assign desugaring.
func TestLowerPostUnaryToIRPostUnExpr(t *testing.T) {
	l := newLowerer()
	n := l.lowerExpr(ast.NewPostUnaryExpr(token.Span{}, ast.NewIdentifier(token.Span{}, "x"), "++"))
	post, ok := n.(*ir.PostUnExpr)
	if !ok {
		t.Fatalf("expected *ir.PostUnExpr, got %T", n)
	}
	if post.Op != ir.OpIncr {
		t.Fatalf("expected OpIncr, got %v", post.Op)
	}
}

// Indexing and field access both lower to *ir.Index.
func TestLowerIndexAndFieldAccessToIRIndex(t *testing.T) {
	l := newLowerer()
	idx := l.lowerExpr(ast.NewIndexExpr(token.Span{}, ast.NewIdentifier(token.Span{}, "arr"), ast.NewIntLiteral(token.Span{}, "0")))
	if _, ok := idx.(*ir.Index); !ok {
		t.Fatalf("expected *ir.Index for indexing, got %T", idx)
	}

	field := l.lowerExpr(ast.NewFieldAccessExpr(token.Span{}, ast.NewIdentifier(token.Span{}, "obj"), "x"))
	fi, ok := field.(*ir.Index)
	if !ok {
		t.Fatalf("expected *ir.Index for field access, got %T", field)
	}
	ident, ok := fi.Index.(*ir.Ident)
	if !ok || ident.Name != "x" {
		t.Fatalf("expected the field name carried as an Ident index, got %#v", fi.Index)
	}
}

// Inline assembly lowers to *ir.Asm, carrying its source verbatim.
func TestLowerInlineAsmToIRAsm(t *testing.T) {
	l := newLowerer()
	n := l.lowerStmt(ast.NewInlineAsmStmt(token.Span{}, "nop"))
	asm, ok := n.(*ir.Asm)
	if !ok {
		t.Fatalf("expected *ir.Asm, got %T", n)
	}
	if asm.Source != "nop" {
		t.Fatalf("expected source nop, got %s", asm.Source)
	}
}
