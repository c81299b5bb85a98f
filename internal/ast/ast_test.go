package ast

import (
	"strings"
	"testing"

	"github.com/nitrate-lang/nitratec/internal/token"
)

func sp() token.Span { return token.Span{} }

func TestPrintBinaryExpr(t *testing.T) {
	n := NewBinaryExpr(sp(), NewIdentifier(sp(), "x"), "+", NewIntLiteral(sp(), "1"))
	got := String(n)
	want := `(BinaryExpr "+" (Identifier "x") (IntLiteral 1))`
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestPrintNilFields(t *testing.T) {
	n := NewIfStmt(sp(), NewBoolLiteral(sp(), true), NewBlockStmt(sp(), SafetyUnknown, nil), nil)
	got := String(n)
	if !strings.Contains(got, "IfStmt") || !strings.Contains(got, "()") {
		t.Fatalf("expected nil Else to render as (), got %q", got)
	}
}

func TestVerifyCatchesMissingOperand(t *testing.T) {
	n := &BinaryExpr{base: mk(KindBinaryExpr, sp()), Op: "+"}
	errs := Verify(n)
	if len(errs) == 0 {
		t.Fatal("expected Verify to report missing operands")
	}
}

func TestVerifyAcceptsWellFormedTree(t *testing.T) {
	fn := NewFunctionDef(sp(), "add",
		[]*ParamDecl{
			NewParamDecl(sp(), "a", NewPrimitiveType(sp(), KindI32), nil),
			NewParamDecl(sp(), "b", NewPrimitiveType(sp(), KindI32), nil),
		},
		NewPrimitiveType(sp(), KindI32),
		NewBlockStmt(sp(), SafetyUnknown, []Stmt{
			NewReturnStmt(sp(), NewBinaryExpr(sp(), NewIdentifier(sp(), "a"), "+", NewIdentifier(sp(), "b"))),
		}),
		VisPublic,
	)
	if errs := Verify(fn); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestCloneProducesDistinctSubtree(t *testing.T) {
	orig := NewBinaryExpr(sp(), NewIdentifier(sp(), "x"), "*", NewIntLiteral(sp(), "2"))
	cloned := Clone(orig).(*BinaryExpr)

	if cloned == orig {
		t.Fatal("Clone returned the same pointer")
	}
	if cloned.Left == orig.Left || cloned.Right == orig.Right {
		t.Fatal("Clone shared a child subtree with the original")
	}
	if String(cloned) != String(orig) {
		t.Fatalf("clone diverged: %q vs %q", String(cloned), String(orig))
	}
}

func TestCloneStructDeclDeepCopiesFields(t *testing.T) {
	decl := NewStructDecl(sp(), "Point",
		[]*CompositeFieldDecl{
			NewCompositeFieldDecl(sp(), "x", NewPrimitiveType(sp(), KindF32), nil, nil, VisPublic),
			NewCompositeFieldDecl(sp(), "y", NewPrimitiveType(sp(), KindF32), nil, nil, VisPublic),
		}, nil, nil, nil, VisPublic)

	cloned := Clone(decl).(*StructDecl)
	if len(cloned.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(cloned.Fields))
	}
	if cloned.Fields[0] == decl.Fields[0] {
		t.Fatal("expected distinct field pointers after clone")
	}
	cloned.Fields[0].Name = "mutated"
	if decl.Fields[0].Name == "mutated" {
		t.Fatal("mutating the clone mutated the original")
	}
}

func TestKindPredicates(t *testing.T) {
	if !KindBinaryExpr.IsExpr() {
		t.Error("KindBinaryExpr should be IsExpr")
	}
	if !KindStructType.IsType() {
		t.Error("KindStructType should be IsType")
	}
	if !KindFunctionDef.IsDecl() {
		t.Error("KindFunctionDef should be IsDecl")
	}
	if !KindIfStmt.IsStmt() {
		t.Error("KindIfStmt should be IsStmt")
	}
}
