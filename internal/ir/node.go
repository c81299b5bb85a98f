package ir

import "github.com/nitrate-lang/nitratec/internal/token"

// Node is the contract every IR value satisfies. Unlike internal/ast,
// IR has no separate Expr/Stmt/Decl/TypeNode axis: spec.md's Design
// Notes §9 describes a single flat "enum IrNode { BinExpr(...),
// Call(...), ... }", so one interface plus an exhaustive type switch
// (see Children, in traversal.go) is the whole story.
type Node interface {
	Kind() Kind
	// Span is best-effort: spec.md §4.4.4 says a hash-consed or cloned
	// node loses caller-attached span information, so a zero Span is
	// valid and callers must check IsZero before using it.
	Span() token.Span
}

// base is embedded by every concrete node for the Kind/Span boilerplate,
// mirroring internal/ast's base type.
type base struct {
	kind Kind
	span token.Span
}

func (b base) Kind() Kind       { return b.kind }
func (b base) Span() token.Span { return b.span }

func mk(k Kind, sp token.Span) base { return base{kind: k, span: sp} }
