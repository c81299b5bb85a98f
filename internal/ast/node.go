package ast

import "github.com/nitrate-lang/nitratec/internal/token"

// Node is the base contract every AST node satisfies: its closed Kind tag
// and its (possibly zero) source Span.
type Node interface {
	Kind() Kind
	Span() token.Span
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action without itself being a value.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a top-level or scope-level declaration.
type Decl interface {
	Node
	declNode()
}

// TypeNode is a type expression.
type TypeNode interface {
	Node
	typeNode()
}

// base is embedded by every concrete node; it supplies Kind and Span so
// individual node types don't each repeat the boilerplate. The factory
// functions below (NewIdentifier, NewBinaryExpr, ...) are the "uniform
// factory" spec.md §4.2 calls for — they are the only way to construct a
// node and they install the Kind and Span at construction time.
type base struct {
	kind Kind
	span token.Span
}

func (b base) Kind() Kind       { return b.kind }
func (b base) Span() token.Span { return b.span }

func mk(k Kind, sp token.Span) base { return base{kind: k, span: sp} }

// marker method sets — a node opts into an axis by embedding one of these.
type exprMarker struct{}

func (exprMarker) exprNode() {}

type stmtMarker struct{}

func (stmtMarker) stmtNode() {}

type declMarker struct{}

func (declMarker) declNode() {}

type typeMarker struct{}

func (typeMarker) typeNode() {}

// Program is the root of a parsed translation unit: a single top-level
// Block (spec.md §2: "AST rooted at a Block node").
type Program struct {
	Root *BlockStmt
}

// Visibility is the three-valued enum spec.md §4.2 attaches to every Decl.
type Visibility uint8

const (
	VisPublic Visibility = iota
	VisPrivate
	VisProtected
)

func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "pub"
	case VisPrivate:
		return "sec"
	case VisProtected:
		return "pro"
	default:
		return "pub"
	}
}

// Purity is the five-valued function purity enum of spec.md §4.2.
type Purity uint8

const (
	ImpureThreadUnsafe Purity = iota
	ImpureThreadSafe
	Pure
	Quasipure
	Retropure
)

func (p Purity) String() string {
	switch p {
	case ImpureThreadUnsafe:
		return "impure"
	case ImpureThreadSafe:
		return "impure(thread_safe)"
	case Pure:
		return "pure"
	case Quasipure:
		return "quasipure"
	case Retropure:
		return "retropure"
	default:
		return "impure"
	}
}

// SafetyMode is the Unknown/Safe/Unsafe block annotation of spec.md §3.
type SafetyMode uint8

const (
	SafetyUnknown SafetyMode = iota
	SafetySafe
	SafetyUnsafe
)

func (s SafetyMode) String() string {
	switch s {
	case SafetySafe:
		return "safe"
	case SafetyUnsafe:
		return "unsafe"
	default:
		return "unknown"
	}
}
