package ir

import "github.com/nitrate-lang/nitratec/internal/token"

type IntLit struct {
	base
	Value int64
	Type  Node
}

type FloatLit struct {
	base
	Value string // preserved verbatim; folding is a later pass's job
	Type  Node
}

// StringBytes is the lowered form of a string literal (spec.md §4.4.3):
// a zero-terminated list of u8-cast IntLits.
type StringBytes struct {
	base
	Bytes []*IntLit
}

// Ident is a name reference. Ref is the back-reference to the
// declaration it resolves to — a Local, Global, or Fn — and is never
// treated as a structural child by the traversal engine (spec.md Design
// Notes §9): that is what keeps recursive functions and self-referencing
// globals from being infinite trees.
type Ident struct {
	base
	Name string
	Ref  Node // nil until resolved; never walked as a child
}

type CallOp uint8

const (
	CallPlain CallOp = iota
)

type Call struct {
	base
	Callee Node // an expression producing a callable value, usually *Ident
	Args   []Node
}

type BinOp uint8

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpNe
	OpLogAnd
	OpLogOr
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpAssign
	OpCastAs
	OpBitcastAs
)

func (o BinOp) String() string {
	names := [...]string{
		"+", "-", "*", "/", "%", "<", "<=", ">", ">=", "==", "!=",
		"&&", "||", "&", "|", "^", "<<", ">>", "=", "as", "bitcast_as",
	}
	if int(o) < len(names) {
		return names[o]
	}
	return "?"
}

type BinExpr struct {
	base
	Left, Right Node
	Op          BinOp
}

type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
	OpNot
	OpBitNot
	OpDeref
	OpAddrOf
	OpIncr
	OpDecr
)

type UnaryExpr struct {
	base
	Operand Node
	Op      UnaryOp
}

// PostUnExpr is a postfix unary operation (`x++`, `x--`), distinct from
// UnaryExpr's prefix form (spec.md §3; `IRGraph.hh`'s `PostUnExpr`).
type PostUnExpr struct {
	base
	Operand Node
	Op      UnaryOp
}

// If is both the ternary-expression lowering target and the general
// conditional (spec.md §4.4.3: "Ternary -> If(cond, then, else)"). Else
// may be nil for a statement-position if with no else branch.
type If struct {
	base
	Cond, Then, Else Node
}

// List is an ordered aggregate value: a composite literal's field
// values, or an array literal's elements.
type List struct {
	base
	Elems []Node
}

// Block is an ordered sequence of IR nodes evaluated for effect, the IR
// analogue of ast.BlockStmt.
type Block struct {
	base
	Stmts []Node
}

// Seq is an ordered list of child expressions evaluated for their
// combined value (spec.md §3: "sequence (ordered list of child
// expressions; the unit value when empty)"; `IRGraph.hh`'s `Seq`).
// Unlike Block, which is the statement-sequencing shape lowering uses
// for braced bodies, Seq is the lowering target for an
// expression-position sequence (a sequence-point expression).
type Seq struct {
	base
	Items []Node
}

// Index is `object[index]` (spec.md §3; `IRGraph.hh`'s `Index`). Field
// access also lowers here with the field name carried as an Ident
// index, since the flat IR has no separate named-field-access shape.
type Index struct {
	base
	Object Node
	Index  Node
}

func (m *Module) NewIntLit(sp token.Span, v int64, t Node) *IntLit {
	return &IntLit{mk(KindIntLit, sp), v, t}
}

func (m *Module) NewFloatLit(sp token.Span, v string, t Node) *FloatLit {
	return &FloatLit{mk(KindFloatLit, sp), v, t}
}

func (m *Module) NewStringBytes(sp token.Span, bytes []*IntLit) *StringBytes {
	return &StringBytes{mk(KindStringBytes, sp), bytes}
}

func (m *Module) NewIdent(sp token.Span, name string, ref Node) *Ident {
	return &Ident{mk(KindIdent, sp), name, ref}
}

func (m *Module) NewCall(sp token.Span, callee Node, args []Node) *Call {
	return &Call{mk(KindCall, sp), callee, args}
}

func (m *Module) NewBinExpr(sp token.Span, l, r Node, op BinOp) *BinExpr {
	return &BinExpr{mk(KindBinExpr, sp), l, r, op}
}

func (m *Module) NewUnaryExpr(sp token.Span, operand Node, op UnaryOp) *UnaryExpr {
	return &UnaryExpr{mk(KindUnaryExpr, sp), operand, op}
}

func (m *Module) NewPostUnExpr(sp token.Span, operand Node, op UnaryOp) *PostUnExpr {
	return &PostUnExpr{mk(KindPostUnExpr, sp), operand, op}
}

func (m *Module) NewIf(sp token.Span, cond, then, els Node) *If {
	return &If{mk(KindIf, sp), cond, then, els}
}

func (m *Module) NewList(sp token.Span, elems []Node) *List {
	return &List{mk(KindList, sp), elems}
}

func (m *Module) NewBlock(sp token.Span, stmts []Node) *Block {
	return &Block{mk(KindBlock, sp), stmts}
}

func (m *Module) NewSeq(sp token.Span, items []Node) *Seq {
	return &Seq{mk(KindSeq, sp), items}
}

func (m *Module) NewIndex(sp token.Span, object, index Node) *Index {
	return &Index{mk(KindIndex, sp), object, index}
}

