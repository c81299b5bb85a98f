package ast

import "github.com/nitrate-lang/nitratec/internal/token"

// Identifier is a name reference (variable, function, type, enum item...).
type Identifier struct {
	base
	exprMarker
	Name string
}

func NewIdentifier(sp token.Span, name string) *Identifier {
	return &Identifier{base: mk(KindIdentifier, sp), Name: name}
}

// IntLiteral is an integer literal. Text holds the parsed text verbatim
// (not evaluated) so arbitrary-precision literals survive to IR lowering.
type IntLiteral struct {
	base
	exprMarker
	Text string
}

func NewIntLiteral(sp token.Span, text string) *IntLiteral {
	return &IntLiteral{base: mk(KindIntLiteral, sp), Text: text}
}

// FloatLiteral is a floating-point literal, kept as source text.
type FloatLiteral struct {
	base
	exprMarker
	Text string
}

func NewFloatLiteral(sp token.Span, text string) *FloatLiteral {
	return &FloatLiteral{base: mk(KindFloatLiteral, sp), Text: text}
}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	base
	exprMarker
	Value bool
}

func NewBoolLiteral(sp token.Span, v bool) *BoolLiteral {
	return &BoolLiteral{base: mk(KindBoolLiteral, sp), Value: v}
}

// CharLiteral is a single character literal.
type CharLiteral struct {
	base
	exprMarker
	Value rune
}

func NewCharLiteral(sp token.Span, v rune) *CharLiteral {
	return &CharLiteral{base: mk(KindCharLiteral, sp), Value: v}
}

// StringLiteral is a quoted string literal (decoded, no surrounding quotes).
type StringLiteral struct {
	base
	exprMarker
	Value string
}

func NewStringLiteral(sp token.Span, v string) *StringLiteral {
	return &StringLiteral{base: mk(KindStringLiteral, sp), Value: v}
}

// NullLiteral is `null`.
type NullLiteral struct {
	base
	exprMarker
}

func NewNullLiteral(sp token.Span) *NullLiteral {
	return &NullLiteral{base: mk(KindNullLiteral, sp)}
}

// UndefLiteral is `undef`, the uninitialized-value sentinel.
type UndefLiteral struct {
	base
	exprMarker
}

func NewUndefLiteral(sp token.Span) *UndefLiteral {
	return &UndefLiteral{base: mk(KindUndefLiteral, sp)}
}

// BinaryExpr is a binary operation, including assignments and compound
// assignments (`=`, `+=`, `as`, `bitcast_as`, `is`, `in`, ...).
type BinaryExpr struct {
	base
	exprMarker
	Left, Right Expr
	Op          string
}

func NewBinaryExpr(sp token.Span, left Expr, op string, right Expr) *BinaryExpr {
	return &BinaryExpr{base: mk(KindBinaryExpr, sp), Left: left, Op: op, Right: right}
}

// UnaryExpr is a prefix unary operation (`-x`, `not x`, `sizeof e`, ...).
type UnaryExpr struct {
	base
	exprMarker
	Op      string
	Operand Expr
}

func NewUnaryExpr(sp token.Span, op string, operand Expr) *UnaryExpr {
	return &UnaryExpr{base: mk(KindUnaryExpr, sp), Op: op, Operand: operand}
}

// PostUnaryExpr is a postfix unary operation (`x++`, `x--`).
type PostUnaryExpr struct {
	base
	exprMarker
	Op      string
	Operand Expr
}

func NewPostUnaryExpr(sp token.Span, operand Expr, op string) *PostUnaryExpr {
	return &PostUnaryExpr{base: mk(KindPostUnaryExpr, sp), Op: op, Operand: operand}
}

// TernaryExpr is `cond ? then : else`; it lowers to If(cond, then, else)
// per spec.md §4.4.3.
type TernaryExpr struct {
	base
	exprMarker
	Cond, Then, Else Expr
}

func NewTernaryExpr(sp token.Span, cond, then, els Expr) *TernaryExpr {
	return &TernaryExpr{base: mk(KindTernaryExpr, sp), Cond: cond, Then: then, Else: els}
}

// CallExpr is a function call with positional arguments.
type CallExpr struct {
	base
	exprMarker
	Callee Expr
	Args   []Expr
}

func NewCallExpr(sp token.Span, callee Expr, args []Expr) *CallExpr {
	return &CallExpr{base: mk(KindCallExpr, sp), Callee: callee, Args: args}
}

// TemplateCallExpr is a call with explicit template/generic arguments:
// `f<T, U>(a, b)`.
type TemplateCallExpr struct {
	base
	exprMarker
	Callee    Expr
	TypeArgs  []TypeNode
	Args      []Expr
}

func NewTemplateCallExpr(sp token.Span, callee Expr, typeArgs []TypeNode, args []Expr) *TemplateCallExpr {
	return &TemplateCallExpr{base: mk(KindTemplateCallExpr, sp), Callee: callee, TypeArgs: typeArgs, Args: args}
}

// ListExpr is a bracketed list literal: `[a, b, c]`.
type ListExpr struct {
	base
	exprMarker
	Elems []Expr
}

func NewListExpr(sp token.Span, elems []Expr) *ListExpr {
	return &ListExpr{base: mk(KindListExpr, sp), Elems: elems}
}

// AssocExpr is a `key: value` association pair inside a composite literal.
type AssocExpr struct {
	base
	exprMarker
	Key, Value Expr
}

func NewAssocExpr(sp token.Span, key, value Expr) *AssocExpr {
	return &AssocExpr{base: mk(KindAssocExpr, sp), Key: key, Value: value}
}

// FieldAccessExpr is `obj.field`.
type FieldAccessExpr struct {
	base
	exprMarker
	Object Expr
	Field  string
}

func NewFieldAccessExpr(sp token.Span, object Expr, field string) *FieldAccessExpr {
	return &FieldAccessExpr{base: mk(KindFieldAccessExpr, sp), Object: object, Field: field}
}

// IndexExpr is `arr[index]`.
type IndexExpr struct {
	base
	exprMarker
	Object, Index Expr
}

func NewIndexExpr(sp token.Span, object, index Expr) *IndexExpr {
	return &IndexExpr{base: mk(KindIndexExpr, sp), Object: object, Index: index}
}

// SliceExpr is `arr[lo:hi]`; either bound may be nil.
type SliceExpr struct {
	base
	exprMarker
	Object, Low, High Expr
}

func NewSliceExpr(sp token.Span, object, low, high Expr) *SliceExpr {
	return &SliceExpr{base: mk(KindSliceExpr, sp), Object: object, Low: low, High: high}
}

// FStringPart is one piece of an f-string: either a literal text run or
// an embedded expression.
type FStringPart struct {
	Literal string // valid when Expr == nil
	Expr    Expr   // valid when non-nil
}

// FStringExpr is an interpolated string literal: a sequence of
// literal-or-expression parts, folded at lowering time into
// `string + item + ...` (spec.md §4.4.3).
type FStringExpr struct {
	base
	exprMarker
	Parts []FStringPart
}

func NewFStringExpr(sp token.Span, parts []FStringPart) *FStringExpr {
	return &FStringExpr{base: mk(KindFStringExpr, sp), Parts: parts}
}

// SequenceExpr is a comma-sequenced group of expressions evaluated for
// side effect, yielding the value of the last one (the "sequence-point"
// expression of spec.md §3).
type SequenceExpr struct {
	base
	exprMarker
	Items []Expr
}

func NewSequenceExpr(sp token.Span, items []Expr) *SequenceExpr {
	return &SequenceExpr{base: mk(KindSequenceExpr, sp), Items: items}
}

// StmtExpr wraps a Stmt so it can appear in expression position
// ("statement-as-expression" in spec.md §3).
type StmtExpr struct {
	base
	exprMarker
	Body Stmt
}

func NewStmtExpr(sp token.Span, body Stmt) *StmtExpr {
	return &StmtExpr{base: mk(KindStmtExpr, sp), Body: body}
}

// TypeExprNode wraps a TypeNode so it can appear in expression position,
// e.g. as the operand of `typeof`/`sizeof` or as a first-class value
// passed to a templated call ("type-as-expression" in spec.md §3).
type TypeExprNode struct {
	base
	exprMarker
	Type TypeNode
}

func NewTypeExprNode(sp token.Span, t TypeNode) *TypeExprNode {
	return &TypeExprNode{base: mk(KindTypeExpr, sp), Type: t}
}

// RangeExpr is `start..end`, used in foreach ranges and set/array slicing.
type RangeExpr struct {
	base
	exprMarker
	Start, End Expr
}

func NewRangeExpr(sp token.Span, start, end Expr) *RangeExpr {
	return &RangeExpr{base: mk(KindRangeExpr, sp), Start: start, End: end}
}

// LambdaExpr is an inline function literal with an explicit capture list,
// distinct from a named FunctionDef.
type LambdaExpr struct {
	base
	exprMarker
	Params   []*ParamDecl
	RetType  TypeNode
	Captures []string
	Body     *BlockStmt
}

func NewLambdaExpr(sp token.Span, params []*ParamDecl, ret TypeNode, captures []string, body *BlockStmt) *LambdaExpr {
	return &LambdaExpr{base: mk(KindLambdaExpr, sp), Params: params, RetType: ret, Captures: captures, Body: body}
}
