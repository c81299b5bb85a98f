package ast

import "github.com/nitrate-lang/nitratec/internal/token"

// BlockStmt is a braced sequence of statements, optionally annotated
// `safe { ... }` / `unsafe { ... }` (spec.md §3).
type BlockStmt struct {
	base
	stmtMarker
	Safety SafetyMode
	Stmts  []Stmt
}

func NewBlockStmt(sp token.Span, safety SafetyMode, stmts []Stmt) *BlockStmt {
	return &BlockStmt{base: mk(KindBlockStmt, sp), Safety: safety, Stmts: stmts}
}

// IfStmt is `if cond then [else else]`; Else may be nil.
type IfStmt struct {
	base
	stmtMarker
	Cond       Expr
	Then, Else Stmt
}

func NewIfStmt(sp token.Span, cond Expr, then, els Stmt) *IfStmt {
	return &IfStmt{base: mk(KindIfStmt, sp), Cond: cond, Then: then, Else: els}
}

// WhileStmt is `while cond body`.
type WhileStmt struct {
	base
	stmtMarker
	Cond Expr
	Body Stmt
}

func NewWhileStmt(sp token.Span, cond Expr, body Stmt) *WhileStmt {
	return &WhileStmt{base: mk(KindWhileStmt, sp), Cond: cond, Body: body}
}

// ForStmt is the C-style `for (init; cond; step) body`; any clause may be nil.
type ForStmt struct {
	base
	stmtMarker
	Init Stmt
	Cond Expr
	Step Stmt
	Body Stmt
}

func NewForStmt(sp token.Span, init Stmt, cond Expr, step Stmt, body Stmt) *ForStmt {
	return &ForStmt{base: mk(KindForStmt, sp), Init: init, Cond: cond, Step: step, Body: body}
}

// ForeachStmt is `foreach (name[, index] in iterable) body`.
type ForeachStmt struct {
	base
	stmtMarker
	Name     string
	HasIndex bool
	IndexVar string
	Iterable Expr
	Body     Stmt
}

func NewForeachStmt(sp token.Span, name string, hasIndex bool, indexVar string, iterable Expr, body Stmt) *ForeachStmt {
	return &ForeachStmt{base: mk(KindForeachStmt, sp), Name: name, HasIndex: hasIndex, IndexVar: indexVar, Iterable: iterable, Body: body}
}

// ParallelFormStmt is the `form` parallel-iteration statement: each
// iteration of Iterable runs in an independent lane bound to Name.
type ParallelFormStmt struct {
	base
	stmtMarker
	Name     string
	Iterable Expr
	Body     Stmt
}

func NewParallelFormStmt(sp token.Span, name string, iterable Expr, body Stmt) *ParallelFormStmt {
	return &ParallelFormStmt{base: mk(KindParallelFormStmt, sp), Name: name, Iterable: iterable, Body: body}
}

// BreakStmt is `break`.
type BreakStmt struct {
	base
	stmtMarker
}

func NewBreakStmt(sp token.Span) *BreakStmt { return &BreakStmt{base: mk(KindBreakStmt, sp)} }

// ContinueStmt is `continue`.
type ContinueStmt struct {
	base
	stmtMarker
}

func NewContinueStmt(sp token.Span) *ContinueStmt {
	return &ContinueStmt{base: mk(KindContinueStmt, sp)}
}

// ReturnStmt is `return [expr]`; Value is nil for a bare return.
type ReturnStmt struct {
	base
	stmtMarker
	Value Expr
}

func NewReturnStmt(sp token.Span, value Expr) *ReturnStmt {
	return &ReturnStmt{base: mk(KindReturnStmt, sp), Value: value}
}

// RetIfStmt is `retif cond, value` — returns value when cond holds,
// falls through otherwise.
type RetIfStmt struct {
	base
	stmtMarker
	Cond  Expr
	Value Expr
}

func NewRetIfStmt(sp token.Span, cond, value Expr) *RetIfStmt {
	return &RetIfStmt{base: mk(KindRetIfStmt, sp), Cond: cond, Value: value}
}

// RetZeroStmt is `retz cond` — returns the zero value of the enclosing
// function's return type when cond does not hold.
type RetZeroStmt struct {
	base
	stmtMarker
	Cond Expr
}

func NewRetZeroStmt(sp token.Span, cond Expr) *RetZeroStmt {
	return &RetZeroStmt{base: mk(KindRetZeroStmt, sp), Cond: cond}
}

// RetVoidIfStmt is `retv cond` — returns void when cond holds.
type RetVoidIfStmt struct {
	base
	stmtMarker
	Cond Expr
}

func NewRetVoidIfStmt(sp token.Span, cond Expr) *RetVoidIfStmt {
	return &RetVoidIfStmt{base: mk(KindRetVoidIfStmt, sp), Cond: cond}
}

// SwitchStmt is `switch scrutinee { case ... default ... }`.
type SwitchStmt struct {
	base
	stmtMarker
	Scrutinee Expr
	Cases     []*CaseStmt
	Default   Stmt
}

func NewSwitchStmt(sp token.Span, scrutinee Expr, cases []*CaseStmt, def Stmt) *SwitchStmt {
	return &SwitchStmt{base: mk(KindSwitchStmt, sp), Scrutinee: scrutinee, Cases: cases, Default: def}
}

// CaseStmt is one `case value: body` arm of a SwitchStmt.
type CaseStmt struct {
	base
	stmtMarker
	Value Expr
	Body  Stmt
}

func NewCaseStmt(sp token.Span, value Expr, body Stmt) *CaseStmt {
	return &CaseStmt{base: mk(KindCaseStmt, sp), Value: value, Body: body}
}

// InlineAsmStmt is a raw `__asm__ { ... }` block, passed through to the
// backend verbatim; the compiler does not parse its contents.
type InlineAsmStmt struct {
	base
	stmtMarker
	Source string
}

func NewInlineAsmStmt(sp token.Span, source string) *InlineAsmStmt {
	return &InlineAsmStmt{base: mk(KindInlineAsmStmt, sp), Source: source}
}

// ExprStmt is an expression evaluated for its side effect.
type ExprStmt struct {
	base
	stmtMarker
	X Expr
}

func NewExprStmt(sp token.Span, x Expr) *ExprStmt {
	return &ExprStmt{base: mk(KindExprStmt, sp), X: x}
}

// VolatileStmt wraps a statement body whose memory effects must not be
// reordered or elided by the optimizer.
type VolatileStmt struct {
	base
	stmtMarker
	Body Stmt
}

func NewVolatileStmt(sp token.Span, body Stmt) *VolatileStmt {
	return &VolatileStmt{base: mk(KindVolatileStmt, sp), Body: body}
}
