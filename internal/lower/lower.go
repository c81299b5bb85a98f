// Package lower implements the AST->IR lowering pass spec.md §4.4
// describes: a large type-directed dispatch carrying the mutable state
// of §4.4.1 (ns_prefix, abi_mode, return_type, local_scope stack,
// composite_expanse stack, inside_function) and applying the key
// lowerings of §4.4.3.
//
// Grounded on the teacher's internal/semantic package for the overall
// shape of a stateful tree-walking pass over the AST (a struct carrying
// mutable analysis state, scope-stack push/pop around blocks, an
// AddError-style diagnostic sink) — generalized here from a type-
// checking pass (which only ever *reads* the AST) into a lowering pass
// (which *produces* a second, IR, tree).
package lower

import (
	"fmt"
	"strings"

	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/diag"
	"github.com/nitrate-lang/nitratec/internal/ir"
)

// Node is a convenience alias used throughout this package for the IR
// node type lowering produces.
type Node = ir.Node

// Lowerer carries the mutable state of spec.md §4.4.1 across one
// compilation unit's AST->IR pass.
type Lowerer struct {
	Module *ir.Module
	Sink   *diag.Sink

	nsPrefix         []string // current fully-qualified scope path
	abiMode          ir.ABI   // set by the nearest enclosing export declaration
	returnType       Node     // current function's return type; nil outside a function
	localScope       []*Scope // one frame per lexical block
	compositeExpanse []string // composite names, for field-context diagnostics
	insideFunction   bool     // whether new Local/Global nodes are locals or globals

	globals map[string]Node // name -> lowered top-level declaration, for resolve()
}

// New creates a Lowerer that appends its IR output to m and reports
// diagnostics to sink.
func New(m *ir.Module, sink *diag.Sink) *Lowerer {
	return &Lowerer{Module: m, Sink: sink, globals: make(map[string]Node)}
}

// SetDefaultABI overrides the ABI new top-level declarations get when
// not wrapped in an explicit export clause. A driver wires this to its
// configuration's default_abi (internal/config); the zero-value
// Lowerer otherwise leaves every declaration at ir.ABIDefault.
func (l *Lowerer) SetDefaultABI(a ir.ABI) { l.abiMode = a }

// qualify prefixes name with the current ns_prefix, "::"-joined, per
// spec.md §4.4.1.
func (l *Lowerer) qualify(name string) string {
	if len(l.nsPrefix) == 0 {
		return name
	}
	return strings.Join(l.nsPrefix, "::") + "::" + name
}

func (l *Lowerer) pushNamespace(name string) { l.nsPrefix = append(l.nsPrefix, name) }
func (l *Lowerer) popNamespace()              { l.nsPrefix = l.nsPrefix[:len(l.nsPrefix)-1] }

func (l *Lowerer) pushComposite(name string) {
	l.compositeExpanse = append(l.compositeExpanse, name)
}
func (l *Lowerer) popComposite() {
	l.compositeExpanse = l.compositeExpanse[:len(l.compositeExpanse)-1]
}

// inComposite names the innermost composite_expanse entry, for
// attributing field-context diagnostics, or "" outside any composite.
func (l *Lowerer) inComposite() string {
	if len(l.compositeExpanse) == 0 {
		return ""
	}
	return l.compositeExpanse[len(l.compositeExpanse)-1]
}

// LowerProgram is the lowering pass's entry point: it walks prog's root
// block, appending every produced top-level declaration (after any
// Extern wrapping) to l.Module in order, and returns the module.
//
// Per spec.md §7's propagation policy, a bad top-level item is
// abandoned (via abandonItem's recover) and lowering resumes with the
// next one — a single malformed declaration never aborts the whole
// compilation unit.
func (l *Lowerer) LowerProgram(prog *ast.Program) *ir.Module {
	l.pushScope()
	defer l.popScope()
	for _, stmt := range prog.Root.Stmts {
		l.lowerTopLevel(stmt)
	}
	return l.Module
}

type abandonedItem struct{ reason string }

// abandonItem unwinds the current top-level item on a BadTree-class
// failure (spec.md §4.4.9: "Missing child node -> diagnostic BadTree"):
// it panics with a sentinel that lowerTopLevel recovers, reports, and
// moves on from.
func (l *Lowerer) abandonItem(sp ast.Node, format string, args ...any) {
	l.abandonItemWithCode(sp, "BadTree", format, args...)
}

// abandonUnimplemented is abandonItem's Unimplemented-class counterpart
// (spec.md §4.4.9), for constructs this pass recognizes but deliberately
// does not lower (such as template types; foreach is lowered), as
// opposed to a structurally malformed tree.
func (l *Lowerer) abandonUnimplemented(sp ast.Node, format string, args ...any) {
	l.abandonItemWithCode(sp, "Unimplemented", format, args...)
}

func (l *Lowerer) abandonItemWithCode(sp ast.Node, code, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.Sink.Report(diag.Error, sp.Span(), code, "%s", msg)
	panic(abandonedItem{reason: msg})
}

func (l *Lowerer) lowerTopLevel(stmt ast.Stmt) {
	depth := len(l.localScope)
	inside, ret, abi := l.insideFunction, l.returnType, l.abiMode
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(abandonedItem); ok {
				l.localScope = l.localScope[:depth]
				l.insideFunction, l.returnType, l.abiMode = inside, ret, abi
				return
			}
			panic(r)
		}
	}()
	d, ok := asDecl(stmt)
	if !ok {
		l.abandonItem(stmt, "expected a declaration at top level, got %T", stmt)
		return
	}
	for _, n := range l.lowerDecl(d) {
		l.Module.AddGlobal(n)
	}
}

// asDecl recovers the ast.Decl a parser.declStmt wraps, via the
// exported Decl() accessor every such wrapper implements — this package
// never imports internal/parser directly, since the only thing it needs
// from a decl-in-statement-position node is this one structural method.
func asDecl(s ast.Stmt) (ast.Decl, bool) {
	if dw, ok := s.(interface{ Decl() ast.Decl }); ok {
		return dw.Decl(), true
	}
	return nil, false
}
