// Package ast defines the Abstract Syntax Tree node types for the
// Language's parser (spec.md §3, §4.2).
//
// The AST is a closed sum of node kinds grouped along four axes —
// Expr, Stmt, Decl, Type — plus a handful of primitive type nodes. Every
// node is built through a small factory (NewXxx) that installs a span and
// returns a freshly allocated *Xxx (no arena is involved). Nodes
// implement Node plus one of Expr/Stmt/Decl/TypeNode; String renders the
// debug S-expression form described in spec.md §6, and Kind reports the
// closed NodeKind tag used by verify/clone/print and by the lowerer's
// type-directed dispatch.
package ast
