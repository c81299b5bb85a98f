package ast

import "github.com/nitrate-lang/nitratec/internal/token"

// TypedefDecl is `type Name = Underlying;`.
type TypedefDecl struct {
	base
	declMarker
	Name       string
	Underlying TypeNode
	Vis        Visibility
}

func NewTypedefDecl(sp token.Span, name string, underlying TypeNode, vis Visibility) *TypedefDecl {
	return &TypedefDecl{base: mk(KindTypedefDecl, sp), Name: name, Underlying: underlying, Vis: vis}
}

// VarDecl is a mutable `var name: T = init;` binding.
type VarDecl struct {
	base
	declMarker
	Name string
	Type TypeNode
	Init Expr
	Vis  Visibility
}

func NewVarDecl(sp token.Span, name string, t TypeNode, init Expr, vis Visibility) *VarDecl {
	return &VarDecl{base: mk(KindVarDecl, sp), Name: name, Type: t, Init: init, Vis: vis}
}

// LetDecl is a single-assignment `let name: T = init;` binding.
type LetDecl struct {
	base
	declMarker
	Name string
	Type TypeNode
	Init Expr
	Vis  Visibility
}

func NewLetDecl(sp token.Span, name string, t TypeNode, init Expr, vis Visibility) *LetDecl {
	return &LetDecl{base: mk(KindLetDecl, sp), Name: name, Type: t, Init: init, Vis: vis}
}

// ConstDecl is a compile-time-constant `const name: T = init;` binding.
type ConstDecl struct {
	base
	declMarker
	Name string
	Type TypeNode
	Init Expr
	Vis  Visibility
}

func NewConstDecl(sp token.Span, name string, t TypeNode, init Expr, vis Visibility) *ConstDecl {
	return &ConstDecl{base: mk(KindConstDecl, sp), Name: name, Type: t, Init: init, Vis: vis}
}

// SubsystemDecl is `subsystem Name with [dep, ...] { ... }`: a named
// namespace with an explicit dependency set, contributing to the
// ns_prefix the lowerer threads through nested declarations (spec.md
// §4.4.1).
type SubsystemDecl struct {
	base
	declMarker
	Name    string
	Depends []string
	Body    []Decl
	Vis     Visibility
}

func NewSubsystemDecl(sp token.Span, name string, depends []string, body []Decl, vis Visibility) *SubsystemDecl {
	return &SubsystemDecl{base: mk(KindSubsystemDecl, sp), Name: name, Depends: depends, Body: body, Vis: vis}
}

// ExportDecl is `export "abi_name" decl` or a bare `export decl` (empty
// ABIName):
// it binds an explicit external-linkage ABI name to a wrapped
// declaration, consumed by the mangler's weak-C-ABI path (spec.md §7).
type ExportDecl struct {
	base
	declMarker
	ABIName string
	Inner   Decl
}

func NewExportDecl(sp token.Span, abiName string, inner Decl) *ExportDecl {
	return &ExportDecl{base: mk(KindExportDecl, sp), ABIName: abiName, Inner: inner}
}

// AttrSet is a `with [attr, attr(arg), ...]` attribute list attached to a
// composite type or field declaration.
type AttrSet struct {
	base
	declMarker
	Attrs []Attr
}

// Attr is a single attribute entry: a name plus optional argument list.
type Attr struct {
	Name string
	Args []Expr
}

func NewAttrSet(sp token.Span, attrs []Attr) *AttrSet {
	return &AttrSet{base: mk(KindAttrSet, sp), Attrs: attrs}
}
