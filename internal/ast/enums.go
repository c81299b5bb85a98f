package ast

import "github.com/nitrate-lang/nitratec/internal/token"

// EnumItemDecl is one member of an EnumDecl. Value is nil when the item's
// value is implicit (propagated from the previous item + 1 at lowering
// time, per spec.md §4.4.3).
type EnumItemDecl struct {
	base
	declMarker
	Name  string
	Value Expr
}

func NewEnumItemDecl(sp token.Span, name string, value Expr) *EnumItemDecl {
	return &EnumItemDecl{base: mk(KindEnumItemDecl, sp), Name: name, Value: value}
}

// EnumDecl is `enum Name: UnderlyingType { items }`. UnderlyingType is
// nil when not explicitly given, defaulting at lowering time.
type EnumDecl struct {
	base
	declMarker
	Name           string
	UnderlyingType TypeNode
	Items          []*EnumItemDecl
	Vis            Visibility
}

func NewEnumDecl(sp token.Span, name string, underlying TypeNode, items []*EnumItemDecl, vis Visibility) *EnumDecl {
	return &EnumDecl{base: mk(KindEnumDecl, sp), Name: name, UnderlyingType: underlying, Items: items, Vis: vis}
}
