package ast

import "github.com/nitrate-lang/nitratec/internal/token"

// CompositeFieldDecl is one field of a composite declaration: unlike
// CompositeTypeField (used inside a bare composite *type* expression),
// this carries an optional default initializer and attribute set, since
// it appears at a declaration site rather than in a type position.
type CompositeFieldDecl struct {
	base
	declMarker
	Name    string
	Type    TypeNode
	Default Expr
	Attrs   *AttrSet
	Vis     Visibility
}

func NewCompositeFieldDecl(sp token.Span, name string, t TypeNode, def Expr, attrs *AttrSet, vis Visibility) *CompositeFieldDecl {
	return &CompositeFieldDecl{base: mk(KindCompositeFieldDecl, sp), Name: name, Type: t, Default: def, Attrs: attrs, Vis: vis}
}

// compositeDecl is the shape shared by struct/region/group/union
// declarations: a field list plus instance and static methods. Each
// concrete type below embeds it so the Kind constant still distinguishes
// composite flavor for the lowerer's type switch (spec.md §4.4.3).
type compositeDecl struct {
	Name          string
	Fields        []*CompositeFieldDecl
	Methods       []*FunctionDef
	StaticMethods []*FunctionDef
	Attrs         *AttrSet
	Vis           Visibility
}

// StructDecl declares a named struct type: fields keep declared order
// and layout (spec.md §4.4.3).
type StructDecl struct {
	base
	declMarker
	compositeDecl
}

func NewStructDecl(sp token.Span, name string, fields []*CompositeFieldDecl, methods, staticMethods []*FunctionDef, attrs *AttrSet, vis Visibility) *StructDecl {
	return &StructDecl{
		base: mk(KindStructDecl, sp),
		compositeDecl: compositeDecl{
			Name: name, Fields: fields, Methods: methods, StaticMethods: staticMethods, Attrs: attrs, Vis: vis,
		},
	}
}

// RegionDecl declares a named region type: struct-like layout but
// addressable as one contiguous byte range.
type RegionDecl struct {
	base
	declMarker
	compositeDecl
}

func NewRegionDecl(sp token.Span, name string, fields []*CompositeFieldDecl, methods, staticMethods []*FunctionDef, attrs *AttrSet, vis Visibility) *RegionDecl {
	return &RegionDecl{
		base: mk(KindRegionDecl, sp),
		compositeDecl: compositeDecl{
			Name: name, Fields: fields, Methods: methods, StaticMethods: staticMethods, Attrs: attrs, Vis: vis,
		},
	}
}

// GroupDecl declares a named group type: the lowerer reorders and pads
// its fields for minimal size (spec.md §4.4.3).
type GroupDecl struct {
	base
	declMarker
	compositeDecl
}

func NewGroupDecl(sp token.Span, name string, fields []*CompositeFieldDecl, methods, staticMethods []*FunctionDef, attrs *AttrSet, vis Visibility) *GroupDecl {
	return &GroupDecl{
		base: mk(KindGroupDecl, sp),
		compositeDecl: compositeDecl{
			Name: name, Fields: fields, Methods: methods, StaticMethods: staticMethods, Attrs: attrs, Vis: vis,
		},
	}
}

// UnionDecl declares a named union type: all fields overlay offset 0.
type UnionDecl struct {
	base
	declMarker
	compositeDecl
}

func NewUnionDecl(sp token.Span, name string, fields []*CompositeFieldDecl, methods, staticMethods []*FunctionDef, attrs *AttrSet, vis Visibility) *UnionDecl {
	return &UnionDecl{
		base: mk(KindUnionDecl, sp),
		compositeDecl: compositeDecl{
			Name: name, Fields: fields, Methods: methods, StaticMethods: staticMethods, Attrs: attrs, Vis: vis,
		},
	}
}
