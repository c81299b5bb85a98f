package ast

import "github.com/nitrate-lang/nitratec/internal/token"

// PrimitiveType is a fixed-width scalar type (u1..u128, i8..i128, f16..f128;
// void is the separate VoidType). Its Kind constant (KindU8, KindI32, ...) carries the width and
// signedness; the struct itself carries nothing extra.
type PrimitiveType struct {
	base
	typeMarker
}

func NewPrimitiveType(sp token.Span, k Kind) *PrimitiveType {
	return &PrimitiveType{base: mk(k, sp)}
}

// VoidType is the `void` type used for functions with no return value.
type VoidType struct {
	base
	typeMarker
}

func NewVoidType(sp token.Span) *VoidType { return &VoidType{base: mk(KindVoidType, sp)} }

// PointerType is `*T`.
type PointerType struct {
	base
	typeMarker
	Elem TypeNode
}

func NewPointerType(sp token.Span, elem TypeNode) *PointerType {
	return &PointerType{base: mk(KindPointerType, sp), Elem: elem}
}

// ReferenceType is `&T`.
type ReferenceType struct {
	base
	typeMarker
	Elem TypeNode
}

func NewReferenceType(sp token.Span, elem TypeNode) *ReferenceType {
	return &ReferenceType{base: mk(KindReferenceType, sp), Elem: elem}
}

// OpaqueType is a named type with no visible layout, used for incomplete
// or foreign types known only by name.
type OpaqueType struct {
	base
	typeMarker
	Name string
}

func NewOpaqueType(sp token.Span, name string) *OpaqueType {
	return &OpaqueType{base: mk(KindOpaqueType, sp), Name: name}
}

// CompositeKind distinguishes the four composite-type flavors, which share
// one field-list shape but differ in layout and lowering rules (spec.md
// §4.4.3): struct keeps declared field order, region is struct-like but
// addressable as a contiguous byte range, group is reordered and padded
// for minimal size, union overlays all fields at offset 0.
type CompositeKind uint8

const (
	CompositeStruct CompositeKind = iota
	CompositeRegion
	CompositeGroup
	CompositeUnion
)

func (c CompositeKind) String() string {
	switch c {
	case CompositeStruct:
		return "struct"
	case CompositeRegion:
		return "region"
	case CompositeGroup:
		return "group"
	case CompositeUnion:
		return "union"
	default:
		return "struct"
	}
}

// CompositeTypeField is one field slot within a composite *type* node
// (as distinct from CompositeFieldDecl, which carries defaults/attrs at
// the declaration site).
type CompositeTypeField struct {
	Name string
	Type TypeNode
}

// StructType, RegionType, GroupType and UnionType share this shape; each
// gets its own Kind/Go-type pairing so the lowerer's type switch can
// dispatch on composite flavor without an extra field check.
type StructType struct {
	base
	typeMarker
	Fields []CompositeTypeField
}

func NewStructType(sp token.Span, fields []CompositeTypeField) *StructType {
	return &StructType{base: mk(KindStructType, sp), Fields: fields}
}

type RegionType struct {
	base
	typeMarker
	Fields []CompositeTypeField
}

func NewRegionType(sp token.Span, fields []CompositeTypeField) *RegionType {
	return &RegionType{base: mk(KindRegionType, sp), Fields: fields}
}

// GroupType is `group { ... }`: the lowerer reorders Fields by descending
// bit-size and inserts explicit padding members (spec.md §4.4.3).
type GroupType struct {
	base
	typeMarker
	Fields []CompositeTypeField
}

func NewGroupType(sp token.Span, fields []CompositeTypeField) *GroupType {
	return &GroupType{base: mk(KindGroupType, sp), Fields: fields}
}

type UnionType struct {
	base
	typeMarker
	Fields []CompositeTypeField
}

func NewUnionType(sp token.Span, fields []CompositeTypeField) *UnionType {
	return &UnionType{base: mk(KindUnionType, sp), Fields: fields}
}

// TupleType is an anonymous fixed-arity product type `(T, U, V)`.
type TupleType struct {
	base
	typeMarker
	Elems []TypeNode
}

func NewTupleType(sp token.Span, elems []TypeNode) *TupleType {
	return &TupleType{base: mk(KindTupleType, sp), Elems: elems}
}

// ArrayType is `[T; N]` (N == nil means an unsized/slice-like array).
type ArrayType struct {
	base
	typeMarker
	Elem TypeNode
	Size Expr
}

func NewArrayType(sp token.Span, elem TypeNode, size Expr) *ArrayType {
	return &ArrayType{base: mk(KindArrayType, sp), Elem: elem, Size: size}
}

// FunctionType is a first-class function signature, used for function
// pointers and as the type of a FunctionDecl/FunctionDef.
type FunctionType struct {
	base
	typeMarker
	Params       []TypeNode
	Variadic     bool
	Return       TypeNode
	Purity       Purity
	ExceptSafe   bool
	NoReturn     bool
	Foreign      bool
	ForeignABI   string
}

func NewFunctionType(sp token.Span, params []TypeNode, variadic bool, ret TypeNode) *FunctionType {
	return &FunctionType{base: mk(KindFunctionType, sp), Params: params, Variadic: variadic, Return: ret}
}

// UnresolvedType names a type by identifier that the parser could not
// yet classify as primitive/composite/alias; semantic lowering resolves it.
type UnresolvedType struct {
	base
	typeMarker
	Name string
}

func NewUnresolvedType(sp token.Span, name string) *UnresolvedType {
	return &UnresolvedType{base: mk(KindUnresolvedType, sp), Name: name}
}

// InferredType is the placeholder written `auto` or left implicit for
// `let`/`var` declarations whose type is inferred from the initializer.
type InferredType struct {
	base
	typeMarker
}

func NewInferredType(sp token.Span) *InferredType {
	return &InferredType{base: mk(KindInferredType, sp)}
}

// TemplatedType is a named type applied to explicit template arguments,
// e.g. `Vec<T>`.
type TemplatedType struct {
	base
	typeMarker
	Name     string
	TypeArgs []TypeNode
}

func NewTemplatedType(sp token.Span, name string, typeArgs []TypeNode) *TemplatedType {
	return &TemplatedType{base: mk(KindTemplatedType, sp), Name: name, TypeArgs: typeArgs}
}
