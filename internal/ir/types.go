package ir

import "github.com/nitrate-lang/nitratec/internal/token"

// VoidType is a stateless kind (spec.md §4.4.4): every call to
// (*Module).VoidType returns the same canonical pointer.
type VoidType struct{ base }

// PrimitiveType is stateless, keyed by its Prim width — two requests
// for the same width canonicalize to one pointer.
type PrimitiveType struct {
	base
	Prim PrimKind
}

// PointerType is allocated fresh on every call (not stateless): distinct
// *T and *U pointer types are structurally different but the pointer
// node itself carries no canonicalizable identity beyond its Elem.
type PointerType struct {
	base
	Elem Node
}

// TypeField is one ordered field of a StructType/UnionType.
type TypeField struct {
	Name string
	Type Node
}

type StructType struct {
	base
	Fields []TypeField
}

type UnionType struct {
	base
	Fields []TypeField
}

type ArrayType struct {
	base
	Elem  Node
	Count int
}

type FunctionType struct {
	base
	Params   []Node
	Variadic bool
	Return   Node
}

// OpaqueType names a type not yet (or never to be) resolved to a
// structural definition — used for imported/foreign declarations.
type OpaqueType struct {
	base
	Name string
}

func newVoidType(sp token.Span) *VoidType { return &VoidType{mk(KindVoidType, sp)} }

func newPrimitiveType(sp token.Span, p PrimKind) *PrimitiveType {
	return &PrimitiveType{mk(KindPrimitiveType, sp), p}
}

func (m *Module) NewPointerType(sp token.Span, elem Node) *PointerType {
	n := &PointerType{mk(KindPointerType, sp), elem}
	m.pointerTypes = append(m.pointerTypes, n)
	return n
}

func (m *Module) NewStructType(sp token.Span, fields []TypeField) *StructType {
	n := &StructType{mk(KindStructType, sp), fields}
	m.structTypes = append(m.structTypes, n)
	return n
}

func (m *Module) NewUnionType(sp token.Span, fields []TypeField) *UnionType {
	n := &UnionType{mk(KindUnionType, sp), fields}
	m.unionTypes = append(m.unionTypes, n)
	return n
}

func (m *Module) NewArrayType(sp token.Span, elem Node, count int) *ArrayType {
	n := &ArrayType{mk(KindArrayType, sp), elem, count}
	m.arrayTypes = append(m.arrayTypes, n)
	return n
}

func (m *Module) NewFunctionType(sp token.Span, params []Node, variadic bool, ret Node) *FunctionType {
	n := &FunctionType{mk(KindFunctionType, sp), params, variadic, ret}
	m.functionTypes = append(m.functionTypes, n)
	return n
}

func (m *Module) NewOpaqueType(sp token.Span, name string) *OpaqueType {
	n := &OpaqueType{mk(KindOpaqueType, sp), name}
	m.opaqueTypes = append(m.opaqueTypes, n)
	return n
}
