package ir

import "github.com/nitrate-lang/nitratec/internal/token"

// Local is a block-scoped variable created while lowering a function
// body or a foreach loop. A module-scope var/let/const lowers to a
// Global instead (a top-level `const` becomes a Global with ReadOnly set
// and ABI=ABIInternal).
type Local struct {
	base
	Name     string
	Type     Node
	Value    Node // nil for an uninitialized local
	ReadOnly bool
	ABI      ABI
}

// Global is a module-scoped variable distinguished from a Local by not
// living in any function's local_scope stack (spec.md §4.4.1).
type Global struct {
	base
	Name     string
	Type     Node
	Value    Node
	ReadOnly bool
	ABI      ABI
}

type Param struct {
	Name string
	Type Node
}

type Fn struct {
	base
	Name   string
	Params []Param
	Return Node
	Body   Node // *Block, or nil for a declaration-only (extern) function
	ABI    ABI
}

// Extern wraps a lowered declaration with an explicit ABI tag (spec.md
// §4.4.2: "An export declaration wraps each lowered child in an Extern
// with the chosen ABI name").
type Extern struct {
	base
	ABI  ABI
	Decl Node
}

// Ret is a return statement. The lowering pass never leaves Value nil: a
// bare `return` (and `retv`) carries the void type node as its value
// (spec.md §4.4.3's injected void value).
type Ret struct {
	base
	Value Node
}

// Brk, Cont, and Ignore are stateless (spec.md §4.4.4): each carries no
// data, so every call to (*Module).Brk/Cont/Ignore returns one shared
// canonical pointer.
type Brk struct{ base }
type Cont struct{ base }

// Ignore is a stateless no-op node. The lowering pass does not emit it;
// a bare import directive lowers to no IR node at all.
type Ignore struct{ base }

// Module is the IR root: the per-compilation-unit container of
// top-level declarations, the per-kind type node lists, and the
// hash-cons table. It is the IR half of spec.md §5's "compilation
// context" and is never shared across threads; it holds no intern pool
// or diagnostic engine of its own.
type Module struct {
	Name    string
	Globals []Node // top-level Local/Global/Fn/Extern, in declaration order

	pointerTypes  []*PointerType
	structTypes   []*StructType
	unionTypes    []*UnionType
	arrayTypes    []*ArrayType
	functionTypes []*FunctionType
	opaqueTypes   []*OpaqueType

	canon map[canonKey]Node
}

// canonKey identifies a stateless node's hash-cons bucket: its Kind plus
// whatever scalar key distinguishes it within that Kind (only
// PrimitiveType needs a non-zero sub-key; Void/Brk/Cont/Ignore have
// exactly one instance each).
type canonKey struct {
	kind Kind
	sub  PrimKind
}

// NewModule creates an empty Module.
func NewModule(name string) *Module {
	return &Module{Name: name, canon: make(map[canonKey]Node)}
}

// canonical is the shared implementation of the create<T>(...) contract
// for stateless kinds (spec.md §4.4.4): the first call for a given key
// allocates and remembers the node; every later call with the same key
// returns that same pointer.
func canonical[T Node](m *Module, key canonKey, build func() T) T {
	if n, ok := m.canon[key]; ok {
		return n.(T)
	}
	n := build()
	m.canon[key] = n
	return n
}

// VoidType returns the module's single canonical void type.
func (m *Module) VoidType(sp token.Span) *VoidType {
	return canonical(m, canonKey{kind: KindVoidType}, func() *VoidType { return newVoidType(sp) })
}

// PrimitiveType returns the module's single canonical instance for p.
func (m *Module) PrimitiveType(sp token.Span, p PrimKind) *PrimitiveType {
	return canonical(m, canonKey{kind: KindPrimitiveType, sub: p}, func() *PrimitiveType {
		return newPrimitiveType(sp, p)
	})
}

// Brk returns the module's single canonical break node.
func (m *Module) Brk(sp token.Span) *Brk {
	return canonical(m, canonKey{kind: KindBrk}, func() *Brk { return &Brk{mk(KindBrk, sp)} })
}

// Cont returns the module's single canonical continue node.
func (m *Module) Cont(sp token.Span) *Cont {
	return canonical(m, canonKey{kind: KindCont}, func() *Cont { return &Cont{mk(KindCont, sp)} })
}

// Ignore returns the module's single canonical no-op node.
func (m *Module) Ignore(sp token.Span) *Ignore {
	return canonical(m, canonKey{kind: KindIgnore}, func() *Ignore { return &Ignore{mk(KindIgnore, sp)} })
}

func (m *Module) NewLocal(sp token.Span, name string, t, v Node, readonly bool, abi ABI) *Local {
	n := &Local{mk(KindLocal, sp), name, t, v, readonly, abi}
	return n
}

func (m *Module) NewGlobal(sp token.Span, name string, t, v Node, readonly bool, abi ABI) *Global {
	return &Global{mk(KindGlobal, sp), name, t, v, readonly, abi}
}

func (m *Module) NewFn(sp token.Span, name string, params []Param, ret, body Node, abi ABI) *Fn {
	return &Fn{mk(KindFn, sp), name, params, ret, body, abi}
}

func (m *Module) NewExtern(sp token.Span, abi ABI, decl Node) *Extern {
	return &Extern{mk(KindExtern, sp), abi, decl}
}

// AddGlobal appends a top-level declaration (Local, Global, Fn, or
// Extern) to the module's scope, in lowering order — the lowerer calls
// this once per declaration it produces, after any Extern wrapping, so a
// declaration is never recorded twice under two names.
func (m *Module) AddGlobal(n Node) { m.Globals = append(m.Globals, n) }

func (m *Module) NewRet(sp token.Span, v Node) *Ret {
	return &Ret{mk(KindRet, sp), v}
}
