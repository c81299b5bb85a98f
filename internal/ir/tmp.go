package ir

import "github.com/nitrate-lang/nitratec/internal/token"

// TmpKind distinguishes the deferred-resolution shapes spec.md's Design
// Notes §9 Open Question calls out: the source's Tmp node kinds are
// only partially resolved by a later pass, and this implementation
// explicitly preserves rather than silently drops them.
type TmpKind uint8

const (
	TmpNull TmpKind = iota
	TmpUndef
	TmpNamedType
	TmpPendingNamedArgs
)

// Tmp carries deferred information pending a later resolution pass:
// null/undef literals (whose concrete type is not yet known), named
// types not yet bound to a declaration, and calls pending named-argument
// expansion. The traversal engine visits a Tmp as a leaf; no pass may
// silently discard one (spec.md Design Notes §9).
//
// This is the one IR node kind a lowering pass is allowed to produce
// without fully resolving: unlike a BadTree-class malformed tree or an
// Unimplemented-class unsupported construct, a Tmp is a deliberately
// incomplete but well-formed result, left for a later pass (name
// resolution, type inference) to replace. Nothing downstream may treat
// an unresolved Tmp still present at code-emission time as anything
// other than a pass ordering bug.
type Tmp struct {
	base
	TmpKind TmpKind
	Name    string // named-type name, or the callee name for TmpPendingNamedArgs
	Args    []Node // pending named args, (name-as-Tmp, value) pairs flattened
}

func (m *Module) NewTmp(sp token.Span, kind TmpKind, name string, args []Node) *Tmp {
	return &Tmp{mk(KindTmp, sp), kind, name, args}
}
