package ir

import "github.com/nitrate-lang/nitratec/internal/token"

// While is `while cond body` (spec.md §3; `IRGraph.hh`'s `While`). Body
// is the loop's lowered block, usually a *Block.
type While struct {
	base
	Cond Node
	Body Node
}

// For is the C-style `for (init; cond; step) body` (spec.md §3;
// `IRGraph.hh`'s `For`). Init and Step may be nil.
type For struct {
	base
	Init Node
	Cond Node
	Step Node
	Body Node
}

// Form is the bounded parallel-iteration construct `form(maxjobs; idx,
// val : expr) body` (spec.md §3, source token note on `form`;
// `IRGraph.hh`'s `Form`). MaxJobs is nil for an unbounded form; IdxIdent
// is "" when the source form binds no index variable.
type Form struct {
	base
	IdxIdent string
	ValIdent string
	MaxJobs  Node
	Iterable Node
	Body     Node
}

// Case is one `value: body` arm of a Switch (spec.md §3; `IRGraph.hh`'s
// `Case`).
type Case struct {
	base
	Cond Node
	Body Node
}

// Switch carries its scrutinee once, alongside an ordered list of Case
// arms and an optional default body (spec.md §3: "switch (scrutinee +
// ordered cases + optional default)"; `IRGraph.hh`'s `Switch`). Default
// is nil when the source switch has no default arm.
type Switch struct {
	base
	Cond    Node
	Cases   []*Case
	Default Node
}

// Asm is inline assembly passed through to the backend verbatim; this
// lowering pass does not parse its contents (spec.md §4.2, §3's
// "inline-asm"; `IRGraph.hh`'s `Asm`, itself an unimplemented stub in
// the original).
type Asm struct {
	base
	Source string
}

func (m *Module) NewWhile(sp token.Span, cond, body Node) *While {
	return &While{mk(KindWhile, sp), cond, body}
}

func (m *Module) NewFor(sp token.Span, init, cond, step, body Node) *For {
	return &For{mk(KindFor, sp), init, cond, step, body}
}

func (m *Module) NewForm(sp token.Span, idxIdent, valIdent string, maxJobs, iterable, body Node) *Form {
	return &Form{mk(KindForm, sp), idxIdent, valIdent, maxJobs, iterable, body}
}

func (m *Module) NewCase(sp token.Span, cond, body Node) *Case {
	return &Case{mk(KindCase, sp), cond, body}
}

func (m *Module) NewSwitch(sp token.Span, cond Node, cases []*Case, def Node) *Switch {
	return &Switch{mk(KindSwitch, sp), cond, cases, def}
}

func (m *Module) NewAsm(sp token.Span, source string) *Asm {
	return &Asm{mk(KindAsm, sp), source}
}
