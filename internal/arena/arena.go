// Package arena implements the bump-allocated node storage described in
// spec.md §3/§4.1: construction never fails in steady state, individual
// frees are a no-op, and the whole arena is dropped at once when a
// compilation context is released.
//
// Go's garbage collector means there's no bytes-and-alignment arena to
// hand-roll the way a systems-language rewrite would; what's preserved is
// the *shape* — a single growable pool per arena, handles that stay valid
// for the arena's lifetime, and a Reset that drops everything at once
// rather than node-by-node. Each Arena hands out *T pointers (stored in a
// slice of pointers, so growth never invalidates a previously-returned
// handle) instead of placement-new'd bytes.
package arena

// Arena is a typed bump allocator for AST or IR node values of type T.
type Arena[T any] struct {
	nodes []*T
}

// New creates an empty Arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Alloc places v in the arena and returns a non-owning handle to it. Alloc
// never fails; callers that would otherwise need to handle an allocation
// error can treat it as infallible, matching spec.md's "OOM is fatal"
// contract for the systems-language original.
func (a *Arena[T]) Alloc(v T) *T {
	p := new(T)
	*p = v
	a.nodes = append(a.nodes, p)
	return p
}

// Len reports how many nodes have been allocated in this arena.
func (a *Arena[T]) Len() int { return len(a.nodes) }

// All iterates every node ever allocated in this arena, in allocation
// order. Used by module-level sweeps (e.g. verifying every node in an
// AST arena) that don't have a single root to walk from.
func (a *Arena[T]) All(fn func(*T) bool) {
	for _, p := range a.nodes {
		if !fn(p) {
			return
		}
	}
}

// Reset drops every node the arena holds. Per spec.md §4.1, node
// destructors must not own resources outside the arena (strings are
// interned, child lists are arena-allocated), so a Reset never needs to
// do more than release the backing slice.
func (a *Arena[T]) Reset() {
	a.nodes = nil
}
