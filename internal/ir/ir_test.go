package ir

import (
	"testing"

	"github.com/nitrate-lang/nitratec/internal/token"
)

func TestHashConsingStatelessKinds(t *testing.T) {
	m := NewModule("test")
	v1 := m.VoidType(token.Span{})
	v2 := m.VoidType(token.Span{})
	if v1 != v2 {
		t.Fatal("expected VoidType to hash-cons to the same pointer")
	}
	u32a := m.PrimitiveType(token.Span{}, PrimU32)
	u32b := m.PrimitiveType(token.Span{}, PrimU32)
	if u32a != u32b {
		t.Fatal("expected PrimitiveType(u32) to hash-cons to the same pointer")
	}
	u64 := m.PrimitiveType(token.Span{}, PrimU64)
	if Node(u32a) == Node(u64) {
		t.Fatal("expected distinct PrimKinds to produce distinct pointers")
	}
	b1, b2 := m.Brk(token.Span{}), m.Brk(token.Span{})
	if b1 != b2 {
		t.Fatal("expected Brk to hash-cons")
	}
}

func TestNonStatelessAllocatesFresh(t *testing.T) {
	m := NewModule("test")
	u32 := m.PrimitiveType(token.Span{}, PrimU32)
	p1 := m.NewPointerType(token.Span{}, u32)
	p2 := m.NewPointerType(token.Span{}, u32)
	if p1 == p2 {
		t.Fatal("expected PointerType to allocate fresh nodes on every call")
	}
}

func TestIterateDFSPreVisitsEveryNode(t *testing.T) {
	m := NewModule("test")
	i32 := m.PrimitiveType(token.Span{}, PrimI32)
	one := m.NewIntLit(token.Span{}, 1, i32)
	x := m.NewIdent(token.Span{}, "x", nil)
	bin := m.NewBinExpr(token.Span{}, x, one, OpAdd)

	var visited []Node
	Iterate(bin, DFSPre, nil, func(n Node) Action {
		visited = append(visited, n)
		return Proceed
	})
	if len(visited) != 4 { // bin, x, one, i32
		t.Fatalf("expected 4 nodes visited, got %d", len(visited))
	}
	if visited[0] != Node(bin) {
		t.Fatalf("expected root visited first in pre-order, got %v", visited[0])
	}
}

func TestIterateAbortStopsDescent(t *testing.T) {
	m := NewModule("test")
	one := m.NewIntLit(token.Span{}, 1, nil)
	two := m.NewIntLit(token.Span{}, 2, nil)
	bin := m.NewBinExpr(token.Span{}, one, two, OpAdd)

	count := 0
	result := Iterate(bin, DFSPre, nil, func(n Node) Action {
		count++
		return Abort
	})
	if result != Abort {
		t.Fatal("expected Iterate to report Abort")
	}
	if count != 1 {
		t.Fatalf("expected traversal to stop after the first callback, visited %d", count)
	}
}

func TestIterateSkipChildren(t *testing.T) {
	m := NewModule("test")
	one := m.NewIntLit(token.Span{}, 1, nil)
	two := m.NewIntLit(token.Span{}, 2, nil)
	bin := m.NewBinExpr(token.Span{}, one, two, OpAdd)

	var visited []Node
	Iterate(bin, DFSPre, nil, func(n Node) Action {
		visited = append(visited, n)
		if n == Node(bin) {
			return SkipChildren
		}
		return Proceed
	})
	if len(visited) != 1 {
		t.Fatalf("expected SkipChildren to prevent descending into bin's operands, got %d visits", len(visited))
	}
}

func TestIdentRefExcludedFromChildren(t *testing.T) {
	m := NewModule("test")
	fn := m.NewFn(token.Span{}, "f", nil, m.VoidType(token.Span{}), nil, ABIDefault)
	self := m.NewIdent(token.Span{}, "f", fn)
	kids := Children(self)
	if len(kids) != 0 {
		t.Fatalf("expected Ident to report zero children (Ref is a back-reference), got %d", len(kids))
	}
}

// Scenario C (spec.md §8): a recursive function's self-call resolves
// its Ident.Ref to the enclosing Fn, but IsAcyclic still reports true
// because Ref is excluded from Children.
func TestIsAcyclicIgnoresIdentBackReference(t *testing.T) {
	m := NewModule("test")
	fn := m.NewFn(token.Span{}, "f", nil, m.VoidType(token.Span{}), nil, ABIDefault)
	self := m.NewIdent(token.Span{}, "f", fn)
	callSelf := m.NewCall(token.Span{}, self, nil)
	ret := m.NewRet(token.Span{}, callSelf)
	fn.Body = m.NewBlock(token.Span{}, []Node{ret})

	if !IsAcyclic(fn) {
		t.Fatal("expected a recursive function's self-reference to still be acyclic")
	}
}

// A hash-consed node shared by two distinct paths (a diamond, not a
// loop) must not be reported as a cycle.
func TestIsAcyclicAllowsSharedSubtree(t *testing.T) {
	m := NewModule("test")
	shared := m.PrimitiveType(token.Span{}, PrimI32)
	one := m.NewIntLit(token.Span{}, 1, shared)
	two := m.NewIntLit(token.Span{}, 2, shared)
	bin := m.NewBinExpr(token.Span{}, one, two, OpAdd)

	if !IsAcyclic(bin) {
		t.Fatal("expected a shared (hash-consed) subtree to be acyclic")
	}
}

func TestCloneProducesDistinctNodesWithFixedUpBackReferences(t *testing.T) {
	m := NewModule("test")
	dst := NewModule("test-clone")

	fn := m.NewFn(token.Span{}, "f", nil, m.VoidType(token.Span{}), nil, ABIDefault)
	self := m.NewIdent(token.Span{}, "f", fn)
	callSelf := m.NewCall(token.Span{}, self, nil)
	ret := m.NewRet(token.Span{}, callSelf)
	fn.Body = m.NewBlock(token.Span{}, []Node{ret})

	cloned := Clone(dst, fn.Body).(*Block)
	if cloned == fn.Body {
		t.Fatal("expected Clone to allocate a distinct Block")
	}
	clonedRet := cloned.Stmts[0].(*Ret)
	clonedCall := clonedRet.Value.(*Call)
	clonedIdent := clonedCall.Callee.(*Ident)
	// fn itself was never part of the cloned subgraph (only fn.Body was
	// cloned), so the back-reference is external and must pass through
	// unchanged rather than be rewritten to point at some clone of fn.
	if clonedIdent.Ref != fn {
		t.Fatal("expected external back-reference to be preserved as-is")
	}
}
