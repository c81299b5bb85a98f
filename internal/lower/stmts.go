package lower

import (
	"strconv"

	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/ir"
	"github.com/nitrate-lang/nitratec/internal/token"
)

// lowerBlock lowers a braced statement sequence into an ir.Block,
// pushing and popping a local_scope frame around it (spec.md §4.4.1).
func (l *Lowerer) lowerBlock(b *ast.BlockStmt) Node {
	if b == nil {
		return l.Module.NewBlock(token.Span{}, nil)
	}
	l.pushScope()
	defer l.popScope()
	stmts := make([]Node, 0, len(b.Stmts))
	for _, s := range b.Stmts {
		stmts = append(stmts, l.lowerStmt(s))
	}
	return l.Module.NewBlock(b.Span(), stmts)
}

// lowerStmt lowers one statement. A declaration appearing in statement
// position (the parser's decl-in-block wrapper) is detected
// structurally via asDecl and lowered through lowerDecl, wrapping its
// (possibly multiple) results in a Block when more than one IR node
// results.
func (l *Lowerer) lowerStmt(s ast.Stmt) Node {
	if d, ok := asDecl(s); ok {
		decls := l.lowerDecl(d)
		for _, n := range decls {
			l.Module.AddGlobal(n)
		}
		if len(decls) == 1 {
			return decls[0]
		}
		return l.Module.NewBlock(s.Span(), decls)
	}

	sp := s.Span()
	switch x := s.(type) {
	case *ast.BlockStmt:
		return l.lowerBlock(x)

	case *ast.IfStmt:
		var elseNode Node
		if x.Else != nil {
			elseNode = l.lowerStmt(x.Else)
		}
		return l.Module.NewIf(sp, l.lowerExpr(x.Cond), l.lowerStmt(x.Then), elseNode)

	case *ast.WhileStmt:
		// `while cond body` shares lowerLoop with the ForStmt case; with
		// no init or step clause that yields an ir.While.
		return l.lowerLoop(sp, nil, x.Cond, nil, x.Body)

	case *ast.ForStmt:
		var init Node
		if x.Init != nil {
			init = l.lowerStmt(x.Init)
		}
		var step Node
		if x.Step != nil {
			step = l.lowerStmt(x.Step)
		}
		return l.lowerLoop(sp, init, x.Cond, step, x.Body)

	case *ast.ForeachStmt:
		return l.lowerForeach(sp, x)

	case *ast.ParallelFormStmt:
		return l.lowerParallelForm(sp, x)

	case *ast.BreakStmt:
		return l.Module.Brk(sp)

	case *ast.ContinueStmt:
		return l.Module.Cont(sp)

	case *ast.ReturnStmt:
		return l.lowerReturn(sp, x.Value)

	case *ast.RetIfStmt:
		// retif(c, v) ≡ if c { return v }
		ret := l.lowerReturn(sp, x.Value)
		return l.Module.NewIf(sp, l.lowerExpr(x.Cond), ret, nil)

	case *ast.RetZeroStmt:
		// retz(c) ≡ if !c { return <zero of return_type> }
		cond := l.Module.NewUnaryExpr(sp, l.lowerExpr(x.Cond), ir.OpNot)
		ret := l.Module.NewRet(sp, l.zeroValueOf(l.returnType, sp))
		return l.Module.NewIf(sp, cond, ret, nil)

	case *ast.RetVoidIfStmt:
		// retv(c) ≡ if c { return }
		ret := l.Module.NewRet(sp, l.Module.VoidType(sp))
		return l.Module.NewIf(sp, l.lowerExpr(x.Cond), ret, nil)

	case *ast.SwitchStmt:
		return l.lowerSwitch(sp, x)

	case *ast.InlineAsmStmt:
		// Inline assembly passes through verbatim; the backend, not
		// this lowering pass, interprets its contents (spec.md §4.2).
		return l.Module.NewAsm(sp, x.Source)

	case *ast.ExprStmt:
		return l.lowerExpr(x.X)

	case *ast.VolatileStmt:
		return l.lowerStmt(x.Body)

	default:
		l.abandonItem(s, "unrecognized statement node %T", s)
		return nil
	}
}

// lowerLoop lowers the shared C-style for/while shape directly to the
// IR's While or For node (`IRGraph.hh`'s `While`/`For`): a loop with
// neither an init nor a step clause is a While, anything carrying
// either becomes a For with the absent clause left nil.
func (l *Lowerer) lowerLoop(sp token.Span, init Node, cond ast.Expr, step Node, body ast.Stmt) Node {
	var condNode Node
	if cond != nil {
		condNode = l.lowerExpr(cond)
	} else {
		condNode = l.Module.NewIntLit(sp, 1, l.Module.PrimitiveType(sp, ir.PrimU1))
	}
	bodyNode := l.lowerStmt(body)
	if init == nil && step == nil {
		return l.Module.NewWhile(sp, condNode, bodyNode)
	}
	return l.Module.NewFor(sp, init, condNode, step, bodyNode)
}

// lowerForeach desugars `foreach (name[, index] in iterable) body` into
// a While loop driving a hidden iterator local through the iterator
// protocol (`iter()`/`has_next()`/`next()`), the same UFCS-call
// convention this pass uses elsewhere for a construct with no direct
// IR shape (spec.md §3's IR Expr list has no Foreach node; only While/
// For/Form do). HasIndex tracks a running counter local alongside the
// iterator, incremented once per iteration.
func (l *Lowerer) lowerForeach(sp token.Span, x *ast.ForeachStmt) Node {
	l.pushScope()
	defer l.popScope()

	iterable := l.lowerExpr(x.Iterable)
	iterName := "__iter@" + strconv.Itoa(sp.Start.Offset)
	iterInit := l.Module.NewCall(sp, l.Module.NewIdent(sp, "iter", nil), []Node{iterable})
	iterLocal := l.Module.NewLocal(sp, l.qualify(iterName), nil, iterInit, false, ir.ABIDefault)
	l.bindName(iterName, iterLocal)

	var indexLocal *ir.Local
	if x.HasIndex {
		zero := l.Module.NewIntLit(sp, 0, l.Module.PrimitiveType(sp, ir.PrimI32))
		indexLocal = l.Module.NewLocal(sp, l.qualify(x.IndexVar), nil, zero, false, ir.ABIDefault)
		l.bindName(x.IndexVar, indexLocal)
	}

	cond := l.Module.NewCall(sp, l.Module.NewIdent(sp, "has_next", nil),
		[]Node{l.Module.NewIdent(sp, iterLocal.Name, iterLocal)})

	next := l.Module.NewCall(sp, l.Module.NewIdent(sp, "next", nil),
		[]Node{l.Module.NewIdent(sp, iterLocal.Name, iterLocal)})
	valLocal := l.Module.NewLocal(sp, l.qualify(x.Name), nil, next, false, ir.ABIDefault)
	l.bindName(x.Name, valLocal)

	bodyStmts := []Node{valLocal}
	if indexLocal != nil {
		one := l.Module.NewIntLit(sp, 1, l.Module.PrimitiveType(sp, ir.PrimI32))
		incr := l.Module.NewBinExpr(sp, l.Module.NewIdent(sp, indexLocal.Name, indexLocal), one, ir.OpAdd)
		bodyStmts = append(bodyStmts, l.Module.NewBinExpr(sp, l.Module.NewIdent(sp, indexLocal.Name, indexLocal), incr, ir.OpAssign))
	}
	bodyStmts = append(bodyStmts, l.lowerStmt(x.Body))

	loopBody := l.Module.NewBlock(sp, bodyStmts)
	return l.Module.NewBlock(sp, []Node{iterLocal, l.Module.NewWhile(sp, cond, loopBody)})
}

// lowerParallelForm lowers `form (name in iterable) body` directly to
// the IR's Form node (`IRGraph.hh`'s `Form`). The AST's ParallelFormStmt
// carries no separate index-variable or max-concurrency-bound clause,
// so IdxIdent is left empty and MaxJobs nil (an unbounded form).
func (l *Lowerer) lowerParallelForm(sp token.Span, x *ast.ParallelFormStmt) Node {
	l.pushScope()
	defer l.popScope()
	l.defineLocal(x.Name, nil)
	iterable := l.lowerExpr(x.Iterable)
	body := l.lowerStmt(x.Body)
	return l.Module.NewForm(sp, "", x.Name, nil, iterable, body)
}

// lowerReturn implicitly casts the value to the enclosing function's
// return type; a bare return in a void function injects a void value
// (spec.md §4.4.3).
func (l *Lowerer) lowerReturn(sp token.Span, value ast.Expr) Node {
	if value == nil {
		return l.Module.NewRet(sp, l.Module.VoidType(sp))
	}
	v := l.lowerExpr(value)
	if l.returnType != nil {
		if _, isVoid := l.returnType.(*ir.VoidType); !isVoid {
			v = l.Module.NewBinExpr(sp, v, l.returnType, ir.OpCastAs)
		}
	}
	return l.Module.NewRet(sp, v)
}

// zeroValueOf returns a zero-valued IR literal for t, used by retz's
// desugaring. Pointer and composite types zero to a null Tmp; anything
// else degrades the same way.
func (l *Lowerer) zeroValueOf(t Node, sp token.Span) Node {
	if p, ok := t.(*ir.PrimitiveType); ok {
		if p.Prim >= ir.PrimF16 {
			return l.Module.NewFloatLit(sp, "0", t)
		}
		return l.Module.NewIntLit(sp, 0, t)
	}
	return l.Module.NewTmp(sp, ir.TmpNull, "", nil)
}

// lowerSwitch lowers directly to the IR's Switch/Case pair
// (`IRGraph.hh`'s `Switch`/`Case`), evaluating the scrutinee exactly
// once rather than re-lowering it per case the way a desugared If-chain
// would (spec.md §3: "switch (scrutinee + ordered cases + optional
// default)").
func (l *Lowerer) lowerSwitch(sp token.Span, x *ast.SwitchStmt) Node {
	scrutinee := l.lowerExpr(x.Scrutinee)
	cases := make([]*ir.Case, len(x.Cases))
	for i, c := range x.Cases {
		cases[i] = l.Module.NewCase(c.Span(), l.lowerExpr(c.Value), l.lowerStmt(c.Body))
	}
	var def Node
	if x.Default != nil {
		def = l.lowerStmt(x.Default)
	}
	return l.Module.NewSwitch(sp, scrutinee, cases, def)
}
