package ir

// Clone implements spec.md §4.4.8: walk root in DFS pre-order,
// allocating a structurally identical node in m for each source node and
// recording an in->out map, then a second pass rewrites any Ident.Ref
// (the only back-reference field, per Children's convention) that
// points into the cloned subgraph to the corresponding destination node.
// References to nodes outside the cloned subgraph (external references)
// are preserved as-is.
func Clone(m *Module, root Node) Node {
	fixup := map[Node]Node{}
	out := cloneOne(m, root, fixup)
	for src, dst := range fixup {
		rewriteRefs(dst, src, fixup)
	}
	return out
}

func cloneOne(m *Module, n Node, fixup map[Node]Node) Node {
	if n == nil {
		return nil
	}
	if existing, ok := fixup[n]; ok {
		return existing
	}
	var out Node
	switch x := n.(type) {
	case *VoidType:
		out = m.VoidType(x.span)
	case *PrimitiveType:
		out = m.PrimitiveType(x.span, x.Prim)
	case *PointerType:
		out = m.NewPointerType(x.span, cloneOne(m, x.Elem, fixup))
	case *StructType:
		out = m.NewStructType(x.span, cloneFields(m, x.Fields, fixup))
	case *UnionType:
		out = m.NewUnionType(x.span, cloneFields(m, x.Fields, fixup))
	case *ArrayType:
		out = m.NewArrayType(x.span, cloneOne(m, x.Elem, fixup), x.Count)
	case *FunctionType:
		out = m.NewFunctionType(x.span, cloneSlice(m, x.Params, fixup), x.Variadic, cloneOne(m, x.Return, fixup))
	case *OpaqueType:
		out = m.NewOpaqueType(x.span, x.Name)
	case *IntLit:
		out = m.NewIntLit(x.span, x.Value, cloneOne(m, x.Type, fixup))
	case *FloatLit:
		out = m.NewFloatLit(x.span, x.Value, cloneOne(m, x.Type, fixup))
	case *StringBytes:
		bytes := make([]*IntLit, len(x.Bytes))
		for i, b := range x.Bytes {
			bytes[i] = cloneOne(m, b, fixup).(*IntLit)
		}
		out = m.NewStringBytes(x.span, bytes)
	case *Ident:
		// Ref is fixed up in the second pass; clone with a nil Ref for now.
		out = m.NewIdent(x.span, x.Name, nil)
	case *Call:
		out = m.NewCall(x.span, cloneOne(m, x.Callee, fixup), cloneSlice(m, x.Args, fixup))
	case *BinExpr:
		out = m.NewBinExpr(x.span, cloneOne(m, x.Left, fixup), cloneOne(m, x.Right, fixup), x.Op)
	case *UnaryExpr:
		out = m.NewUnaryExpr(x.span, cloneOne(m, x.Operand, fixup), x.Op)
	case *PostUnExpr:
		out = m.NewPostUnExpr(x.span, cloneOne(m, x.Operand, fixup), x.Op)
	case *If:
		out = m.NewIf(x.span, cloneOne(m, x.Cond, fixup), cloneOne(m, x.Then, fixup), cloneOne(m, x.Else, fixup))
	case *List:
		out = m.NewList(x.span, cloneSlice(m, x.Elems, fixup))
	case *Seq:
		out = m.NewSeq(x.span, cloneSlice(m, x.Items, fixup))
	case *Index:
		out = m.NewIndex(x.span, cloneOne(m, x.Object, fixup), cloneOne(m, x.Index, fixup))
	case *Block:
		out = m.NewBlock(x.span, cloneSlice(m, x.Stmts, fixup))
	case *While:
		out = m.NewWhile(x.span, cloneOne(m, x.Cond, fixup), cloneOne(m, x.Body, fixup))
	case *For:
		out = m.NewFor(x.span, cloneOne(m, x.Init, fixup), cloneOne(m, x.Cond, fixup), cloneOne(m, x.Step, fixup), cloneOne(m, x.Body, fixup))
	case *Form:
		out = m.NewForm(x.span, x.IdxIdent, x.ValIdent, cloneOne(m, x.MaxJobs, fixup), cloneOne(m, x.Iterable, fixup), cloneOne(m, x.Body, fixup))
	case *Case:
		out = m.NewCase(x.span, cloneOne(m, x.Cond, fixup), cloneOne(m, x.Body, fixup))
	case *Switch:
		cases := make([]*Case, len(x.Cases))
		for i, c := range x.Cases {
			cases[i] = cloneOne(m, c, fixup).(*Case)
		}
		out = m.NewSwitch(x.span, cloneOne(m, x.Cond, fixup), cases, cloneOne(m, x.Default, fixup))
	case *Asm:
		out = m.NewAsm(x.span, x.Source)
	case *Tmp:
		out = m.NewTmp(x.span, x.TmpKind, x.Name, cloneSlice(m, x.Args, fixup))
	case *Local:
		out = m.NewLocal(x.span, x.Name, cloneOne(m, x.Type, fixup), cloneOne(m, x.Value, fixup), x.ReadOnly, x.ABI)
	case *Global:
		out = m.NewGlobal(x.span, x.Name, cloneOne(m, x.Type, fixup), cloneOne(m, x.Value, fixup), x.ReadOnly, x.ABI)
	case *Fn:
		params := make([]Param, len(x.Params))
		for i, p := range x.Params {
			params[i] = Param{Name: p.Name, Type: cloneOne(m, p.Type, fixup)}
		}
		out = m.NewFn(x.span, x.Name, params, cloneOne(m, x.Return, fixup), cloneOne(m, x.Body, fixup), x.ABI)
	case *Extern:
		out = m.NewExtern(x.span, x.ABI, cloneOne(m, x.Decl, fixup))
	case *Ret:
		out = m.NewRet(x.span, cloneOne(m, x.Value, fixup))
	case *Brk:
		out = m.Brk(x.span)
	case *Cont:
		out = m.Cont(x.span)
	case *Ignore:
		out = m.Ignore(x.span)
	default:
		out = n
	}
	fixup[n] = out
	return out
}

func cloneFields(m *Module, fields []TypeField, fixup map[Node]Node) []TypeField {
	if fields == nil {
		return nil
	}
	out := make([]TypeField, len(fields))
	for i, f := range fields {
		out[i] = TypeField{Name: f.Name, Type: cloneOne(m, f.Type, fixup)}
	}
	return out
}

func cloneSlice(m *Module, nodes []Node, fixup map[Node]Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneOne(m, n, fixup)
	}
	return out
}

// rewriteRefs fixes up the Ident.Ref of a cloned node that pointed into
// the source subgraph: if src's Ref is in the fixup map, dst's Ref is
// repointed at the clone; otherwise (an external reference) it is left
// pointing at the original.
func rewriteRefs(dst, src Node, fixup map[Node]Node) {
	srcIdent, ok := src.(*Ident)
	if !ok {
		return
	}
	dstIdent := dst.(*Ident)
	if srcIdent.Ref == nil {
		return
	}
	if mapped, ok := fixup[srcIdent.Ref]; ok {
		dstIdent.Ref = mapped
	} else {
		dstIdent.Ref = srcIdent.Ref
	}
}
