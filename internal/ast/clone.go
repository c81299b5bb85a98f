package ast

// Clone returns a deep copy of n: every reachable node is rebuilt through
// its NewXxx factory so spans are preserved exactly and no subtree is
// shared between the original and the copy (spec.md §4.2's clone
// contract). Leaf fields (strings, runes, bools) are copied by value;
// Go's GC retires the need for the arena-rebind step the original
// implementation performs after cloning.
func Clone(n Node) Node {
	switch v := n.(type) {
	case nil:
		return nil

	case *Identifier:
		return NewIdentifier(v.Span(), v.Name)
	case *IntLiteral:
		return NewIntLiteral(v.Span(), v.Text)
	case *FloatLiteral:
		return NewFloatLiteral(v.Span(), v.Text)
	case *BoolLiteral:
		return NewBoolLiteral(v.Span(), v.Value)
	case *CharLiteral:
		return NewCharLiteral(v.Span(), v.Value)
	case *StringLiteral:
		return NewStringLiteral(v.Span(), v.Value)
	case *NullLiteral:
		return NewNullLiteral(v.Span())
	case *UndefLiteral:
		return NewUndefLiteral(v.Span())
	case *BinaryExpr:
		return NewBinaryExpr(v.Span(), cloneExpr(v.Left), v.Op, cloneExpr(v.Right))
	case *UnaryExpr:
		return NewUnaryExpr(v.Span(), v.Op, cloneExpr(v.Operand))
	case *PostUnaryExpr:
		return NewPostUnaryExpr(v.Span(), cloneExpr(v.Operand), v.Op)
	case *TernaryExpr:
		return NewTernaryExpr(v.Span(), cloneExpr(v.Cond), cloneExpr(v.Then), cloneExpr(v.Else))
	case *CallExpr:
		return NewCallExpr(v.Span(), cloneExpr(v.Callee), cloneExprs(v.Args))
	case *TemplateCallExpr:
		return NewTemplateCallExpr(v.Span(), cloneExpr(v.Callee), cloneTypes(v.TypeArgs), cloneExprs(v.Args))
	case *ListExpr:
		return NewListExpr(v.Span(), cloneExprs(v.Elems))
	case *AssocExpr:
		return NewAssocExpr(v.Span(), cloneExpr(v.Key), cloneExpr(v.Value))
	case *FieldAccessExpr:
		return NewFieldAccessExpr(v.Span(), cloneExpr(v.Object), v.Field)
	case *IndexExpr:
		return NewIndexExpr(v.Span(), cloneExpr(v.Object), cloneExpr(v.Index))
	case *SliceExpr:
		return NewSliceExpr(v.Span(), cloneExpr(v.Object), cloneExpr(v.Low), cloneExpr(v.High))
	case *FStringExpr:
		parts := make([]FStringPart, len(v.Parts))
		for i, part := range v.Parts {
			parts[i] = FStringPart{Literal: part.Literal, Expr: cloneExpr(part.Expr)}
		}
		return NewFStringExpr(v.Span(), parts)
	case *SequenceExpr:
		return NewSequenceExpr(v.Span(), cloneExprs(v.Items))
	case *StmtExpr:
		return NewStmtExpr(v.Span(), cloneStmt(v.Body))
	case *TypeExprNode:
		return NewTypeExprNode(v.Span(), cloneType(v.Type))
	case *RangeExpr:
		return NewRangeExpr(v.Span(), cloneExpr(v.Start), cloneExpr(v.End))
	case *LambdaExpr:
		return NewLambdaExpr(v.Span(), cloneParams(v.Params), cloneType(v.RetType), append([]string(nil), v.Captures...), cloneBlock(v.Body))

	case *PrimitiveType:
		return NewPrimitiveType(v.Span(), v.Kind())
	case *VoidType:
		return NewVoidType(v.Span())
	case *PointerType:
		return NewPointerType(v.Span(), cloneType(v.Elem))
	case *ReferenceType:
		return NewReferenceType(v.Span(), cloneType(v.Elem))
	case *OpaqueType:
		return NewOpaqueType(v.Span(), v.Name)
	case *StructType:
		return NewStructType(v.Span(), cloneTypeFields(v.Fields))
	case *RegionType:
		return NewRegionType(v.Span(), cloneTypeFields(v.Fields))
	case *GroupType:
		return NewGroupType(v.Span(), cloneTypeFields(v.Fields))
	case *UnionType:
		return NewUnionType(v.Span(), cloneTypeFields(v.Fields))
	case *TupleType:
		return NewTupleType(v.Span(), cloneTypes(v.Elems))
	case *ArrayType:
		return NewArrayType(v.Span(), cloneType(v.Elem), cloneExpr(v.Size))
	case *FunctionType:
		ft := NewFunctionType(v.Span(), cloneTypes(v.Params), v.Variadic, cloneType(v.Return))
		ft.Purity = v.Purity
		ft.ExceptSafe = v.ExceptSafe
		ft.NoReturn = v.NoReturn
		ft.Foreign = v.Foreign
		ft.ForeignABI = v.ForeignABI
		return ft
	case *UnresolvedType:
		return NewUnresolvedType(v.Span(), v.Name)
	case *InferredType:
		return NewInferredType(v.Span())
	case *TemplatedType:
		return NewTemplatedType(v.Span(), v.Name, cloneTypes(v.TypeArgs))

	case *TypedefDecl:
		return NewTypedefDecl(v.Span(), v.Name, cloneType(v.Underlying), v.Vis)
	case *VarDecl:
		return NewVarDecl(v.Span(), v.Name, cloneType(v.Type), cloneExpr(v.Init), v.Vis)
	case *LetDecl:
		return NewLetDecl(v.Span(), v.Name, cloneType(v.Type), cloneExpr(v.Init), v.Vis)
	case *ConstDecl:
		return NewConstDecl(v.Span(), v.Name, cloneType(v.Type), cloneExpr(v.Init), v.Vis)
	case *SubsystemDecl:
		decls := make([]Decl, len(v.Body))
		for i, d := range v.Body {
			decls[i] = cloneDecl(d)
		}
		return NewSubsystemDecl(v.Span(), v.Name, append([]string(nil), v.Depends...), decls, v.Vis)
	case *ExportDecl:
		return NewExportDecl(v.Span(), v.ABIName, cloneDecl(v.Inner))
	case *AttrSet:
		attrs := make([]Attr, len(v.Attrs))
		for i, a := range v.Attrs {
			attrs[i] = Attr{Name: a.Name, Args: cloneExprs(a.Args)}
		}
		return NewAttrSet(v.Span(), attrs)
	case *ParamDecl:
		return NewParamDecl(v.Span(), v.Name, cloneType(v.Type), cloneExpr(v.Default))
	case *FunctionDecl:
		fd := NewFunctionDecl(v.Span(), v.Name, cloneParams(v.Params), cloneType(v.RetType), v.Vis)
		fd.Variadic = v.Variadic
		fd.Purity = v.Purity
		fd.NoReturn = v.NoReturn
		fd.Foreign = v.Foreign
		return fd
	case *FunctionDef:
		fn := NewFunctionDef(v.Span(), v.Name, cloneParams(v.Params), cloneType(v.RetType), cloneBlock(v.Body), v.Vis)
		fn.Variadic = v.Variadic
		fn.Purity = v.Purity
		fn.NoReturn = v.NoReturn
		fn.Captures = append([]string(nil), v.Captures...)
		fn.Pre = cloneExprs(v.Pre)
		fn.Post = cloneExprs(v.Post)
		return fn
	case *StructDecl:
		return NewStructDecl(v.Span(), v.Name, cloneFields(v.Fields), cloneFuncDefs(v.Methods), cloneFuncDefs(v.StaticMethods), cloneAttrSet(v.Attrs), v.Vis)
	case *RegionDecl:
		return NewRegionDecl(v.Span(), v.Name, cloneFields(v.Fields), cloneFuncDefs(v.Methods), cloneFuncDefs(v.StaticMethods), cloneAttrSet(v.Attrs), v.Vis)
	case *GroupDecl:
		return NewGroupDecl(v.Span(), v.Name, cloneFields(v.Fields), cloneFuncDefs(v.Methods), cloneFuncDefs(v.StaticMethods), cloneAttrSet(v.Attrs), v.Vis)
	case *UnionDecl:
		return NewUnionDecl(v.Span(), v.Name, cloneFields(v.Fields), cloneFuncDefs(v.Methods), cloneFuncDefs(v.StaticMethods), cloneAttrSet(v.Attrs), v.Vis)
	case *CompositeFieldDecl:
		return NewCompositeFieldDecl(v.Span(), v.Name, cloneType(v.Type), cloneExpr(v.Default), cloneAttrSet(v.Attrs), v.Vis)
	case *EnumDecl:
		items := make([]*EnumItemDecl, len(v.Items))
		for i, it := range v.Items {
			items[i] = Clone(it).(*EnumItemDecl)
		}
		return NewEnumDecl(v.Span(), v.Name, cloneType(v.UnderlyingType), items, v.Vis)
	case *EnumItemDecl:
		return NewEnumItemDecl(v.Span(), v.Name, cloneExpr(v.Value))

	case *BlockStmt:
		return cloneBlock(v)
	case *IfStmt:
		return NewIfStmt(v.Span(), cloneExpr(v.Cond), cloneStmt(v.Then), cloneStmt(v.Else))
	case *WhileStmt:
		return NewWhileStmt(v.Span(), cloneExpr(v.Cond), cloneStmt(v.Body))
	case *ForStmt:
		return NewForStmt(v.Span(), cloneStmt(v.Init), cloneExpr(v.Cond), cloneStmt(v.Step), cloneStmt(v.Body))
	case *ForeachStmt:
		return NewForeachStmt(v.Span(), v.Name, v.HasIndex, v.IndexVar, cloneExpr(v.Iterable), cloneStmt(v.Body))
	case *ParallelFormStmt:
		return NewParallelFormStmt(v.Span(), v.Name, cloneExpr(v.Iterable), cloneStmt(v.Body))
	case *BreakStmt:
		return NewBreakStmt(v.Span())
	case *ContinueStmt:
		return NewContinueStmt(v.Span())
	case *ReturnStmt:
		return NewReturnStmt(v.Span(), cloneExpr(v.Value))
	case *RetIfStmt:
		return NewRetIfStmt(v.Span(), cloneExpr(v.Cond), cloneExpr(v.Value))
	case *RetZeroStmt:
		return NewRetZeroStmt(v.Span(), cloneExpr(v.Cond))
	case *RetVoidIfStmt:
		return NewRetVoidIfStmt(v.Span(), cloneExpr(v.Cond))
	case *SwitchStmt:
		cases := make([]*CaseStmt, len(v.Cases))
		for i, c := range v.Cases {
			cases[i] = Clone(c).(*CaseStmt)
		}
		return NewSwitchStmt(v.Span(), cloneExpr(v.Scrutinee), cases, cloneStmt(v.Default))
	case *CaseStmt:
		return NewCaseStmt(v.Span(), cloneExpr(v.Value), cloneStmt(v.Body))
	case *InlineAsmStmt:
		return NewInlineAsmStmt(v.Span(), v.Source)
	case *ExprStmt:
		return NewExprStmt(v.Span(), cloneExpr(v.X))
	case *VolatileStmt:
		return NewVolatileStmt(v.Span(), cloneStmt(v.Body))
	}
	return nil
}

func cloneExpr(e Expr) Expr {
	if e == nil {
		return nil
	}
	c := Clone(e)
	if c == nil {
		return nil
	}
	return c.(Expr)
}

func cloneStmt(s Stmt) Stmt {
	if s == nil {
		return nil
	}
	c := Clone(s)
	if c == nil {
		return nil
	}
	return c.(Stmt)
}

func cloneType(t TypeNode) TypeNode {
	if t == nil {
		return nil
	}
	c := Clone(t)
	if c == nil {
		return nil
	}
	return c.(TypeNode)
}

func cloneDecl(d Decl) Decl {
	if d == nil {
		return nil
	}
	c := Clone(d)
	if c == nil {
		return nil
	}
	return c.(Decl)
}

func cloneBlock(b *BlockStmt) *BlockStmt {
	if b == nil {
		return nil
	}
	stmts := make([]Stmt, len(b.Stmts))
	for i, s := range b.Stmts {
		stmts[i] = cloneStmt(s)
	}
	return NewBlockStmt(b.Span(), b.Safety, stmts)
}

func cloneExprs(es []Expr) []Expr {
	if es == nil {
		return nil
	}
	out := make([]Expr, len(es))
	for i, e := range es {
		out[i] = cloneExpr(e)
	}
	return out
}

func cloneTypes(ts []TypeNode) []TypeNode {
	if ts == nil {
		return nil
	}
	out := make([]TypeNode, len(ts))
	for i, t := range ts {
		out[i] = cloneType(t)
	}
	return out
}

func cloneTypeFields(fields []CompositeTypeField) []CompositeTypeField {
	if fields == nil {
		return nil
	}
	out := make([]CompositeTypeField, len(fields))
	for i, f := range fields {
		out[i] = CompositeTypeField{Name: f.Name, Type: cloneType(f.Type)}
	}
	return out
}

func cloneParams(params []*ParamDecl) []*ParamDecl {
	if params == nil {
		return nil
	}
	out := make([]*ParamDecl, len(params))
	for i, prm := range params {
		out[i] = Clone(prm).(*ParamDecl)
	}
	return out
}

func cloneFields(fields []*CompositeFieldDecl) []*CompositeFieldDecl {
	if fields == nil {
		return nil
	}
	out := make([]*CompositeFieldDecl, len(fields))
	for i, f := range fields {
		out[i] = Clone(f).(*CompositeFieldDecl)
	}
	return out
}

func cloneFuncDefs(defs []*FunctionDef) []*FunctionDef {
	if defs == nil {
		return nil
	}
	out := make([]*FunctionDef, len(defs))
	for i, fn := range defs {
		out[i] = Clone(fn).(*FunctionDef)
	}
	return out
}

func cloneAttrSet(a *AttrSet) *AttrSet {
	if a == nil {
		return nil
	}
	return Clone(a).(*AttrSet)
}
