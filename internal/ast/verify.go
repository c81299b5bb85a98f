package ast

import "fmt"

// VerifyError describes one structural problem found by Verify.
type VerifyError struct {
	Msg  string
	Node Node
}

func (e *VerifyError) Error() string { return e.Msg }

// Verify walks n and checks the structural invariants spec.md §4.2
// requires of a well-formed tree: required children are non-nil, lists
// that must be non-empty are, and composite/enum declarations carry a
// name. It is not a type checker — it never consults a symbol table —
// it only rejects trees the lowerer could not safely walk.
func Verify(n Node) []*VerifyError {
	var errs []*VerifyError
	report := func(msg string, n Node) {
		errs = append(errs, &VerifyError{Msg: msg, Node: n})
	}
	var walk func(n Node)
	walk = func(n Node) {
		if n == nil {
			return
		}
		switch v := n.(type) {
		case *BinaryExpr:
			if v.Left == nil || v.Right == nil {
				report("BinaryExpr missing operand", v)
			}
			walk(v.Left)
			walk(v.Right)
		case *UnaryExpr:
			if v.Operand == nil {
				report("UnaryExpr missing operand", v)
			}
			walk(v.Operand)
		case *PostUnaryExpr:
			walk(v.Operand)
		case *TernaryExpr:
			if v.Cond == nil || v.Then == nil || v.Else == nil {
				report("TernaryExpr missing branch", v)
			}
			walk(v.Cond)
			walk(v.Then)
			walk(v.Else)
		case *CallExpr:
			if v.Callee == nil {
				report("CallExpr missing callee", v)
			}
			walk(v.Callee)
			for _, a := range v.Args {
				walk(a)
			}
		case *TemplateCallExpr:
			walk(v.Callee)
			for _, t := range v.TypeArgs {
				walk(t)
			}
			for _, a := range v.Args {
				walk(a)
			}
		case *ListExpr:
			for _, e := range v.Elems {
				walk(e)
			}
		case *AssocExpr:
			walk(v.Key)
			walk(v.Value)
		case *FieldAccessExpr:
			if v.Object == nil || v.Field == "" {
				report("FieldAccessExpr missing object or field name", v)
			}
			walk(v.Object)
		case *IndexExpr:
			walk(v.Object)
			walk(v.Index)
		case *SliceExpr:
			walk(v.Object)
			walk(v.Low)
			walk(v.High)
		case *FStringExpr:
			for _, part := range v.Parts {
				walk(part.Expr)
			}
		case *SequenceExpr:
			if len(v.Items) == 0 {
				report("SequenceExpr has no items", v)
			}
			for _, e := range v.Items {
				walk(e)
			}
		case *StmtExpr:
			walk(v.Body)
		case *TypeExprNode:
			walk(v.Type)
		case *RangeExpr:
			walk(v.Start)
			walk(v.End)
		case *LambdaExpr:
			for _, prm := range v.Params {
				walk(prm)
			}
			walk(v.Body)

		case *PointerType:
			walk(v.Elem)
		case *ReferenceType:
			walk(v.Elem)
		case *StructType:
			walkCompositeTypeFields(v.Fields, walk)
		case *RegionType:
			walkCompositeTypeFields(v.Fields, walk)
		case *GroupType:
			walkCompositeTypeFields(v.Fields, walk)
		case *UnionType:
			walkCompositeTypeFields(v.Fields, walk)
		case *TupleType:
			for _, e := range v.Elems {
				walk(e)
			}
		case *ArrayType:
			if v.Elem == nil {
				report("ArrayType missing element type", v)
			}
			walk(v.Elem)
			walk(v.Size)
		case *FunctionType:
			for _, prm := range v.Params {
				walk(prm)
			}
			walk(v.Return)
		case *TemplatedType:
			if v.Name == "" {
				report("TemplatedType missing name", v)
			}
			for _, t := range v.TypeArgs {
				walk(t)
			}

		case *TypedefDecl:
			if v.Name == "" {
				report("TypedefDecl missing name", v)
			}
			walk(v.Underlying)
		case *VarDecl:
			if v.Name == "" {
				report("VarDecl missing name", v)
			}
			walk(v.Type)
			walk(v.Init)
		case *LetDecl:
			if v.Name == "" {
				report("LetDecl missing name", v)
			}
			walk(v.Type)
			walk(v.Init)
		case *ConstDecl:
			if v.Name == "" {
				report("ConstDecl missing name", v)
			}
			if v.Init == nil {
				report("ConstDecl missing initializer", v)
			}
			walk(v.Type)
			walk(v.Init)
		case *SubsystemDecl:
			if v.Name == "" {
				report("SubsystemDecl missing name", v)
			}
			for _, d := range v.Body {
				walk(d)
			}
		case *ExportDecl:
			if v.Inner == nil {
				report("ExportDecl missing wrapped declaration", v)
			}
			walk(v.Inner)
		case *ParamDecl:
			if v.Name == "" {
				report("ParamDecl missing name", v)
			}
			walk(v.Type)
			walk(v.Default)
		case *FunctionDecl:
			if v.Name == "" {
				report("FunctionDecl missing name", v)
			}
			for _, prm := range v.Params {
				walk(prm)
			}
			walk(v.RetType)
		case *FunctionDef:
			if v.Name == "" {
				report("FunctionDef missing name", v)
			}
			if v.Body == nil {
				report("FunctionDef missing body", v)
			}
			for _, prm := range v.Params {
				walk(prm)
			}
			walk(v.RetType)
			walk(v.Body)
		case *StructDecl:
			verifyComposite("StructDecl", v.Name, v.Fields, v, report, walk)
		case *RegionDecl:
			verifyComposite("RegionDecl", v.Name, v.Fields, v, report, walk)
		case *GroupDecl:
			verifyComposite("GroupDecl", v.Name, v.Fields, v, report, walk)
		case *UnionDecl:
			verifyComposite("UnionDecl", v.Name, v.Fields, v, report, walk)
		case *CompositeFieldDecl:
			if v.Name == "" {
				report("CompositeFieldDecl missing name", v)
			}
			walk(v.Type)
			walk(v.Default)
		case *EnumDecl:
			if v.Name == "" {
				report("EnumDecl missing name", v)
			}
			walk(v.UnderlyingType)
			for _, it := range v.Items {
				walk(it)
			}
		case *EnumItemDecl:
			if v.Name == "" {
				report("EnumItemDecl missing name", v)
			}
			walk(v.Value)

		case *BlockStmt:
			for _, s := range v.Stmts {
				walk(s)
			}
		case *IfStmt:
			if v.Cond == nil || v.Then == nil {
				report("IfStmt missing condition or then-branch", v)
			}
			walk(v.Cond)
			walk(v.Then)
			walk(v.Else)
		case *WhileStmt:
			if v.Cond == nil {
				report("WhileStmt missing condition", v)
			}
			walk(v.Cond)
			walk(v.Body)
		case *ForStmt:
			walk(v.Init)
			walk(v.Cond)
			walk(v.Step)
			walk(v.Body)
		case *ForeachStmt:
			if v.Name == "" || v.Iterable == nil {
				report("ForeachStmt missing name or iterable", v)
			}
			walk(v.Iterable)
			walk(v.Body)
		case *ParallelFormStmt:
			if v.Name == "" || v.Iterable == nil {
				report("ParallelFormStmt missing name or iterable", v)
			}
			walk(v.Iterable)
			walk(v.Body)
		case *ReturnStmt:
			walk(v.Value)
		case *RetIfStmt:
			if v.Cond == nil {
				report("RetIfStmt missing condition", v)
			}
			walk(v.Cond)
			walk(v.Value)
		case *RetZeroStmt:
			walk(v.Cond)
		case *RetVoidIfStmt:
			walk(v.Cond)
		case *SwitchStmt:
			if v.Scrutinee == nil {
				report("SwitchStmt missing scrutinee", v)
			}
			walk(v.Scrutinee)
			for _, c := range v.Cases {
				walk(c)
			}
			walk(v.Default)
		case *CaseStmt:
			walk(v.Value)
			walk(v.Body)
		case *ExprStmt:
			if v.X == nil {
				report("ExprStmt missing expression", v)
			}
			walk(v.X)
		case *VolatileStmt:
			walk(v.Body)
		}
	}
	walk(n)
	return errs
}

func walkCompositeTypeFields(fields []CompositeTypeField, walk func(Node)) {
	for _, f := range fields {
		if f.Name == "" {
			continue
		}
		walk(f.Type)
	}
}

func verifyComposite(kind, name string, fields []*CompositeFieldDecl, n Node, report func(string, Node), walk func(Node)) {
	if name == "" {
		report(fmt.Sprintf("%s missing name", kind), n)
	}
	for _, f := range fields {
		walk(f)
	}
}
