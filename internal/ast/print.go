package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print renders n as the debug S-expression form described in spec.md §6:
// `(Kind field1 field2 ...)`, recursing into child nodes. When minify is
// true, separators are kept minimal (single spaces, no indentation); this
// mirrors the teacher's single free-function-plus-type-switch rendering
// strategy rather than a Stringer method per node type, since the closed
// Kind axis makes a type switch exhaustive and far shorter than ~60
// duplicated String() bodies.
func Print(n Node, w io.Writer, minify bool) {
	p := &printer{w: w, minify: minify}
	p.node(n)
}

// String renders n with Print into a string, for debugging and tests.
func String(n Node) string {
	var sb strings.Builder
	Print(n, &sb, true)
	return sb.String()
}

type printer struct {
	w      io.Writer
	minify bool
	depth  int
}

func (p *printer) raw(s string) { io.WriteString(p.w, s) }

func (p *printer) node(n Node) {
	if n == nil {
		p.raw("()")
		return
	}
	switch v := n.(type) {
	// expressions
	case *Identifier:
		p.atom("Identifier", quote(v.Name))
	case *IntLiteral:
		p.atom("IntLiteral", v.Text)
	case *FloatLiteral:
		p.atom("FloatLiteral", v.Text)
	case *BoolLiteral:
		p.atom("BoolLiteral", strconv.FormatBool(v.Value))
	case *CharLiteral:
		p.atom("CharLiteral", quote(string(v.Value)))
	case *StringLiteral:
		p.atom("StringLiteral", quote(v.Value))
	case *NullLiteral:
		p.raw("(NullLiteral)")
	case *UndefLiteral:
		p.raw("(UndefLiteral)")
	case *BinaryExpr:
		p.open("BinaryExpr")
		p.raw(" " + quote(v.Op) + " ")
		p.node(v.Left)
		p.sep()
		p.node(v.Right)
		p.close()
	case *UnaryExpr:
		p.open("UnaryExpr")
		p.raw(" " + quote(v.Op) + " ")
		p.node(v.Operand)
		p.close()
	case *PostUnaryExpr:
		p.open("PostUnaryExpr")
		p.raw(" " + quote(v.Op) + " ")
		p.node(v.Operand)
		p.close()
	case *TernaryExpr:
		p.open("TernaryExpr")
		p.node(v.Cond)
		p.sep()
		p.node(v.Then)
		p.sep()
		p.node(v.Else)
		p.close()
	case *CallExpr:
		p.open("CallExpr")
		p.node(v.Callee)
		for _, a := range v.Args {
			p.sep()
			p.node(a)
		}
		p.close()
	case *TemplateCallExpr:
		p.open("TemplateCallExpr")
		p.node(v.Callee)
		for _, t := range v.TypeArgs {
			p.sep()
			p.node(t)
		}
		for _, a := range v.Args {
			p.sep()
			p.node(a)
		}
		p.close()
	case *ListExpr:
		p.open("ListExpr")
		for i, e := range v.Elems {
			if i > 0 {
				p.sep()
			}
			p.node(e)
		}
		p.close()
	case *AssocExpr:
		p.open("AssocExpr")
		p.node(v.Key)
		p.sep()
		p.node(v.Value)
		p.close()
	case *FieldAccessExpr:
		p.open("FieldAccessExpr")
		p.node(v.Object)
		p.raw(" " + quote(v.Field))
		p.close()
	case *IndexExpr:
		p.open("IndexExpr")
		p.node(v.Object)
		p.sep()
		p.node(v.Index)
		p.close()
	case *SliceExpr:
		p.open("SliceExpr")
		p.node(v.Object)
		p.sep()
		p.node(v.Low)
		p.sep()
		p.node(v.High)
		p.close()
	case *FStringExpr:
		p.open("FStringExpr")
		for i, part := range v.Parts {
			if i > 0 {
				p.sep()
			}
			if part.Expr != nil {
				p.node(part.Expr)
			} else {
				p.raw(quote(part.Literal))
			}
		}
		p.close()
	case *SequenceExpr:
		p.open("SequenceExpr")
		for i, e := range v.Items {
			if i > 0 {
				p.sep()
			}
			p.node(e)
		}
		p.close()
	case *StmtExpr:
		p.open("StmtExpr")
		p.node(v.Body)
		p.close()
	case *TypeExprNode:
		p.open("TypeExpr")
		p.node(v.Type)
		p.close()
	case *RangeExpr:
		p.open("RangeExpr")
		p.node(v.Start)
		p.sep()
		p.node(v.End)
		p.close()
	case *LambdaExpr:
		p.open("LambdaExpr")
		for _, prm := range v.Params {
			p.sep()
			p.node(prm)
		}
		p.sep()
		p.node(v.Body)
		p.close()

	// types
	case *PrimitiveType:
		p.raw("(" + v.Kind().String() + ")")
	case *VoidType:
		p.raw("(void)")
	case *PointerType:
		p.open("PointerType")
		p.node(v.Elem)
		p.close()
	case *ReferenceType:
		p.open("ReferenceType")
		p.node(v.Elem)
		p.close()
	case *OpaqueType:
		p.atom("OpaqueType", quote(v.Name))
	case *StructType:
		p.compositeType("StructType", v.Fields)
	case *RegionType:
		p.compositeType("RegionType", v.Fields)
	case *GroupType:
		p.compositeType("GroupType", v.Fields)
	case *UnionType:
		p.compositeType("UnionType", v.Fields)
	case *TupleType:
		p.open("TupleType")
		for i, e := range v.Elems {
			if i > 0 {
				p.sep()
			}
			p.node(e)
		}
		p.close()
	case *ArrayType:
		p.open("ArrayType")
		p.node(v.Elem)
		p.sep()
		p.node(v.Size)
		p.close()
	case *FunctionType:
		p.open("FunctionType")
		for _, prm := range v.Params {
			p.sep()
			p.node(prm)
		}
		p.sep()
		p.node(v.Return)
		p.close()
	case *UnresolvedType:
		p.atom("UnresolvedType", quote(v.Name))
	case *InferredType:
		p.raw("(InferredType)")
	case *TemplatedType:
		p.open("TemplatedType")
		p.raw(" " + quote(v.Name))
		for _, t := range v.TypeArgs {
			p.sep()
			p.node(t)
		}
		p.close()

	// decls
	case *TypedefDecl:
		p.open("TypedefDecl")
		p.raw(" " + quote(v.Name))
		p.sep()
		p.node(v.Underlying)
		p.close()
	case *VarDecl:
		p.open("VarDecl")
		p.raw(" " + quote(v.Name))
		p.sep()
		p.node(v.Type)
		p.sep()
		p.node(v.Init)
		p.close()
	case *LetDecl:
		p.open("LetDecl")
		p.raw(" " + quote(v.Name))
		p.sep()
		p.node(v.Type)
		p.sep()
		p.node(v.Init)
		p.close()
	case *ConstDecl:
		p.open("ConstDecl")
		p.raw(" " + quote(v.Name))
		p.sep()
		p.node(v.Type)
		p.sep()
		p.node(v.Init)
		p.close()
	case *SubsystemDecl:
		p.open("SubsystemDecl")
		p.raw(" " + quote(v.Name))
		for _, d := range v.Body {
			p.sep()
			p.node(d)
		}
		p.close()
	case *ExportDecl:
		p.open("ExportDecl")
		p.raw(" " + quote(v.ABIName))
		p.sep()
		p.node(v.Inner)
		p.close()
	case *AttrSet:
		p.open("AttrSet")
		for _, a := range v.Attrs {
			p.sep()
			p.raw(quote(a.Name))
		}
		p.close()
	case *ParamDecl:
		p.open("ParamDecl")
		p.raw(" " + quote(v.Name))
		p.sep()
		p.node(v.Type)
		p.close()
	case *FunctionDecl:
		p.open("FunctionDecl")
		p.raw(" " + quote(v.Name))
		p.sep()
		p.node(v.RetType)
		p.close()
	case *FunctionDef:
		p.open("FunctionDef")
		p.raw(" " + quote(v.Name))
		p.sep()
		p.node(v.RetType)
		p.sep()
		p.node(v.Body)
		p.close()
	case *StructDecl:
		p.compositeDecl("StructDecl", v.Name, v.Fields)
	case *RegionDecl:
		p.compositeDecl("RegionDecl", v.Name, v.Fields)
	case *GroupDecl:
		p.compositeDecl("GroupDecl", v.Name, v.Fields)
	case *UnionDecl:
		p.compositeDecl("UnionDecl", v.Name, v.Fields)
	case *CompositeFieldDecl:
		p.open("CompositeFieldDecl")
		p.raw(" " + quote(v.Name))
		p.sep()
		p.node(v.Type)
		p.close()
	case *EnumDecl:
		p.open("EnumDecl")
		p.raw(" " + quote(v.Name))
		for _, it := range v.Items {
			p.sep()
			p.node(it)
		}
		p.close()
	case *EnumItemDecl:
		p.open("EnumItemDecl")
		p.raw(" " + quote(v.Name))
		p.sep()
		p.node(v.Value)
		p.close()

	// stmts
	case *BlockStmt:
		p.open("BlockStmt")
		for _, s := range v.Stmts {
			p.sep()
			p.node(s)
		}
		p.close()
	case *IfStmt:
		p.open("IfStmt")
		p.node(v.Cond)
		p.sep()
		p.node(v.Then)
		p.sep()
		p.node(v.Else)
		p.close()
	case *WhileStmt:
		p.open("WhileStmt")
		p.node(v.Cond)
		p.sep()
		p.node(v.Body)
		p.close()
	case *ForStmt:
		p.open("ForStmt")
		p.node(v.Init)
		p.sep()
		p.node(v.Cond)
		p.sep()
		p.node(v.Step)
		p.sep()
		p.node(v.Body)
		p.close()
	case *ForeachStmt:
		p.open("ForeachStmt")
		p.raw(" " + quote(v.Name))
		p.sep()
		p.node(v.Iterable)
		p.sep()
		p.node(v.Body)
		p.close()
	case *ParallelFormStmt:
		p.open("ParallelFormStmt")
		p.raw(" " + quote(v.Name))
		p.sep()
		p.node(v.Iterable)
		p.sep()
		p.node(v.Body)
		p.close()
	case *BreakStmt:
		p.raw("(BreakStmt)")
	case *ContinueStmt:
		p.raw("(ContinueStmt)")
	case *ReturnStmt:
		p.open("ReturnStmt")
		p.node(v.Value)
		p.close()
	case *RetIfStmt:
		p.open("RetIfStmt")
		p.node(v.Cond)
		p.sep()
		p.node(v.Value)
		p.close()
	case *RetZeroStmt:
		p.open("RetZeroStmt")
		p.node(v.Cond)
		p.close()
	case *RetVoidIfStmt:
		p.open("RetVoidIfStmt")
		p.node(v.Cond)
		p.close()
	case *SwitchStmt:
		p.open("SwitchStmt")
		p.node(v.Scrutinee)
		for _, c := range v.Cases {
			p.sep()
			p.node(c)
		}
		p.sep()
		p.node(v.Default)
		p.close()
	case *CaseStmt:
		p.open("CaseStmt")
		p.node(v.Value)
		p.sep()
		p.node(v.Body)
		p.close()
	case *InlineAsmStmt:
		p.atom("InlineAsmStmt", quote(v.Source))
	case *ExprStmt:
		p.open("ExprStmt")
		p.node(v.X)
		p.close()
	case *VolatileStmt:
		p.open("VolatileStmt")
		p.node(v.Body)
		p.close()

	default:
		p.raw(fmt.Sprintf("(Unknown %T)", n))
	}
}

func (p *printer) compositeType(kind string, fields []CompositeTypeField) {
	p.open(kind)
	for i, f := range fields {
		if i > 0 {
			p.sep()
		}
		p.raw("(" + quote(f.Name) + " ")
		p.node(f.Type)
		p.raw(")")
	}
	p.close()
}

func (p *printer) compositeDecl(kind, name string, fields []*CompositeFieldDecl) {
	p.open(kind)
	p.raw(" " + quote(name))
	for _, f := range fields {
		p.sep()
		p.node(f)
	}
	p.close()
}

func (p *printer) open(kind string)  { p.raw("(" + kind) }
func (p *printer) close()            { p.raw(")") }
func (p *printer) sep() {
	if p.minify {
		p.raw(" ")
	} else {
		p.raw(" ")
	}
}

func (p *printer) atom(kind, field string) {
	p.raw("(" + kind + " " + field + ")")
}

// quote renders s as a minimal double-quoted JSON-style string literal,
// escaping control bytes as \xNN per spec.md §6.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&sb, `\x%02x`, c)
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
