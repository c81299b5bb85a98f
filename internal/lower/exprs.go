package lower

import (
	"strconv"
	"strings"

	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/ir"
	"github.com/nitrate-lang/nitratec/internal/mangle"
	"github.com/nitrate-lang/nitratec/internal/token"
)

// compoundOps maps a compound-assignment source operator to the plain
// binary operator it desugars around (spec.md §4.4.3: "lhs = (lhs_clone
// op rhs)").
var compoundOps = map[string]ir.BinOp{
	"+=":  ir.OpAdd,
	"-=":  ir.OpSub,
	"*=":  ir.OpMul,
	"/=":  ir.OpDiv,
	"%=":  ir.OpMod,
	"&=":  ir.OpBitAnd,
	"|=":  ir.OpBitOr,
	"^=":  ir.OpBitXor,
	"<<=": ir.OpShl,
	">>=": ir.OpShr,
}

var plainBinOps = map[string]ir.BinOp{
	"+": ir.OpAdd, "-": ir.OpSub, "*": ir.OpMul, "/": ir.OpDiv, "%": ir.OpMod,
	"<": ir.OpLt, "<=": ir.OpLe, ">": ir.OpGt, ">=": ir.OpGe,
	"==": ir.OpEq, "!=": ir.OpNe,
	"&&": ir.OpLogAnd, "and": ir.OpLogAnd,
	"||": ir.OpLogOr, "or": ir.OpLogOr,
	"&": ir.OpBitAnd, "|": ir.OpBitOr, "^": ir.OpBitXor,
	"<<": ir.OpShl, ">>": ir.OpShr,
}

var unaryOps = map[string]ir.UnaryOp{
	"-": ir.OpNeg, "!": ir.OpNot, "not": ir.OpNot,
	"~": ir.OpBitNot, "*": ir.OpDeref, "&": ir.OpAddrOf,
}

// lowerExpr lowers one expression, applying the key lowerings of
// spec.md §4.4.3 (ternary/string/f-string/compound-assignment/xor/
// sizeof/typeof/in/cast) inline rather than as a separate rewrite pass.
func (l *Lowerer) lowerExpr(e ast.Expr) Node {
	sp := e.Span()
	switch x := e.(type) {
	case *ast.Identifier:
		ref, _ := l.resolve(x.Name)
		return l.Module.NewIdent(sp, l.qualify(x.Name), ref)

	case *ast.IntLiteral:
		n, _ := parseIntText(x.Text)
		return l.Module.NewIntLit(sp, n, l.Module.PrimitiveType(sp, ir.PrimI32))

	case *ast.FloatLiteral:
		return l.Module.NewFloatLit(sp, x.Text, l.Module.PrimitiveType(sp, ir.PrimF64))

	case *ast.BoolLiteral:
		v := int64(0)
		if x.Value {
			v = 1
		}
		return l.Module.NewIntLit(sp, v, l.Module.PrimitiveType(sp, ir.PrimU1))

	case *ast.CharLiteral:
		return l.Module.NewIntLit(sp, int64(x.Value), l.Module.PrimitiveType(sp, ir.PrimU32))

	case *ast.StringLiteral:
		return l.lowerStringLiteral(sp, x.Value)

	case *ast.NullLiteral:
		return l.Module.NewTmp(sp, ir.TmpNull, "", nil)

	case *ast.UndefLiteral:
		return l.Module.NewTmp(sp, ir.TmpUndef, "", nil)

	case *ast.FStringExpr:
		return l.lowerFString(sp, x)

	case *ast.TernaryExpr:
		return l.Module.NewIf(sp, l.lowerExpr(x.Cond), l.lowerExpr(x.Then), l.lowerExpr(x.Else))

	case *ast.BinaryExpr:
		return l.lowerBinaryExpr(sp, x)

	case *ast.UnaryExpr:
		return l.lowerUnaryExpr(sp, x)

	case *ast.PostUnaryExpr:
		op := ir.OpIncr
		if x.Op == "--" {
			op = ir.OpDecr
		}
		return l.Module.NewPostUnExpr(sp, l.lowerExpr(x.Operand), op)

	case *ast.CallExpr:
		args := make([]Node, len(x.Args))
		for i, a := range x.Args {
			args[i] = l.lowerExpr(a)
		}
		return l.Module.NewCall(sp, l.lowerExpr(x.Callee), args)

	case *ast.TemplateCallExpr:
		l.abandonUnimplemented(x, "templates are not supported by this lowering pass")
		return nil

	case *ast.ListExpr:
		elems := make([]Node, len(x.Elems))
		for i, e := range x.Elems {
			elems[i] = l.lowerExpr(e)
		}
		return l.Module.NewList(sp, elems)

	case *ast.AssocExpr:
		// An association pair carries no standalone IR shape; it only
		// appears inside a composite literal's element list, where its
		// key is structural (a field name) rather than a value -
		// lower to just the value side.
		return l.lowerExpr(x.Value)

	case *ast.FieldAccessExpr:
		// Field access has no separate named-field-access shape in this
		// IR; it lowers to an Index keyed by an unresolved Ident holding
		// the field name, the same way a C-style struct member access
		// is modeled in `IRGraph.hh` (no dedicated Field/Dot node there
		// either).
		return l.Module.NewIndex(sp, l.lowerExpr(x.Object), l.Module.NewIdent(sp, x.Field, nil))

	case *ast.IndexExpr:
		return l.Module.NewIndex(sp, l.lowerExpr(x.Object), l.lowerExpr(x.Index))

	case *ast.SliceExpr:
		// A slice carries two independent bounds; Index's single-index
		// shape (and `IRGraph.hh`'s, which has no two-bound range node
		// either) can't represent that, so this keeps the call-based
		// fallback other shapeless constructs in this pass use.
		args := []Node{l.lowerExpr(x.Object)}
		if x.Low != nil {
			args = append(args, l.lowerExpr(x.Low))
		}
		if x.High != nil {
			args = append(args, l.lowerExpr(x.High))
		}
		return l.Module.NewCall(sp, l.Module.NewIdent(sp, "slice", nil), args)

	case *ast.SequenceExpr:
		// An expression-position sequence lowers to Seq, distinct from
		// Block (the statement-sequencing shape lowerBlock builds for
		// braced bodies).
		items := make([]Node, len(x.Items))
		for i, it := range x.Items {
			items[i] = l.lowerExpr(it)
		}
		return l.Module.NewSeq(sp, items)

	case *ast.StmtExpr:
		return l.lowerStmt(x.Body)

	case *ast.TypeExprNode:
		return l.lowerType(x.Type)

	case *ast.RangeExpr:
		return l.Module.NewCall(sp, l.Module.NewIdent(sp, "range", nil),
			[]Node{l.lowerExpr(x.Start), l.lowerExpr(x.End)})

	case *ast.LambdaExpr:
		return l.lowerLambda(sp, x)

	default:
		l.abandonItem(e, "unrecognized expression node %T", e)
		return nil
	}
}

func (l *Lowerer) lowerStringLiteral(sp token.Span, s string) Node {
	u8 := l.Module.PrimitiveType(sp, ir.PrimU8)
	bytes := make([]*ir.IntLit, 0, len(s)+1)
	for _, b := range []byte(s) {
		bytes = append(bytes, l.Module.NewIntLit(sp, int64(b), u8))
	}
	bytes = append(bytes, l.Module.NewIntLit(sp, 0, u8))
	return l.Module.NewStringBytes(sp, bytes)
}

// lowerFString folds an interpolated string's parts into
// `string + item + ...` with each expression item implicitly
// stringified (spec.md §4.4.3).
func (l *Lowerer) lowerFString(sp token.Span, f *ast.FStringExpr) Node {
	var acc Node
	appendPart := func(n Node) {
		if acc == nil {
			acc = n
			return
		}
		acc = l.Module.NewBinExpr(sp, acc, n, ir.OpAdd)
	}
	for _, part := range f.Parts {
		if part.Expr == nil {
			appendPart(l.lowerStringLiteral(sp, part.Literal))
			continue
		}
		// Implicit stringification: call a well-known `to_string`
		// helper on the embedded expression, the same UFCS call shape
		// `in` uses (`has`) for a runtime-provided helper.
		val := l.lowerExpr(part.Expr)
		appendPart(l.Module.NewCall(part.Expr.Span(), l.Module.NewIdent(part.Expr.Span(), "to_string", nil), []Node{val}))
	}
	if acc == nil {
		return l.lowerStringLiteral(sp, "")
	}
	return acc
}

func (l *Lowerer) lowerBinaryExpr(sp token.Span, x *ast.BinaryExpr) Node {
	switch x.Op {
	case "=":
		return l.Module.NewBinExpr(sp, l.lowerExpr(x.Left), l.lowerExpr(x.Right), ir.OpAssign)

	case "as":
		return l.Module.NewBinExpr(sp, l.lowerExpr(x.Left), l.lowerTypeOperand(x.Right), ir.OpCastAs)

	case "bitcast_as":
		return l.Module.NewBinExpr(sp, l.lowerExpr(x.Left), l.lowerTypeOperand(x.Right), ir.OpBitcastAs)

	case "in":
		// `lhs in rhs` -> `rhs.has(lhs)`, a UFCS call whose receiver is
		// the first argument (spec.md §4.4.3).
		return l.Module.NewCall(sp, l.Module.NewIdent(sp, "has", nil),
			[]Node{l.lowerExpr(x.Right), l.lowerExpr(x.Left)})

	case "is":
		return l.Module.NewCall(sp, l.Module.NewIdent(sp, "is_type", nil),
			[]Node{l.lowerExpr(x.Left), l.lowerTypeOperand(x.Right)})

	case "xor":
		// (a || b) && !(a && b)
		a, b := l.lowerExpr(x.Left), l.lowerExpr(x.Right)
		aOrB := l.Module.NewBinExpr(sp, a, b, ir.OpLogOr)
		aAndB := l.Module.NewBinExpr(sp, ir.Clone(l.Module, a), ir.Clone(l.Module, b), ir.OpLogAnd)
		notAAndB := l.Module.NewUnaryExpr(sp, aAndB, ir.OpNot)
		return l.Module.NewBinExpr(sp, aOrB, notAAndB, ir.OpLogAnd)
	}

	if op, ok := compoundOps[x.Op]; ok {
		lhs := l.lowerExpr(x.Left)
		rhs := l.lowerExpr(x.Right)
		updated := l.Module.NewBinExpr(sp, ir.Clone(l.Module, lhs), rhs, op)
		return l.Module.NewBinExpr(sp, lhs, updated, ir.OpAssign)
	}

	if op, ok := plainBinOps[x.Op]; ok {
		return l.Module.NewBinExpr(sp, l.lowerExpr(x.Left), l.lowerExpr(x.Right), op)
	}

	l.abandonItem(x, "unrecognized binary operator %q", x.Op)
	return nil
}

// lowerTypeOperand lowers the right-hand side of `as`/`bitcast_as`/`is`,
// which the parser parses as an ordinary expression (a type wrapped in a
// TypeExprNode, or a bare identifier the parser couldn't yet classify).
func (l *Lowerer) lowerTypeOperand(e ast.Expr) Node {
	if te, ok := e.(*ast.TypeExprNode); ok {
		return l.lowerType(te.Type)
	}
	if id, ok := e.(*ast.Identifier); ok {
		if n, ok := l.resolve(id.Name); ok {
			return n
		}
		return l.Module.NewOpaqueType(e.Span(), l.qualify(id.Name))
	}
	return l.lowerExpr(e)
}

func (l *Lowerer) lowerUnaryExpr(sp token.Span, x *ast.UnaryExpr) Node {
	switch x.Op {
	case "sizeof":
		return l.lowerSizeof(sp, x.Operand)
	case "bitsizeof":
		return l.bitsizeofCall(sp, x.Operand)
	case "typeof":
		return l.lowerTypeof(sp, x.Operand)
	case "alignof":
		return l.Module.NewCall(sp, l.Module.NewIdent(sp, "alignof", nil), []Node{l.lowerOperandOrType(x.Operand)})
	case "offsetof":
		return l.Module.NewCall(sp, l.Module.NewIdent(sp, "offsetof", nil), []Node{l.lowerOperandOrType(x.Operand)})
	}
	if op, ok := unaryOps[x.Op]; ok {
		return l.Module.NewUnaryExpr(sp, l.lowerExpr(x.Operand), op)
	}
	l.abandonItem(x, "unrecognized unary operator %q", x.Op)
	return nil
}

func (l *Lowerer) lowerOperandOrType(e ast.Expr) Node {
	if te, ok := e.(*ast.TypeExprNode); ok {
		return l.lowerType(te.Type)
	}
	return l.lowerExpr(e)
}

// bitsizeofCall lowers `bitsizeof e` to a call against a well-known
// runtime helper, the same call-based shape sizeof's own expansion
// builds on top of.
func (l *Lowerer) bitsizeofCall(sp token.Span, operand ast.Expr) Node {
	return l.Module.NewCall(sp, l.Module.NewIdent(sp, "bitsizeof", nil), []Node{l.lowerOperandOrType(operand)})
}

// lowerSizeof lowers `sizeof e` to `ceil(bitsizeof(e) / 8)` via a call
// to the well-known helper `std::ceil` (spec.md §4.4.3).
func (l *Lowerer) lowerSizeof(sp token.Span, operand ast.Expr) Node {
	bits := l.bitsizeofCall(sp, operand)
	eight := l.Module.NewIntLit(sp, 8, l.Module.PrimitiveType(sp, ir.PrimI32))
	div := l.Module.NewBinExpr(sp, bits, eight, ir.OpDiv)
	return l.Module.NewCall(sp, l.Module.NewIdent(sp, "std::ceil", nil), []Node{div})
}

// lowerTypeof lowers `typeof e` to a string literal of e's type's
// mangled name under the QUIX ABI (spec.md §4.4.3). Typeof never
// evaluates its operand; only the operand's static type matters, so an
// expression operand is lowered only far enough to recover its Type
// field where one is directly available, falling back to an opaque
// "unknown" type otherwise (full type inference is a later pass's job,
// per spec.md §4.4.9's Open Question).
func (l *Lowerer) lowerTypeof(sp token.Span, operand ast.Expr) Node {
	t := l.staticTypeOf(operand)
	return l.lowerStringLiteral(sp, mangle.EncodeType(t))
}

// staticTypeOf recovers the type already attached to an expression
// without evaluating it: a TypeExprNode names its type directly, a
// typed literal carries an obvious primitive type, and an identifier
// resolves through whatever Type field its binding exposes. Anything
// else degrades to an opaque "unknown" placeholder.
func (l *Lowerer) staticTypeOf(operand ast.Expr) Node {
	sp := operand.Span()
	switch x := operand.(type) {
	case *ast.TypeExprNode:
		return l.lowerType(x.Type)
	case *ast.IntLiteral:
		return l.Module.PrimitiveType(sp, ir.PrimI32)
	case *ast.FloatLiteral:
		return l.Module.PrimitiveType(sp, ir.PrimF64)
	case *ast.BoolLiteral:
		return l.Module.PrimitiveType(sp, ir.PrimU1)
	case *ast.StringLiteral:
		return l.Module.NewPointerType(sp, l.Module.PrimitiveType(sp, ir.PrimU8))
	case *ast.Identifier:
		if ref, ok := l.resolve(x.Name); ok {
			switch r := ref.(type) {
			case *ir.Local:
				return r.Type
			case *ir.Global:
				return r.Type
			case *ir.Fn:
				return r.Return
			}
		}
	}
	return l.Module.NewOpaqueType(sp, "unknown")
}

func (l *Lowerer) lowerLambda(sp token.Span, x *ast.LambdaExpr) Node {
	params := make([]ir.Param, len(x.Params))
	for i, p := range x.Params {
		params[i] = ir.Param{Name: p.Name, Type: l.lowerType(p.Type)}
	}
	l.pushScope()
	for i, p := range x.Params {
		_ = i
		l.defineLocal(p.Name, nil)
	}
	savedInside, savedReturn := l.insideFunction, l.returnType
	l.insideFunction = true
	retType := l.lowerType(x.RetType)
	l.returnType = retType
	body := l.lowerBlock(x.Body)
	l.insideFunction, l.returnType = savedInside, savedReturn
	l.popScope()
	// A lambda has no declared name; it is given an anonymous, position-
	// derived one so it can still be carried as an ordinary Fn value
	// (the IR has no separate closure-literal node).
	name := l.qualify("lambda@" + strconv.Itoa(sp.Start.Offset))
	fn := l.Module.NewFn(sp, name, params, retType, body, ir.ABIInternal)
	return l.Module.NewIdent(sp, name, fn)
}

func parseIntText(text string) (int64, bool) {
	text = strings.ReplaceAll(text, "_", "")
	n, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
