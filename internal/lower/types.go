package lower

import (
	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/ir"
	"github.com/nitrate-lang/nitratec/internal/token"
)

// primKindOf maps a primitive-type ast.Kind to its ir.PrimKind, the
// static table spec.md §4.4.3 and §4.4.7 both rely on (the lowerer for
// the type node itself, the mangler for its one-letter code).
var primKindOf = map[ast.Kind]ir.PrimKind{
	ast.KindU1:   ir.PrimU1,
	ast.KindU8:   ir.PrimU8,
	ast.KindU16:  ir.PrimU16,
	ast.KindU32:  ir.PrimU32,
	ast.KindU64:  ir.PrimU64,
	ast.KindU128: ir.PrimU128,
	ast.KindI8:   ir.PrimI8,
	ast.KindI16:  ir.PrimI16,
	ast.KindI32:  ir.PrimI32,
	ast.KindI64:  ir.PrimI64,
	ast.KindI128: ir.PrimI128,
	ast.KindF16:  ir.PrimF16,
	ast.KindF32:  ir.PrimF32,
	ast.KindF64:  ir.PrimF64,
	ast.KindF128: ir.PrimF128,
}

// lowerType lowers a type expression. Composite flavor (struct/region
// drop straight through as StructType, group gets reordered and padded
// first) is the only place layout differs; everything else is a
// structural one-to-one translation.
func (l *Lowerer) lowerType(t ast.TypeNode) Node {
	if t == nil {
		return l.Module.VoidType(token.Span{})
	}
	sp := t.Span()
	switch tn := t.(type) {
	case *ast.PrimitiveType:
		if p, ok := primKindOf[tn.Kind()]; ok {
			return l.Module.PrimitiveType(sp, p)
		}
		l.abandonItem(tn, "unrecognized primitive type kind %s", tn.Kind())
		return nil
	case *ast.VoidType:
		return l.Module.VoidType(sp)
	case *ast.PointerType:
		return l.Module.NewPointerType(sp, l.lowerType(tn.Elem))
	case *ast.ReferenceType:
		// References carry no distinct IR representation (spec.md §3
		// treats `&T` as a safety-checked alias of `*T`); lower to the
		// same pointer-type shape the backend already understands.
		return l.Module.NewPointerType(sp, l.lowerType(tn.Elem))
	case *ast.OpaqueType:
		return l.Module.NewOpaqueType(sp, l.qualify(tn.Name))
	case *ast.StructType:
		return l.Module.NewStructType(sp, l.lowerTypeFields(tn.Fields))
	case *ast.RegionType:
		return l.Module.NewStructType(sp, l.lowerTypeFields(tn.Fields))
	case *ast.GroupType:
		return l.Module.NewStructType(sp, l.layoutGroupFields(l.lowerTypeFields(tn.Fields)))
	case *ast.UnionType:
		return l.Module.NewUnionType(sp, l.lowerTypeFields(tn.Fields))
	case *ast.ArrayType:
		return l.Module.NewArrayType(sp, l.lowerType(tn.Elem), l.constIntOrZero(tn.Size))
	case *ast.TupleType:
		// A tuple is an anonymous struct with positional field names
		// (spec.md's glossary: "TupleType ... structural anonymous
		// product"), so it shares StructType's IR shape.
		fields := make([]ir.TypeField, len(tn.Elems))
		for i, e := range tn.Elems {
			fields[i] = ir.TypeField{Name: tupleFieldName(i), Type: l.lowerType(e)}
		}
		return l.Module.NewStructType(sp, fields)
	case *ast.FunctionType:
		params := make([]Node, len(tn.Params))
		for i, p := range tn.Params {
			params[i] = l.lowerType(p)
		}
		return l.Module.NewFunctionType(sp, params, tn.Variadic, l.lowerType(tn.Return))
	case *ast.UnresolvedType:
		if n, ok := l.resolve(tn.Name); ok {
			return n
		}
		return l.Module.NewOpaqueType(sp, tn.Name)
	case *ast.InferredType:
		// Inference is a type-checker concern the lowerer does not
		// perform; an un-annotated declaration lowers its type as
		// pending, left for a later pass to fill in from the
		// initializer (spec.md §4.4.9 Open Question).
		return l.Module.NewTmp(sp, ir.TmpNamedType, "auto", nil)
	case *ast.TemplatedType:
		l.abandonUnimplemented(tn, "templates are not supported by this lowering pass")
		return nil
	default:
		l.abandonItem(tn, "unrecognized type node %T", tn)
		return nil
	}
}

func tupleFieldName(i int) string {
	const digits = "0123456789"
	if i < 10 {
		return "_" + string(digits[i])
	}
	s := []byte{'_'}
	return string(append(s, []byte(itoa(i))...))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func (l *Lowerer) lowerTypeFields(fields []ast.CompositeTypeField) []ir.TypeField {
	out := make([]ir.TypeField, len(fields))
	for i, f := range fields {
		out[i] = ir.TypeField{Name: f.Name, Type: l.lowerType(f.Type)}
	}
	return out
}

// constIntOrZero evaluates a (required to be constant) array size
// expression. Anything beyond a bare integer literal is outside this
// pass's scope (constant folding belongs to a later pass per spec.md
// §4.4.9's Open Question), so it degrades to 0 with a diagnostic rather
// than guessing.
func (l *Lowerer) constIntOrZero(e ast.Expr) int {
	if e == nil {
		return 0
	}
	if lit, ok := e.(*ast.IntLiteral); ok {
		n, ok := parseIntText(lit.Text)
		if ok {
			return int(n)
		}
	}
	l.Sink.Warnf(e.Span(), "array size must be a constant integer literal; treating as 0")
	return 0
}
