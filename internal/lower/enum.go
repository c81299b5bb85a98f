package lower

import (
	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/ir"
)

// lowerEnum lowers an enum declaration: each item is published as a
// fully-qualified named constant `EnumName::Item` (spec.md §4.4.3).
// An item with an explicit value uses it verbatim; an implicit item
// takes the predecessor's value + 1, defaulting to 0 for the first.
func (l *Lowerer) lowerEnum(x *ast.EnumDecl) []Node {
	if sc := l.currentScope(); sc != nil {
		if _, ok := sc.bindings[x.Name]; ok {
			l.reportTypeRedef(x.Span(), x.Name)
			return nil
		}
	}

	underlying := l.Module.PrimitiveType(x.Span(), ir.PrimI32)
	if x.UnderlyingType != nil {
		underlying = asPrimitive(l.lowerType(x.UnderlyingType), underlying)
	}
	l.bindName(x.Name, underlying)

	l.pushNamespace(x.Name)
	defer l.popNamespace()

	var out []Node
	next := int64(0)
	for _, item := range x.Items {
		val := next
		if item.Value != nil {
			v := l.lowerExpr(item.Value)
			if lit, ok := v.(*ir.IntLit); ok {
				val = lit.Value
			}
		}
		next = val + 1

		qualified := l.qualify(item.Name)
		g := l.Module.NewGlobal(item.Span(), qualified, underlying,
			l.Module.NewIntLit(item.Span(), val, underlying), true, ir.ABIInternal)
		l.bindName(item.Name, g)
		out = append(out, g)
	}
	return out
}

func asPrimitive(n Node, fallback *ir.PrimitiveType) *ir.PrimitiveType {
	if p, ok := n.(*ir.PrimitiveType); ok {
		return p
	}
	return fallback
}
