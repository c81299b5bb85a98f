package lower

import (
	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/diag"
	"github.com/nitrate-lang/nitratec/internal/ir"
)

// lowerDecl lowers one declaration to the (possibly empty) sequence of
// IR declarations it contributes to the enclosing scope (spec.md
// §4.4.2). Composite/typedef/enum-type declarations additionally bind
// their name in the current scope as a side effect, so a later
// identifier or UnresolvedType referencing them resolves without a
// separate symbol table.
func (l *Lowerer) lowerDecl(d ast.Decl) []Node {
	switch x := d.(type) {
	case *ast.TypedefDecl:
		if sc := l.currentScope(); sc != nil {
			if _, ok := sc.bindings[x.Name]; ok {
				l.Sink.Report(diag.Error, x.Span(), "TypeRedefinition", "%q is already declared in this scope", x.Name)
				return nil
			}
		}
		t := l.lowerType(x.Underlying)
		l.bindName(x.Name, t)
		return nil

	case *ast.VarDecl:
		return l.lowerVarLike(x, x.Name, x.Type, x.Init, false)
	case *ast.LetDecl:
		return l.lowerVarLike(x, x.Name, x.Type, x.Init, true)
	case *ast.ConstDecl:
		return l.lowerVarLike(x, x.Name, x.Type, x.Init, true)

	case *ast.SubsystemDecl:
		l.pushNamespace(x.Name)
		defer l.popNamespace()
		var out []Node
		for _, inner := range x.Body {
			out = append(out, l.lowerDecl(inner)...)
		}
		return out

	case *ast.ExportDecl:
		abi, ok := exportABI(x.ABIName)
		if !ok {
			l.abandonItem(x, "unrecognized export ABI name %q", x.ABIName)
			return nil
		}
		savedABI := l.abiMode
		l.abiMode = abi
		inner := l.lowerDecl(x.Inner)
		l.abiMode = savedABI
		out := make([]Node, len(inner))
		for i, n := range inner {
			out[i] = l.Module.NewExtern(x.Span(), abi, n)
		}
		return out

	case *ast.FunctionDecl:
		return []Node{l.lowerFunctionSignature(x)}

	case *ast.FunctionDef:
		return []Node{l.lowerFunctionDef(x)}

	case *ast.StructDecl:
		return l.lowerComposite(x.Span(), x.Name, x.Fields, x.Methods, x.StaticMethods, func(fields []ir.TypeField) Node {
			return l.Module.NewStructType(x.Span(), fields)
		})
	case *ast.RegionDecl:
		return l.lowerComposite(x.Span(), x.Name, x.Fields, x.Methods, x.StaticMethods, func(fields []ir.TypeField) Node {
			return l.Module.NewStructType(x.Span(), fields)
		})
	case *ast.GroupDecl:
		return l.lowerComposite(x.Span(), x.Name, x.Fields, x.Methods, x.StaticMethods, func(fields []ir.TypeField) Node {
			return l.Module.NewStructType(x.Span(), l.layoutGroupFields(fields))
		})
	case *ast.UnionDecl:
		return l.lowerComposite(x.Span(), x.Name, x.Fields, x.Methods, x.StaticMethods, func(fields []ir.TypeField) Node {
			return l.Module.NewUnionType(x.Span(), fields)
		})

	case *ast.EnumDecl:
		return l.lowerEnum(x)

	default:
		l.abandonItem(d, "unrecognized declaration node %T", d)
		return nil
	}
}

// bindName registers name (qualified by the current ns_prefix) in the
// current scope if one is open, else as a module-level name.
func (l *Lowerer) bindName(name string, n Node) {
	qualified := l.qualify(name)
	if sc := l.currentScope(); sc != nil {
		sc.define(name, n)
		sc.define(qualified, n)
		return
	}
	l.globals[qualified] = n
	l.globals[name] = n
}

func exportABI(name string) (ir.ABI, bool) {
	switch name {
	case "":
		return ir.ABIDefault, true
	case "q":
		return ir.ABIQuix, true
	case "c":
		return ir.ABIC, true
	}
	return ir.ABIDefault, false
}

// lowerVarLike lowers var/let/const to either a Local (inside a
// function) or a Global (at module or namespace scope), per
// inside_function (spec.md §4.4.1). A name already bound in the
// current scope is a VariableRedefinition: reported and the whole
// declaration skipped, per spec.md §4.4.9.
func (l *Lowerer) lowerVarLike(d ast.Decl, name string, t ast.TypeNode, init ast.Expr, readonly bool) []Node {
	if sc := l.currentScope(); sc != nil {
		if _, ok := sc.bindings[name]; ok {
			l.Sink.Report(diag.Error, d.Span(), "VariableRedefinition",
				"%q is already declared in this scope", name)
			return nil
		}
	}
	typ := l.lowerType(t)
	var val Node
	if init != nil {
		val = l.lowerExpr(init)
	}
	qualified := l.qualify(name)
	if l.insideFunction {
		n := l.Module.NewLocal(d.Span(), qualified, typ, val, readonly, ir.ABIDefault)
		l.bindName(name, n)
		return []Node{n}
	}
	n := l.Module.NewGlobal(d.Span(), qualified, typ, val, readonly, ir.ABIInternal)
	l.bindName(name, n)
	return []Node{n}
}
