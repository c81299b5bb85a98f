package lower

import (
	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/diag"
	"github.com/nitrate-lang/nitratec/internal/ir"
	"github.com/nitrate-lang/nitratec/internal/token"
)

func (l *Lowerer) lowerParams(params []*ast.ParamDecl) []ir.Param {
	out := make([]ir.Param, len(params))
	for i, p := range params {
		out[i] = ir.Param{Name: p.Name, Type: l.lowerType(p.Type)}
	}
	return out
}

// lowerFunctionSignature lowers a prototype-only FunctionDecl to an Fn
// with a nil Body (spec.md's forward-declaration / foreign-import use
// case).
func (l *Lowerer) lowerFunctionSignature(x *ast.FunctionDecl) Node {
	qualified := l.qualify(x.Name)
	fn := l.Module.NewFn(x.Span(), qualified, l.lowerParams(x.Params), l.lowerType(x.RetType), nil, l.abiMode)
	l.bindName(x.Name, fn)
	return fn
}

// lowerFunctionDef lowers a full function definition. The Fn node is
// bound to its name *before* its body is lowered, so a recursive call
// resolves to the same Ident.Ref back-reference the traversal engine
// deliberately treats as non-structural (spec.md Design Notes §9).
func (l *Lowerer) lowerFunctionDef(x *ast.FunctionDef) Node {
	qualified := l.qualify(x.Name)
	retType := l.lowerType(x.RetType)
	params := l.lowerParams(x.Params)

	fn := l.Module.NewFn(x.Span(), qualified, params, retType, nil, l.abiMode)
	l.bindName(x.Name, fn)

	savedInside, savedReturn := l.insideFunction, l.returnType
	l.insideFunction = true
	l.returnType = retType
	l.pushScope()
	for i, p := range x.Params {
		l.defineLocal(p.Name, paramRef(params[i]))
	}
	fn.Body = l.lowerBlock(x.Body)
	l.popScope()
	l.insideFunction, l.returnType = savedInside, savedReturn
	return fn
}

// paramRef wraps a lowered parameter as the Node a body-local Ident
// resolves to; parameters have no Local/Global node of their own; they
// are bound structurally in Fn.Params, so this is the closest stand-in
// a resolve() lookup can use.
func paramRef(p ir.Param) Node { return p.Type }

// lowerComposite lowers a struct/region/group/union declaration: the
// composite type itself (via build, which the caller supplies per
// flavor), plus its instance and static methods as ordinary
// namespace-qualified functions. A name already bound in the current
// scope is a TypeRedefinition.
func (l *Lowerer) lowerComposite(sp token.Span, name string, fields []*ast.CompositeFieldDecl,
	methods, staticMethods []*ast.FunctionDef, build func([]ir.TypeField) Node) []Node {

	if sc := l.currentScope(); sc != nil {
		if _, ok := sc.bindings[name]; ok {
			l.reportTypeRedef(sp, name)
			return nil
		}
	} else if _, ok := l.globals[l.qualify(name)]; ok {
		l.reportTypeRedef(sp, name)
		return nil
	}

	typeFields := make([]ir.TypeField, len(fields))
	for i, f := range fields {
		typeFields[i] = ir.TypeField{Name: f.Name, Type: l.lowerType(f.Type)}
	}
	t := build(typeFields)
	l.bindName(name, t)

	l.pushComposite(name)
	defer l.popComposite()
	l.pushNamespace(name)
	defer l.popNamespace()

	var out []Node
	for _, m := range methods {
		out = append(out, l.lowerFunctionDef(m))
	}
	for _, m := range staticMethods {
		out = append(out, l.lowerFunctionDef(m))
	}
	return out
}

func (l *Lowerer) reportTypeRedef(sp token.Span, name string) {
	l.Sink.Report(diag.Error, sp, "TypeRedefinition", "%q is already declared in this scope", name)
}
