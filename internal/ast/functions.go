package ast

import "github.com/nitrate-lang/nitratec/internal/token"

// ParamDecl is one function parameter: a name, type, and optional default.
type ParamDecl struct {
	base
	declMarker
	Name    string
	Type    TypeNode
	Default Expr
}

func NewParamDecl(sp token.Span, name string, t TypeNode, def Expr) *ParamDecl {
	return &ParamDecl{base: mk(KindParamDecl, sp), Name: name, Type: t, Default: def}
}

// FunctionDecl is a signature-only function declaration (a prototype,
// `fn name(params) -> ret;`), used for forward declarations and foreign
// imports.
type FunctionDecl struct {
	base
	declMarker
	Name     string
	Params   []*ParamDecl
	Variadic bool
	RetType  TypeNode
	Purity   Purity
	NoReturn bool
	Foreign  bool
	Vis      Visibility
}

func NewFunctionDecl(sp token.Span, name string, params []*ParamDecl, ret TypeNode, vis Visibility) *FunctionDecl {
	return &FunctionDecl{base: mk(KindFunctionDecl, sp), Name: name, Params: params, RetType: ret, Vis: vis}
}

// FunctionDef is a full function definition with a body and optional
// contract clauses. Pre/Post hold `requires`/`ensures`-style boolean
// conditions as parsed; the lowering pass neither lowers nor checks
// them. Captures lists names pulled from
// an enclosing scope when the definition appears nested.
type FunctionDef struct {
	base
	declMarker
	Name     string
	Params   []*ParamDecl
	Variadic bool
	RetType  TypeNode
	Purity   Purity
	NoReturn bool
	Captures []string
	Pre      []Expr
	Post     []Expr
	Body     *BlockStmt
	Vis      Visibility
}

func NewFunctionDef(sp token.Span, name string, params []*ParamDecl, ret TypeNode, body *BlockStmt, vis Visibility) *FunctionDef {
	return &FunctionDef{base: mk(KindFunctionDef, sp), Name: name, Params: params, RetType: ret, Body: body, Vis: vis}
}
