package parser

import (
	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/token"
)

// parseTopLevelDecl dispatches on the current token to the declaration
// parser for that keyword; it is shared between ParseProgram (module
// scope), SubsystemDecl bodies, and parseStmt's decl-in-statement-
// position case, matching spec.md §3's "declarations may appear wherever
// a statement may".
func (p *Parser) parseTopLevelDecl() ast.Decl {
	vis := p.parseVisibility()
	switch p.cur.Current().Kind {
	case token.VAR:
		return p.parseVarDecl(vis)
	case token.LET:
		return p.parseLetDecl(vis)
	case token.CONST:
		return p.parseConstDecl(vis)
	case token.TYPE:
		return p.parseTypedefDecl(vis)
	case token.STRUCT:
		return p.parseCompositeDecl(token.STRUCT, vis)
	case token.REGION:
		return p.parseCompositeDecl(token.REGION, vis)
	case token.GROUP:
		return p.parseCompositeDecl(token.GROUP, vis)
	case token.UNION:
		return p.parseCompositeDecl(token.UNION, vis)
	case token.ENUM:
		return p.parseEnumDecl(vis)
	case token.FN:
		return p.parseFunctionDeclOrDef(vis)
	case token.SUBSYSTEM:
		return p.parseSubsystemDecl(vis)
	case token.IMPORT:
		return p.parseImportAsExport(vis)
	case token.IDENT:
		if p.cur.Current().Literal == "export" {
			return p.parseExportDecl(vis)
		}
		p.errorf(ErrUnexpectedToken, "unexpected token %q at declaration position", p.cur.Current().Literal)
		p.synchronize()
		return nil
	default:
		p.errorf(ErrUnexpectedToken, "unexpected token %q at declaration position", p.cur.Current().Literal)
		p.synchronize()
		return nil
	}
}

// parseImportAsExport consumes `import "path";` — a bare dependency
// directive folded into the same token-position family as export since
// neither produces a value. It returns a TypedefDecl binding the path
// string to an OpaqueType of the same name; the lowerer binds that name
// and emits no IR for it.
func (p *Parser) parseImportAsExport(vis ast.Visibility) ast.Decl {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'import'
	name := ""
	if p.cur.Is(token.STRING) {
		name = p.cur.Current().Literal
		p.cur = p.cur.Advance()
	}
	p.skipSemi()
	return ast.NewTypedefDecl(p.span(start), name, ast.NewOpaqueType(p.span(start), name), vis)
}

func (p *Parser) parseVarDecl(vis ast.Visibility) ast.Decl {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'var'
	name := p.parseIdentName()
	var t ast.TypeNode = ast.NewInferredType(p.cur.Position())
	if p.cur.Is(token.COLON) {
		p.cur = p.cur.Advance()
		t = p.parseType()
	}
	var init ast.Expr
	if p.cur.Is(token.ASSIGN) {
		p.cur = p.cur.Advance()
		init = p.ParseExpr()
	}
	p.skipSemi()
	return ast.NewVarDecl(p.span(start), name, t, init, vis)
}

func (p *Parser) parseLetDecl(vis ast.Visibility) ast.Decl {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'let'
	name := p.parseIdentName()
	var t ast.TypeNode = ast.NewInferredType(p.cur.Position())
	if p.cur.Is(token.COLON) {
		p.cur = p.cur.Advance()
		t = p.parseType()
	}
	var init ast.Expr
	if p.cur.Is(token.ASSIGN) {
		p.cur = p.cur.Advance()
		init = p.ParseExpr()
	}
	p.skipSemi()
	return ast.NewLetDecl(p.span(start), name, t, init, vis)
}

func (p *Parser) parseConstDecl(vis ast.Visibility) ast.Decl {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'const'
	name := p.parseIdentName()
	var t ast.TypeNode = ast.NewInferredType(p.cur.Position())
	if p.cur.Is(token.COLON) {
		p.cur = p.cur.Advance()
		t = p.parseType()
	}
	p.expect(token.ASSIGN, ErrInvalidSyntax, "'='")
	init := p.ParseExpr()
	p.skipSemi()
	return ast.NewConstDecl(p.span(start), name, t, init, vis)
}

func (p *Parser) parseTypedefDecl(vis ast.Visibility) ast.Decl {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'type'
	name := p.parseIdentName()
	p.expect(token.ASSIGN, ErrInvalidSyntax, "'='")
	underlying := p.parseType()
	p.skipSemi()
	return ast.NewTypedefDecl(p.span(start), name, underlying, vis)
}

func (p *Parser) parseSubsystemDecl(vis ast.Visibility) ast.Decl {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'subsystem'
	name := p.parseIdentName()
	var depends []string
	if p.cur.Is(token.WITH) {
		p.cur = p.cur.Advance()
		p.expect(token.LBRACK, ErrInvalidSyntax, "'['")
		for !p.cur.Is(token.RBRACK) && !p.cur.IsEOF() {
			depends = append(depends, p.parseIdentName())
			if p.cur.Is(token.COMMA) {
				p.cur = p.cur.Advance()
				continue
			}
			break
		}
		p.expect(token.RBRACK, ErrMissingRBracket, "']'")
	}
	p.expect(token.LBRACE, ErrInvalidSyntax, "'{'")
	var body []ast.Decl
	for !p.cur.Is(token.RBRACE) && !p.cur.IsEOF() {
		d := p.parseTopLevelDecl()
		if d != nil {
			body = append(body, d)
		}
	}
	p.expect(token.RBRACE, ErrMissingRBrace, "'}'")
	return ast.NewSubsystemDecl(p.span(start), name, depends, body, vis)
}

// parseExportDecl parses `export "abi_name" decl;` — "export" is a
// contextual keyword (a plain identifier the lexer does not reserve)
// recognized by spelling at declaration position, the way the teacher's
// parser recognizes soft keywords in expressions_contracts.go.
func (p *Parser) parseExportDecl(vis ast.Visibility) ast.Decl {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'export'
	abiName := ""
	if p.cur.Is(token.STRING) {
		abiName = p.cur.Current().Literal
		p.cur = p.cur.Advance()
	}
	inner := p.parseTopLevelDecl()
	return ast.NewExportDecl(p.span(start), abiName, inner)
}

func (p *Parser) parseParamList() (params []*ast.ParamDecl, variadic bool) {
	p.expect(token.LPAREN, ErrMissingLParen, "'('")
	for !p.cur.Is(token.RPAREN) && !p.cur.IsEOF() {
		if p.cur.Is(token.ELLIPSIS) {
			p.cur = p.cur.Advance()
			variadic = true
			break
		}
		start := p.cur.Current().Pos
		name := p.parseIdentName()
		var t ast.TypeNode = ast.NewInferredType(p.cur.Position())
		if p.cur.Is(token.COLON) {
			p.cur = p.cur.Advance()
			t = p.parseType()
		}
		var def ast.Expr
		if p.cur.Is(token.ASSIGN) {
			p.cur = p.cur.Advance()
			def = p.parseAssignExpr()
		}
		params = append(params, ast.NewParamDecl(p.span(start), name, t, def))
		if p.cur.Is(token.COMMA) {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN, ErrMissingRParen, "')'")
	return params, variadic
}

func (p *Parser) parsePurity() ast.Purity {
	switch p.cur.Current().Kind {
	case token.IDENT:
		switch p.cur.Current().Literal {
		case "pure":
			p.cur = p.cur.Advance()
			return ast.Pure
		case "quasipure":
			p.cur = p.cur.Advance()
			return ast.Quasipure
		case "retropure":
			p.cur = p.cur.Advance()
			return ast.Retropure
		}
	}
	return ast.ImpureThreadUnsafe
}

func (p *Parser) parseFunctionDeclOrDef(vis ast.Visibility) ast.Decl {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'fn'
	purity := p.parsePurity()
	name := p.parseIdentName()
	params, variadic := p.parseParamList()
	var ret ast.TypeNode = ast.NewVoidType(p.cur.Position())
	if p.cur.Is(token.ARROW) {
		p.cur = p.cur.Advance()
		ret = p.parseType()
	}
	if p.cur.Is(token.SEMI) {
		p.cur = p.cur.Advance()
		fd := ast.NewFunctionDecl(p.span(start), name, params, ret, vis)
		fd.Variadic = variadic
		fd.Purity = purity
		return fd
	}
	var pre, post []ast.Expr
	for p.cur.Is(token.IDENT) && (p.cur.Current().Literal == "requires" || p.cur.Current().Literal == "ensures") {
		isPost := p.cur.Current().Literal == "ensures"
		p.cur = p.cur.Advance()
		cond := p.parseAssignExpr()
		if isPost {
			post = append(post, cond)
		} else {
			pre = append(pre, cond)
		}
	}
	body := p.parseBlockStmt()
	fn := ast.NewFunctionDef(p.span(start), name, params, ret, body, vis)
	fn.Variadic = variadic
	fn.Purity = purity
	fn.Pre = pre
	fn.Post = post
	return fn
}
