package parser

import (
	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/token"
)

// parseCompositeDecl parses struct/region/group/union declarations,
// which share one field+method body shape (spec.md §4.4.3): only the
// leading keyword and the Go constructor differ.
func (p *Parser) parseCompositeDecl(kw token.Kind, vis ast.Visibility) ast.Decl {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // consume composite keyword
	name := p.parseIdentName()
	var attrs *ast.AttrSet
	if p.cur.Is(token.WITH) {
		attrs = p.parseAttrSet()
	}
	fields, methods, statics := p.parseCompositeBody()
	sp := p.span(start)
	switch kw {
	case token.STRUCT:
		return ast.NewStructDecl(sp, name, fields, methods, statics, attrs, vis)
	case token.REGION:
		return ast.NewRegionDecl(sp, name, fields, methods, statics, attrs, vis)
	case token.GROUP:
		return ast.NewGroupDecl(sp, name, fields, methods, statics, attrs, vis)
	default:
		return ast.NewUnionDecl(sp, name, fields, methods, statics, attrs, vis)
	}
}

func (p *Parser) parseAttrSet() *ast.AttrSet {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'with'
	p.expect(token.LBRACK, ErrInvalidSyntax, "'['")
	var attrs []ast.Attr
	for !p.cur.Is(token.RBRACK) && !p.cur.IsEOF() {
		name := p.parseIdentName()
		var args []ast.Expr
		if p.cur.Is(token.LPAREN) {
			p.cur = p.cur.Advance()
			for !p.cur.Is(token.RPAREN) && !p.cur.IsEOF() {
				args = append(args, p.parseAssignExpr())
				if p.cur.Is(token.COMMA) {
					p.cur = p.cur.Advance()
					continue
				}
				break
			}
			p.expect(token.RPAREN, ErrMissingRParen, "')'")
		}
		attrs = append(attrs, ast.Attr{Name: name, Args: args})
		if p.cur.Is(token.COMMA) {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	p.expect(token.RBRACK, ErrMissingRBracket, "']'")
	return ast.NewAttrSet(p.span(start), attrs)
}

func (p *Parser) parseCompositeBody() (fields []*ast.CompositeFieldDecl, methods, statics []*ast.FunctionDef) {
	p.expect(token.LBRACE, ErrInvalidSyntax, "'{'")
	for !p.cur.Is(token.RBRACE) && !p.cur.IsEOF() {
		vis := p.parseVisibility()
		isStatic := false
		if p.cur.Is(token.STATIC) {
			isStatic = true
			p.cur = p.cur.Advance()
		}
		if p.cur.Is(token.FN) {
			fn := p.parseFunctionDeclOrDef(vis)
			if def, ok := fn.(*ast.FunctionDef); ok {
				if isStatic {
					statics = append(statics, def)
				} else {
					methods = append(methods, def)
				}
			}
			continue
		}
		fields = append(fields, p.parseCompositeField(vis))
	}
	p.expect(token.RBRACE, ErrMissingRBrace, "'}'")
	return fields, methods, statics
}

func (p *Parser) parseCompositeField(vis ast.Visibility) *ast.CompositeFieldDecl {
	start := p.cur.Current().Pos
	name := p.parseIdentName()
	p.expect(token.COLON, ErrInvalidSyntax, "':'")
	t := p.parseType()
	var attrs *ast.AttrSet
	if p.cur.Is(token.WITH) {
		attrs = p.parseAttrSet()
	}
	var def ast.Expr
	if p.cur.Is(token.ASSIGN) {
		p.cur = p.cur.Advance()
		def = p.parseAssignExpr()
	}
	if p.cur.Is(token.COMMA) || p.cur.Is(token.SEMI) {
		p.cur = p.cur.Advance()
	}
	return ast.NewCompositeFieldDecl(p.span(start), name, t, def, attrs, vis)
}
