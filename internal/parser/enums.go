package parser

import (
	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/token"
)

// parseEnumDecl parses `enum Name[: Underlying] { item[ = value], ... }`.
// A nil Value on an EnumItemDecl means the value is implicit, propagated
// from the previous item at lowering time (spec.md §4.4.3).
func (p *Parser) parseEnumDecl(vis ast.Visibility) ast.Decl {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'enum'
	name := p.parseIdentName()
	var underlying ast.TypeNode
	if p.cur.Is(token.COLON) {
		p.cur = p.cur.Advance()
		underlying = p.parseType()
	}
	p.expect(token.LBRACE, ErrInvalidSyntax, "'{'")
	var items []*ast.EnumItemDecl
	for !p.cur.Is(token.RBRACE) && !p.cur.IsEOF() {
		itemStart := p.cur.Current().Pos
		itemName := p.parseIdentName()
		var value ast.Expr
		if p.cur.Is(token.ASSIGN) {
			p.cur = p.cur.Advance()
			value = p.parseAssignExpr()
		}
		items = append(items, ast.NewEnumItemDecl(p.span(itemStart), itemName, value))
		if p.cur.Is(token.COMMA) {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	p.expect(token.RBRACE, ErrMissingRBrace, "'}'")
	return ast.NewEnumDecl(p.span(start), name, underlying, items, vis)
}
