package parser

import (
	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/token"
)

// primitiveNames maps the spelled-out primitive type name to its ast.Kind.
// Primitive type names are plain identifiers in the token stream (the
// lexer has no dedicated U8/I32/... kinds), so the parser recognizes
// them by spelling, the way the teacher's parser recognizes built-in
// type names inside parseType (internal/parser/types.go).
var primitiveNames = map[string]ast.Kind{
	"u1": ast.KindU1, "u8": ast.KindU8, "u16": ast.KindU16, "u32": ast.KindU32,
	"u64": ast.KindU64, "u128": ast.KindU128,
	"i8": ast.KindI8, "i16": ast.KindI16, "i32": ast.KindI32, "i64": ast.KindI64, "i128": ast.KindI128,
	"f16": ast.KindF16, "f32": ast.KindF32, "f64": ast.KindF64, "f128": ast.KindF128,
}

// parseType parses a type expression: pointers, references, arrays,
// tuples, function types, composite type literals, and named/templated
// types.
func (p *Parser) parseType() ast.TypeNode {
	tok := p.cur.Current()
	switch tok.Kind {
	case token.STAR:
		p.cur = p.cur.Advance()
		return ast.NewPointerType(p.span(tok.Pos), p.parseType())
	case token.AMP:
		p.cur = p.cur.Advance()
		return ast.NewReferenceType(p.span(tok.Pos), p.parseType())
	case token.LBRACK:
		return p.parseArrayType()
	case token.LPAREN:
		return p.parseTupleType()
	case token.FN:
		return p.parseFunctionType()
	case token.STRUCT:
		p.cur = p.cur.Advance()
		start := tok.Pos
		fields := p.parseCompositeTypeFields()
		return ast.NewStructType(p.span(start), fields)
	case token.REGION:
		p.cur = p.cur.Advance()
		start := tok.Pos
		fields := p.parseCompositeTypeFields()
		return ast.NewRegionType(p.span(start), fields)
	case token.GROUP:
		p.cur = p.cur.Advance()
		start := tok.Pos
		fields := p.parseCompositeTypeFields()
		return ast.NewGroupType(p.span(start), fields)
	case token.UNION:
		p.cur = p.cur.Advance()
		start := tok.Pos
		fields := p.parseCompositeTypeFields()
		return ast.NewUnionType(p.span(start), fields)
	case token.VOLATILE, token.SAFE, token.UNSAFE:
		// qualifiers the teacher ignores at the type level but the lexer
		// still tokenizes; skip and parse the underlying type.
		p.cur = p.cur.Advance()
		return p.parseType()
	case token.IDENT:
		return p.parseNamedType()
	default:
		p.errorf(ErrExpectedType, "expected a type, got %q", tok.Literal)
		p.cur = p.cur.Advance()
		return ast.NewUnresolvedType(token.Span{Start: tok.Pos, End: tok.Pos}, tok.Literal)
	}
}

func (p *Parser) parseNamedType() ast.TypeNode {
	tok := p.cur.Current()
	p.cur = p.cur.Advance()
	if k, ok := primitiveNames[tok.Literal]; ok {
		return ast.NewPrimitiveType(token.Span{Start: tok.Pos, End: tok.Pos}, k)
	}
	if tok.Literal == "void" {
		return ast.NewVoidType(token.Span{Start: tok.Pos, End: tok.Pos})
	}
	if tok.Literal == "auto" {
		return ast.NewInferredType(token.Span{Start: tok.Pos, End: tok.Pos})
	}
	if p.cur.Is(token.LT) {
		p.cur = p.cur.Advance()
		var args []ast.TypeNode
		for !p.cur.Is(token.GT) && !p.cur.IsEOF() {
			args = append(args, p.parseType())
			if p.cur.Is(token.COMMA) {
				p.cur = p.cur.Advance()
				continue
			}
			break
		}
		p.expect(token.GT, ErrInvalidSyntax, "'>'")
		return ast.NewTemplatedType(p.span(tok.Pos), tok.Literal, args)
	}
	return ast.NewUnresolvedType(token.Span{Start: tok.Pos, End: tok.Pos}, tok.Literal)
}

func (p *Parser) parseArrayType() ast.TypeNode {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // '['
	elem := p.parseType()
	var size ast.Expr
	if p.cur.Is(token.SEMI) {
		p.cur = p.cur.Advance()
		size = p.ParseExpr()
	}
	p.expect(token.RBRACK, ErrMissingRBracket, "']'")
	return ast.NewArrayType(p.span(start), elem, size)
}

func (p *Parser) parseTupleType() ast.TypeNode {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // '('
	var elems []ast.TypeNode
	for !p.cur.Is(token.RPAREN) && !p.cur.IsEOF() {
		elems = append(elems, p.parseType())
		if p.cur.Is(token.COMMA) {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN, ErrMissingRParen, "')'")
	return ast.NewTupleType(p.span(start), elems)
}

func (p *Parser) parseFunctionType() ast.TypeNode {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'fn'
	p.expect(token.LPAREN, ErrMissingLParen, "'('")
	var params []ast.TypeNode
	variadic := false
	for !p.cur.Is(token.RPAREN) && !p.cur.IsEOF() {
		if p.cur.Is(token.ELLIPSIS) {
			p.cur = p.cur.Advance()
			variadic = true
			break
		}
		params = append(params, p.parseType())
		if p.cur.Is(token.COMMA) {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN, ErrMissingRParen, "')'")
	var ret ast.TypeNode = ast.NewVoidType(p.cur.Position())
	if p.cur.Is(token.ARROW) {
		p.cur = p.cur.Advance()
		ret = p.parseType()
	}
	return ast.NewFunctionType(p.span(start), params, variadic, ret)
}

// parseCompositeTypeFields parses the shared `{ name: Type, ... }` field
// list body used by struct/region/group/union type literals (spec.md
// §4.4.3's shared composite-parsing loop).
func (p *Parser) parseCompositeTypeFields() []ast.CompositeTypeField {
	p.expect(token.LBRACE, ErrInvalidSyntax, "'{'")
	var fields []ast.CompositeTypeField
	for !p.cur.Is(token.RBRACE) && !p.cur.IsEOF() {
		name := p.parseIdentName()
		p.expect(token.COLON, ErrInvalidSyntax, "':'")
		t := p.parseType()
		fields = append(fields, ast.CompositeTypeField{Name: name, Type: t})
		if p.cur.Is(token.COMMA) || p.cur.Is(token.SEMI) {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	p.expect(token.RBRACE, ErrMissingRBrace, "'}'")
	return fields
}
