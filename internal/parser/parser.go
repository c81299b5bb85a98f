// Package parser implements a recursive-descent, precedence-climbing
// parser that turns a lexer.TokenStream into an internal/ast tree
// (spec.md §3, §6). It depends only on lexer.TokenStream, never on
// *lexer.Lexer, so any conforming scanner can feed it.
package parser

import (
	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/lexer"
	"github.com/nitrate-lang/nitratec/internal/token"
)

// Parser holds the cursor over the token stream and the errors
// accumulated so far. Unlike the teacher's TokenCursor, the Parser
// itself is mutable — it reassigns p.cur as it consumes tokens — while
// still getting backtracking for free via TokenCursor.Mark/ResetTo.
type Parser struct {
	cur  *TokenCursor
	errs []*ParseError
}

// New creates a Parser over s.
func New(s lexer.TokenStream) *Parser {
	return &Parser{cur: NewTokenCursor(s)}
}

// Errors returns every error recorded during the last Parse call.
func (p *Parser) Errors() []*ParseError { return p.errs }

func (p *Parser) errorf(code, format string, args ...any) {
	p.errs = append(p.errs, newParseError(p.cur.Position(), code, format, args...))
}

func (c *TokenCursor) Position() token.Position { return c.Current().Pos }

// ParseProgram parses an entire translation unit: a sequence of
// top-level declarations wrapped in an implicit root Block, per
// spec.md §2 ("AST rooted at a Block node").
func (p *Parser) ParseProgram() *ast.Program {
	start := p.cur.Position()
	var stmts []ast.Stmt
	for !p.cur.IsEOF() {
		d := p.parseTopLevelDecl()
		if d != nil {
			stmts = append(stmts, declAsStmt(d))
		}
	}
	end := p.cur.Position()
	root := ast.NewBlockStmt(token.Span{Start: start, End: end}, ast.SafetyUnknown, stmts)
	return &ast.Program{Root: root}
}

// declStmt adapts a Decl so it can sit directly in the root Block's
// statement list; declarations are themselves not Stmt, so lowering
// walks Program.Root looking for this wrapper (spec.md §4.4.1 treats a
// top-level declaration list and a block's statement list uniformly).
type declStmt struct {
	ast.Node
	decl ast.Decl
}

func (declStmt) stmtNode() {}

func declAsStmt(d ast.Decl) ast.Stmt {
	return declStmt{Node: d, decl: d}
}

// Decl unwraps the declaration a declStmt carries, for lowering's walk.
func (d declStmt) Decl() ast.Decl { return d.decl }

func (p *Parser) span(start token.Position) token.Span {
	return token.Span{Start: start, End: p.cur.Position()}
}

func (p *Parser) expect(k token.Kind, code, what string) bool {
	if p.cur.Is(k) {
		p.cur = p.cur.Advance()
		return true
	}
	p.errorf(code, "expected %s, got %q", what, p.cur.Current().Literal)
	return false
}

func (p *Parser) parseIdentName() string {
	if !p.cur.Is(token.IDENT) {
		p.errorf(ErrExpectedIdent, "expected identifier, got %q", p.cur.Current().Literal)
		return ""
	}
	name := p.cur.Current().Literal
	p.cur = p.cur.Advance()
	return name
}

func (p *Parser) parseVisibility() ast.Visibility {
	switch p.cur.Current().Kind {
	case token.PUB:
		p.cur = p.cur.Advance()
		return ast.VisPublic
	case token.SEC:
		p.cur = p.cur.Advance()
		return ast.VisPrivate
	case token.PRO:
		p.cur = p.cur.Advance()
		return ast.VisProtected
	default:
		return ast.VisPublic
	}
}

// ---- Expression parsing (Pratt / precedence-climbing) ----

type precedence int

const (
	precLowest precedence = iota
	precAssign
	precTernary
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precUnary
	precPostfix
	precCall
)

var binaryPrecedence = map[token.Kind]precedence{
	token.ASSIGN: precAssign, token.PLUS_ASSIGN: precAssign, token.MINUS_ASSIGN: precAssign,
	token.STAR_ASSIGN: precAssign, token.SLASH_ASSIGN: precAssign, token.PERCENT_ASSIGN: precAssign,
	token.AMP_ASSIGN: precAssign, token.PIPE_ASSIGN: precAssign, token.CARET_ASSIGN: precAssign,
	token.SHL_ASSIGN: precAssign, token.SHR_ASSIGN: precAssign,

	token.PIPEPIPE: precLogicalOr, token.OR: precLogicalOr,
	token.AMPAMP:   precLogicalAnd, token.AND: precLogicalAnd,
	token.XOR: precLogicalAnd,

	token.PIPE:  precBitOr,
	token.CARET: precBitXor,
	token.AMP:   precBitAnd,

	token.EQ: precEquality, token.NEQ: precEquality,
	token.LT: precRelational, token.GT: precRelational, token.LE: precRelational, token.GE: precRelational,
	token.IS: precRelational, token.IN: precRelational, token.AS: precRelational, token.BITCAST_AS: precRelational,
	token.REINTERPRET_AS: precRelational,

	token.SHL: precShift, token.SHR: precShift,
	token.PLUS: precAdditive, token.MINUS: precAdditive,
	token.STAR: precMultiplicative, token.SLASH: precMultiplicative, token.PERCENT: precMultiplicative,
}

// ParseExpr parses a full expression at the lowest precedence, including
// top-level comma sequencing (spec.md §3's sequence-point expression).
func (p *Parser) ParseExpr() ast.Expr {
	first := p.parseAssignExpr()
	if !p.cur.Is(token.COMMA) {
		return first
	}
	start := first.Span().Start
	items := []ast.Expr{first}
	for p.cur.Is(token.COMMA) {
		p.cur = p.cur.Advance()
		items = append(items, p.parseAssignExpr())
	}
	return ast.NewSequenceExpr(p.span(start), items)
}

func (p *Parser) parseAssignExpr() ast.Expr {
	return p.parseBinaryExpr(precLowest)
}

func (p *Parser) parseBinaryExpr(min precedence) ast.Expr {
	left := p.parseTernaryExpr()
	for {
		op := p.cur.Current()
		prec, ok := binaryPrecedence[op.Kind]
		if !ok || prec <= min {
			return left
		}
		p.cur = p.cur.Advance()
		nextMin := prec
		if prec == precAssign {
			nextMin = precAssign - 1 // right-associative
		}
		right := p.parseBinaryExpr(nextMin)
		left = ast.NewBinaryExpr(token.Span{Start: left.Span().Start, End: right.Span().End}, left, op.Kind.String(), right)
	}
}

func (p *Parser) parseTernaryExpr() ast.Expr {
	cond := p.parseUnaryExpr()
	if !p.cur.Is(token.QUESTION) {
		return cond
	}
	p.cur = p.cur.Advance()
	then := p.parseAssignExpr()
	p.expect(token.COLON, ErrInvalidSyntax, "':'")
	els := p.parseAssignExpr()
	return ast.NewTernaryExpr(token.Span{Start: cond.Span().Start, End: els.Span().End}, cond, then, els)
}

var unaryOps = map[token.Kind]bool{
	token.MINUS: true, token.BANG: true, token.NOT: true, token.TILDE: true,
	token.AMP: true, token.STAR: true, token.INC: true, token.DEC: true,
	token.SIZEOF: true, token.ALIGNOF: true, token.BITSIZEOF: true, token.TYPEOF: true,
	token.OFFSETOF: true,
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	tok := p.cur.Current()
	if unaryOps[tok.Kind] {
		p.cur = p.cur.Advance()
		operand := p.parseUnaryExpr()
		return ast.NewUnaryExpr(token.Span{Start: tok.Pos, End: operand.Span().End}, tok.Kind.String(), operand)
	}
	return p.parsePostfixExpr()
}

func (p *Parser) parsePostfixExpr() ast.Expr {
	expr := p.parsePrimaryExpr()
	for {
		switch p.cur.Current().Kind {
		case token.DOT:
			p.cur = p.cur.Advance()
			field := p.parseIdentName()
			expr = ast.NewFieldAccessExpr(p.span(expr.Span().Start), expr, field)
		case token.LPAREN:
			expr = p.parseCallArgs(expr)
		case token.LBRACK:
			expr = p.parseIndexOrSlice(expr)
		case token.INC, token.DEC:
			op := p.cur.Current()
			p.cur = p.cur.Advance()
			expr = ast.NewPostUnaryExpr(p.span(expr.Span().Start), expr, op.Kind.String())
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallArgs(callee ast.Expr) ast.Expr {
	start := callee.Span().Start
	p.cur = p.cur.Advance() // consume '('
	var args []ast.Expr
	for !p.cur.Is(token.RPAREN) && !p.cur.IsEOF() {
		args = append(args, p.parseAssignExpr())
		if p.cur.Is(token.COMMA) {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN, ErrMissingRParen, "')'")
	return ast.NewCallExpr(p.span(start), callee, args)
}

func (p *Parser) parseIndexOrSlice(obj ast.Expr) ast.Expr {
	start := obj.Span().Start
	p.cur = p.cur.Advance() // consume '['
	var low ast.Expr
	if !p.cur.Is(token.COLON) {
		low = p.parseAssignExpr()
	}
	if p.cur.Is(token.COLON) {
		p.cur = p.cur.Advance()
		var high ast.Expr
		if !p.cur.Is(token.RBRACK) {
			high = p.parseAssignExpr()
		}
		p.expect(token.RBRACK, ErrMissingRBracket, "']'")
		return ast.NewSliceExpr(p.span(start), obj, low, high)
	}
	p.expect(token.RBRACK, ErrMissingRBracket, "']'")
	return ast.NewIndexExpr(p.span(start), obj, low)
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	tok := p.cur.Current()
	switch tok.Kind {
	case token.IDENT:
		p.cur = p.cur.Advance()
		if p.cur.Is(token.DOTDOT) {
			p.cur = p.cur.Advance()
			end := p.parseAssignExpr()
			return ast.NewRangeExpr(p.span(tok.Pos), ast.NewIdentifier(token.Span{Start: tok.Pos, End: tok.Pos}, tok.Literal), end)
		}
		return ast.NewIdentifier(token.Span{Start: tok.Pos, End: tok.Pos}, tok.Literal)
	case token.INT:
		p.cur = p.cur.Advance()
		return ast.NewIntLiteral(token.Span{Start: tok.Pos, End: tok.Pos}, tok.Literal)
	case token.FLOAT:
		p.cur = p.cur.Advance()
		return ast.NewFloatLiteral(token.Span{Start: tok.Pos, End: tok.Pos}, tok.Literal)
	case token.STRING:
		p.cur = p.cur.Advance()
		return ast.NewStringLiteral(token.Span{Start: tok.Pos, End: tok.Pos}, tok.Literal)
	case token.CHAR:
		p.cur = p.cur.Advance()
		r, _ := utf8DecodeFirst(tok.Literal)
		return ast.NewCharLiteral(token.Span{Start: tok.Pos, End: tok.Pos}, r)
	case token.TRUE:
		p.cur = p.cur.Advance()
		return ast.NewBoolLiteral(token.Span{Start: tok.Pos, End: tok.Pos}, true)
	case token.FALSE:
		p.cur = p.cur.Advance()
		return ast.NewBoolLiteral(token.Span{Start: tok.Pos, End: tok.Pos}, false)
	case token.NULL:
		p.cur = p.cur.Advance()
		return ast.NewNullLiteral(token.Span{Start: tok.Pos, End: tok.Pos})
	case token.UNDEF:
		p.cur = p.cur.Advance()
		return ast.NewUndefLiteral(token.Span{Start: tok.Pos, End: tok.Pos})
	case token.LPAREN:
		p.cur = p.cur.Advance()
		e := p.ParseExpr()
		p.expect(token.RPAREN, ErrMissingRParen, "')'")
		return e
	case token.LBRACK:
		return p.parseListExpr()
	case token.LBRACE:
		b := p.parseBlockStmt()
		return ast.NewStmtExpr(b.Span(), b)
	default:
		p.errorf(ErrNoPrefixParse, "unexpected token %q in expression", tok.Literal)
		p.cur = p.cur.Advance()
		return ast.NewUndefLiteral(token.Span{Start: tok.Pos, End: tok.Pos})
	}
}

func (p *Parser) parseListExpr() ast.Expr {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // '['
	var elems []ast.Expr
	for !p.cur.Is(token.RBRACK) && !p.cur.IsEOF() {
		key := p.parseAssignExpr()
		if p.cur.Is(token.COLON) {
			p.cur = p.cur.Advance()
			val := p.parseAssignExpr()
			elems = append(elems, ast.NewAssocExpr(token.Span{Start: key.Span().Start, End: val.Span().End}, key, val))
		} else {
			elems = append(elems, key)
		}
		if p.cur.Is(token.COMMA) {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	p.expect(token.RBRACK, ErrMissingRBracket, "']'")
	return ast.NewListExpr(p.span(start), elems)
}

func utf8DecodeFirst(s string) (rune, int) {
	for _, r := range s {
		return r, len(s)
	}
	return 0, 0
}
