package parser

import (
	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/token"
)

// parseBlockStmt parses a `{ stmt* }` block, with an optional leading
// `safe`/`unsafe` qualifier already consumed by the caller when present.
func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	return p.parseBlockStmtWithSafety(ast.SafetyUnknown)
}

func (p *Parser) parseBlockStmtWithSafety(safety ast.SafetyMode) *ast.BlockStmt {
	start := p.cur.Current().Pos
	if !p.expect(token.LBRACE, ErrInvalidSyntax, "'{'") {
		return ast.NewBlockStmt(p.span(start), safety, nil)
	}
	var stmts []ast.Stmt
	for !p.cur.Is(token.RBRACE) && !p.cur.IsEOF() {
		before := p.cur.Mark()
		s := p.parseStmt()
		if s != nil {
			stmts = append(stmts, s)
		}
		if p.cur.Mark() == before {
			// parseStmt made no progress; force advance to avoid looping.
			p.cur = p.cur.Advance()
		}
	}
	p.expect(token.RBRACE, ErrMissingRBrace, "'}'")
	return ast.NewBlockStmt(p.span(start), safety, stmts)
}

// parseStmt dispatches on the current token to the right statement
// parser, mirroring the teacher's statement-keyword switch
// (internal/parser/control_flow.go).
func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Current().Kind {
	case token.LBRACE:
		return p.parseBlockStmtWithSafety(ast.SafetyUnknown)
	case token.SAFE:
		p.cur = p.cur.Advance()
		return p.parseBlockStmtWithSafety(ast.SafetySafe)
	case token.UNSAFE:
		p.cur = p.cur.Advance()
		return p.parseBlockStmtWithSafety(ast.SafetyUnsafe)
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.FOREACH:
		return p.parseForeachStmt()
	case token.FORM:
		return p.parseParallelFormStmt()
	case token.BREAK:
		tok := p.cur.Current()
		p.cur = p.cur.Advance()
		p.skipSemi()
		return ast.NewBreakStmt(token.Span{Start: tok.Pos, End: tok.Pos})
	case token.CONTINUE:
		tok := p.cur.Current()
		p.cur = p.cur.Advance()
		p.skipSemi()
		return ast.NewContinueStmt(token.Span{Start: tok.Pos, End: tok.Pos})
	case token.RETURN:
		return p.parseReturnStmt()
	case token.RETIF:
		return p.parseRetIfStmt()
	case token.RETZ:
		return p.parseRetZeroStmt()
	case token.RETV:
		return p.parseRetVoidIfStmt()
	case token.SWITCH:
		return p.parseSwitchStmt()
	case token.ASM:
		return p.parseInlineAsmStmt()
	case token.VAR, token.LET, token.CONST, token.TYPE, token.STRUCT, token.REGION,
		token.GROUP, token.UNION, token.ENUM, token.FN, token.SUBSYSTEM, token.IMPORT:
		d := p.parseTopLevelDecl()
		if d == nil {
			return nil
		}
		return declAsStmt(d)
	case token.VOLATILE:
		start := p.cur.Current().Pos
		p.cur = p.cur.Advance()
		body := p.parseStmt()
		return ast.NewVolatileStmt(p.span(start), body)
	default:
		start := p.cur.Current().Pos
		x := p.ParseExpr()
		p.skipSemi()
		return ast.NewExprStmt(p.span(start), x)
	}
}

func (p *Parser) skipSemi() {
	if p.cur.Is(token.SEMI) {
		p.cur = p.cur.Advance()
	}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'if'
	p.expect(token.LPAREN, ErrMissingLParen, "'('")
	cond := p.ParseExpr()
	p.expect(token.RPAREN, ErrMissingRParen, "')'")
	then := p.parseStmt()
	var els ast.Stmt
	if p.cur.Is(token.ELSE) {
		p.cur = p.cur.Advance()
		els = p.parseStmt()
	}
	return ast.NewIfStmt(p.span(start), cond, then, els)
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'while'
	p.expect(token.LPAREN, ErrMissingLParen, "'('")
	cond := p.ParseExpr()
	p.expect(token.RPAREN, ErrMissingRParen, "')'")
	body := p.parseStmt()
	return ast.NewWhileStmt(p.span(start), cond, body)
}

func (p *Parser) parseForStmt() ast.Stmt {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'for'
	p.expect(token.LPAREN, ErrMissingLParen, "'('")
	var init ast.Stmt
	if !p.cur.Is(token.SEMI) {
		init = p.parseStmt()
	} else {
		p.cur = p.cur.Advance()
	}
	var cond ast.Expr
	if !p.cur.Is(token.SEMI) {
		cond = p.ParseExpr()
	}
	p.expect(token.SEMI, ErrMissingSemicolon, "';'")
	var step ast.Stmt
	if !p.cur.Is(token.RPAREN) {
		stepStart := p.cur.Current().Pos
		stepExpr := p.ParseExpr()
		step = ast.NewExprStmt(p.span(stepStart), stepExpr)
	}
	p.expect(token.RPAREN, ErrMissingRParen, "')'")
	body := p.parseStmt()
	return ast.NewForStmt(p.span(start), init, cond, step, body)
}

func (p *Parser) parseForeachStmt() ast.Stmt {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'foreach'
	p.expect(token.LPAREN, ErrMissingLParen, "'('")
	name := p.parseIdentName()
	hasIndex := false
	indexVar := ""
	if p.cur.Is(token.COMMA) {
		p.cur = p.cur.Advance()
		indexVar = p.parseIdentName()
		hasIndex = true
	}
	p.expect(token.IN, ErrInvalidSyntax, "'in'")
	iterable := p.ParseExpr()
	p.expect(token.RPAREN, ErrMissingRParen, "')'")
	body := p.parseStmt()
	return ast.NewForeachStmt(p.span(start), name, hasIndex, indexVar, iterable, body)
}

func (p *Parser) parseParallelFormStmt() ast.Stmt {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'form'
	p.expect(token.LPAREN, ErrMissingLParen, "'('")
	name := p.parseIdentName()
	p.expect(token.IN, ErrInvalidSyntax, "'in'")
	iterable := p.ParseExpr()
	p.expect(token.RPAREN, ErrMissingRParen, "')'")
	body := p.parseStmt()
	return ast.NewParallelFormStmt(p.span(start), name, iterable, body)
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'return'
	var val ast.Expr
	if !p.cur.Is(token.SEMI) {
		val = p.ParseExpr()
	}
	p.skipSemi()
	return ast.NewReturnStmt(p.span(start), val)
}

func (p *Parser) parseRetIfStmt() ast.Stmt {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'retif'
	cond := p.parseAssignExpr()
	p.expect(token.COMMA, ErrInvalidSyntax, "','")
	val := p.ParseExpr()
	p.skipSemi()
	return ast.NewRetIfStmt(p.span(start), cond, val)
}

func (p *Parser) parseRetZeroStmt() ast.Stmt {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'retz'
	cond := p.ParseExpr()
	p.skipSemi()
	return ast.NewRetZeroStmt(p.span(start), cond)
}

func (p *Parser) parseRetVoidIfStmt() ast.Stmt {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'retv'
	cond := p.ParseExpr()
	p.skipSemi()
	return ast.NewRetVoidIfStmt(p.span(start), cond)
}

func (p *Parser) parseSwitchStmt() ast.Stmt {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // 'switch'
	p.expect(token.LPAREN, ErrMissingLParen, "'('")
	scrutinee := p.ParseExpr()
	p.expect(token.RPAREN, ErrMissingRParen, "')'")
	p.expect(token.LBRACE, ErrInvalidSyntax, "'{'")
	var cases []*ast.CaseStmt
	var def ast.Stmt
	for !p.cur.Is(token.RBRACE) && !p.cur.IsEOF() {
		switch p.cur.Current().Kind {
		case token.CASE:
			caseStart := p.cur.Current().Pos
			p.cur = p.cur.Advance()
			val := p.ParseExpr()
			p.expect(token.COLON, ErrInvalidSyntax, "':'")
			body := p.parseCaseBody()
			cases = append(cases, ast.NewCaseStmt(p.span(caseStart), val, body))
		case token.DEFAULT:
			p.cur = p.cur.Advance()
			p.expect(token.COLON, ErrInvalidSyntax, "':'")
			def = p.parseCaseBody()
		default:
			p.synchronize()
		}
	}
	p.expect(token.RBRACE, ErrMissingRBrace, "'}'")
	return ast.NewSwitchStmt(p.span(start), scrutinee, cases, def)
}

// parseCaseBody collects statements up to the next case/default/closing
// brace into an implicit block.
func (p *Parser) parseCaseBody() ast.Stmt {
	start := p.cur.Current().Pos
	var stmts []ast.Stmt
	for !p.cur.IsAny(token.CASE, token.DEFAULT, token.RBRACE) && !p.cur.IsEOF() {
		s := p.parseStmt()
		if s != nil {
			stmts = append(stmts, s)
		}
	}
	return ast.NewBlockStmt(p.span(start), ast.SafetyUnknown, stmts)
}

func (p *Parser) parseInlineAsmStmt() ast.Stmt {
	start := p.cur.Current().Pos
	p.cur = p.cur.Advance() // '__asm__'
	p.expect(token.LBRACE, ErrInvalidSyntax, "'{'")
	var src string
	for !p.cur.Is(token.RBRACE) && !p.cur.IsEOF() {
		src += p.cur.Current().Literal
		p.cur = p.cur.Advance()
	}
	p.expect(token.RBRACE, ErrMissingRBrace, "'}'")
	return ast.NewInlineAsmStmt(p.span(start), src)
}
