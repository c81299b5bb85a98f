package parser

import (
	"fmt"

	"github.com/nitrate-lang/nitratec/internal/token"
)

// ParseError is a structured parsing error with source position, mirroring
// the teacher's ParserError (internal/parser/error.go) re-keyed onto
// token.Position and this parser's error codes.
type ParseError struct {
	Message string
	Code    string
	Pos     token.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Pos.Line, e.Pos.Column)
}

func newParseError(pos token.Position, code, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Code: code, Pos: pos}
}

const (
	ErrUnexpectedToken  = "E_UNEXPECTED_TOKEN"
	ErrExpectedIdent    = "E_EXPECTED_IDENT"
	ErrExpectedType     = "E_EXPECTED_TYPE"
	ErrNoPrefixParse    = "E_NO_PREFIX_PARSE"
	ErrMissingLParen    = "E_MISSING_LPAREN"
	ErrMissingRParen    = "E_MISSING_RPAREN"
	ErrMissingRBrace    = "E_MISSING_RBRACE"
	ErrMissingRBracket  = "E_MISSING_RBRACKET"
	ErrMissingSemicolon = "E_MISSING_SEMICOLON"
	ErrInvalidSyntax    = "E_INVALID_SYNTAX"
)

// statementStarters is the panic-mode synchronization set: after a parse
// error, the parser skips tokens until it sees one of these, so a single
// malformed statement doesn't cascade into spurious follow-on errors.
var statementStarters = []token.Kind{
	token.VAR, token.LET, token.CONST, token.FN, token.IF, token.WHILE,
	token.FOR, token.FOREACH, token.FORM, token.RETURN, token.RETIF,
	token.RETZ, token.RETV, token.BREAK, token.CONTINUE, token.SWITCH,
	token.STRUCT, token.REGION, token.GROUP, token.UNION, token.ENUM,
	token.TYPE, token.SUBSYSTEM, token.IMPORT, token.LBRACE,
}

// synchronize skips tokens until it reaches a statement boundary: a
// semicolon (consumed), a closing brace (not consumed, lets the caller's
// block loop terminate), a statement-starter keyword, or EOF.
func (p *Parser) synchronize() {
	for !p.cur.IsEOF() {
		if p.cur.Is(token.SEMI) {
			p.cur = p.cur.Advance()
			return
		}
		if p.cur.Is(token.RBRACE) {
			return
		}
		if p.cur.IsAny(statementStarters...) {
			return
		}
		p.cur = p.cur.Advance()
	}
}
