package lexer

import (
	"testing"

	"github.com/nitrate-lang/nitratec/internal/token"
)

func TestNextTokenBasic(t *testing.T) {
	input := `fn f(x: i32) -> i32 { retif x <= 0, 0; return f(x - 1) + x }`

	tests := []struct {
		kind token.Kind
		lit  string
	}{
		{token.FN, "fn"},
		{token.IDENT, "f"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.COLON, ":"},
		{token.IDENT, "i32"},
		{token.RPAREN, ")"},
		{token.ARROW, "->"},
		{token.IDENT, "i32"},
		{token.LBRACE, "{"},
		{token.RETIF, "retif"},
		{token.IDENT, "x"},
		{token.LE, "<="},
		{token.INT, "0"},
		{token.COMMA, ","},
		{token.INT, "0"},
		{token.SEMI, ";"},
		{token.RETURN, "return"},
		{token.IDENT, "f"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.MINUS, "-"},
		{token.INT, "1"},
		{token.RPAREN, ")"},
		{token.PLUS, "+"},
		{token.IDENT, "x"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.Next()
		if tok.Kind != tt.kind {
			t.Fatalf("token %d: kind = %s, want %s", i, tok.Kind, tt.kind)
		}
		if tok.Literal != tt.lit {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, tt.lit)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New("a b")
	if got := l.Peek().Literal; got != "a" {
		t.Fatalf("Peek() = %q, want %q", got, "a")
	}
	if got := l.Peek().Literal; got != "a" {
		t.Fatalf("second Peek() = %q, want %q", got, "a")
	}
	if got := l.Next().Literal; got != "a" {
		t.Fatalf("Next() = %q, want %q", got, "a")
	}
	if got := l.Next().Literal; got != "b" {
		t.Fatalf("Next() = %q, want %q", got, "b")
	}
}

func TestKeywordsVsIdentifiers(t *testing.T) {
	l := New("subsystem outer { pub \"c\" fn strlen() }")
	kinds := []token.Kind{token.SUBSYSTEM, token.IDENT, token.LBRACE, token.PUB, token.STRING, token.FN, token.IDENT, token.LPAREN, token.RPAREN, token.RBRACE, token.EOF}
	for i, want := range kinds {
		if got := l.Next().Kind; got != want {
			t.Fatalf("token %d: kind = %s, want %s", i, got, want)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"123", token.INT},
		{"0xFF", token.INT},
		{"1_000", token.INT},
		{"3.14", token.FLOAT},
		{"1e10", token.FLOAT},
		{"1.5e-3", token.FLOAT},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.Next()
		if tok.Kind != tt.kind {
			t.Errorf("%q: kind = %s, want %s", tt.input, tok.Kind, tt.kind)
		}
	}
}

func TestUnicodeIdentifierColumns(t *testing.T) {
	l := New("var Δ")
	l.Next() // var
	tok := l.Next()
	if tok.Literal != "Δ" {
		t.Fatalf("literal = %q, want Δ", tok.Literal)
	}
	if tok.Pos.Column != 5 {
		t.Fatalf("column = %d, want 5", tok.Pos.Column)
	}
}
