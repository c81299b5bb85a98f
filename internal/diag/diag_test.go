package diag

import (
	"strings"
	"testing"

	"github.com/nitrate-lang/nitratec/internal/token"
)

func TestSinkHasErrors(t *testing.T) {
	s := NewSink("a.q", "let x = 1;")
	s.Notef(token.Span{}, "informational")
	if s.HasErrors() {
		t.Fatal("a note should not count as an error")
	}
	s.Errorf(token.Span{}, "bad thing: %d", 42)
	if !s.HasErrors() {
		t.Fatal("expected HasErrors to be true after Errorf")
	}
	if len(s.Diagnostics()) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(s.Diagnostics()))
	}
}

func TestRenderPlain(t *testing.T) {
	s := NewSink("a.q", "let x = 1;")
	sp := token.Span{Start: token.Position{Line: 1, Column: 5}}
	s.Errorf(sp, "undeclared identifier %q", "x")

	var b strings.Builder
	RenderAll(&b, s, Plain, 0)
	out := b.String()
	if !strings.Contains(out, "1:5") || !strings.Contains(out, "error") || !strings.Contains(out, "undeclared identifier") {
		t.Fatalf("unexpected plain output: %q", out)
	}
}

func TestRenderClangCaretAlignment(t *testing.T) {
	src := "let x = y + 1;"
	s := NewSink("a.q", src)
	sp := token.Span{Start: token.Position{Line: 1, Column: 9}}
	s.Errorf(sp, "undeclared identifier %q", "y")

	var b strings.Builder
	RenderAll(&b, s, Clang16Color, 0)
	lines := strings.Split(b.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}
	caretIdx := strings.IndexByte(lines[2], '^')
	if caretIdx == -1 {
		t.Fatalf("expected a caret in %q", lines[2])
	}
}

func TestRenderClangPlainNoColor(t *testing.T) {
	if got := caretLine("abc", 2, false); got != " ^" {
		t.Fatalf("expected one leading space then caret, got %q", got)
	}
}
