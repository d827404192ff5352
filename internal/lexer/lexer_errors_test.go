package lexer

import (
	"strings"
	"testing"

	"github.com/depsuite/depscan/pkg/token"
)

func TestLexTokenQuotaExceeded(t *testing.T) {
	input := strings.Repeat("a ", 10)
	_, err := New(input, WithMaxTokens(5)).All()
	if err == nil {
		t.Fatal("expected a token quota error")
	}
	terr, ok := err.(*token.Error)
	if !ok || terr.Message != "token quota exceeded" {
		t.Fatalf("got %v", err)
	}
}

func TestLexUnknownCharacter(t *testing.T) {
	_, err := New("@").All()
	if err == nil {
		t.Fatal("expected an unknown character error")
	}
	terr, ok := err.(*token.Error)
	if !ok || terr.Message != "unknown character" {
		t.Fatalf("got %v", err)
	}
}

func TestLexEmptyInput(t *testing.T) {
	toks, err := New("").All()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("got %v, want a single EOF token", toks)
	}
}

func TestErrorFormatting(t *testing.T) {
	_, err := New("'unterminated").All()
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "unterminated string") || !strings.Contains(msg, "opener@1:1") {
		t.Errorf("unexpected error format: %q", msg)
	}
}
