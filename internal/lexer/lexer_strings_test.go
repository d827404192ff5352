package lexer

import (
	"testing"

	"github.com/depsuite/depscan/pkg/token"
)

func TestLexQuotedStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single quoted", `'rails'`, `'rails'`},
		{"double quoted", `"rails"`, `"rails"`},
		{"escaped quote", `'can\'t'`, `'can\'t'`},
		{"spans newline", "'foo\nbar'", "'foo\nbar'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := New(tt.input).All()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if toks[0].Kind != token.String {
				t.Fatalf("got kind %v, want String", toks[0].Kind)
			}
			if toks[0].Text != tt.want {
				t.Errorf("got text %q, want %q", toks[0].Text, tt.want)
			}
		})
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := New(`'rails`).All()
	if err == nil {
		t.Fatal("expected an error for unterminated string")
	}
	terr, ok := err.(*token.Error)
	if !ok {
		t.Fatalf("got %T, want *token.Error", err)
	}
	if terr.Message != "unterminated string" {
		t.Errorf("got message %q", terr.Message)
	}
}

func TestLexStringTooLong(t *testing.T) {
	body := make([]byte, 9000)
	for i := range body {
		body[i] = 'a'
	}
	huge := "'" + string(body) + "'"
	_, err := New(huge).All()
	if err == nil {
		t.Fatal("expected a too-long error")
	}
	terr, ok := err.(*token.Error)
	if !ok || terr.Message != "string literal too long" {
		t.Fatalf("got %v", err)
	}
}
