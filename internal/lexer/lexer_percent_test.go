package lexer

import (
	"testing"

	"github.com/depsuite/depscan/pkg/token"
)

func TestLexPercentLiteralDelimiters(t *testing.T) {
	tests := []struct {
		input string
	}{
		{"%q<gemname>"},
		{"%q[gemname]"},
		{"%q(gemname)"},
		{"%q{gemname}"},
		{"%q/gemname/"},
		{"%w[~>1.0 >=1.5]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, err := New(tt.input).All()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if toks[0].Kind != token.String {
				t.Fatalf("got kind %v, want String", toks[0].Kind)
			}
			if toks[0].Text != tt.input {
				t.Errorf("got %q, want verbatim %q", toks[0].Text, tt.input)
			}
		})
	}
}

// TestLexPercentLiteralAngleBracketClosesOnFirstCloser documents that the
// scan for %q<...> is not bracket-nested: it stops at the first unescaped
// '>', so a body containing stray '<'/'>' noise never comes through as one
// token. "%q<><name><>" closes immediately after the opener, leaving the
// rest as independent punctuation/identifier tokens.
func TestLexPercentLiteralAngleBracketClosesOnFirstCloser(t *testing.T) {
	toks, err := New("%q<><name><>").All()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.String || toks[0].Text != "%q<>" {
		t.Fatalf("got %v, want String(%q)", toks[0], "%q<>")
	}
	// '<' and '>' are silently-dropped punctuation outside a literal, so the
	// remaining "<name><>" surfaces as a single bare Identifier, never as
	// more literal content.
	if toks[1].Kind != token.Identifier || toks[1].Text != "name" {
		t.Fatalf("got %v, want Identifier(%q)", toks[1], "name")
	}
	if toks[2].Kind != token.EOF {
		t.Fatalf("got %v, want EOF", toks[2])
	}
}

func TestLexPercentLiteralUnterminated(t *testing.T) {
	_, err := New("%q<gemname").All()
	if err == nil {
		t.Fatal("expected an error")
	}
	terr, ok := err.(*token.Error)
	if !ok || terr.Message != "unterminated %q/%w literal" {
		t.Fatalf("got %v", err)
	}
}
