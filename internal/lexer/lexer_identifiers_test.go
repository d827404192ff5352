package lexer

import (
	"testing"

	"github.com/depsuite/depscan/pkg/token"
)

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	toks, err := New("do end if else foo? bar! $global").All()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Type{token.Do, token.End, token.If, token.Else, token.Identifier, token.Identifier, token.Identifier, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexInteger(t *testing.T) {
	toks, err := New("42").All()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.Integer || toks[0].Text != "42" {
		t.Fatalf("got %v", toks[0])
	}
}
