package lexer

import (
	"testing"

	"github.com/depsuite/depscan/pkg/token"
)

func TestLexColonDisambiguation(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKinds []token.Type
		wantTexts []string
	}{
		{
			name:      "namespace colon",
			input:     "Gem::Specification",
			wantKinds: []token.Type{token.Identifier, token.Colon, token.Colon, token.Identifier, token.EOF},
			wantTexts: []string{"Gem", ":", ":", "Specification", ""},
		},
		{
			name:      "unquoted symbol",
			input:     ":development",
			wantKinds: []token.Type{token.Symbol, token.EOF},
			wantTexts: []string{":development", ""},
		},
		{
			name:      "quoted symbol",
			input:     `:"some thing"`,
			wantKinds: []token.Type{token.Symbol, token.EOF},
			wantTexts: []string{`:"some thing"`, ""},
		},
		{
			name:      "hash rocket key shorthand",
			input:     "git:",
			wantKinds: []token.Type{token.Identifier, token.Colon, token.EOF},
			wantTexts: []string{"git", ":", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := New(tt.input).All()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(toks) != len(tt.wantKinds) {
				t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tt.wantKinds), toks)
			}
			for i, want := range tt.wantKinds {
				if toks[i].Kind != want {
					t.Errorf("token %d: got kind %v, want %v", i, toks[i].Kind, want)
				}
				if toks[i].Text != tt.wantTexts[i] {
					t.Errorf("token %d: got text %q, want %q", i, toks[i].Text, tt.wantTexts[i])
				}
			}
		})
	}
}

func TestLexPipeSymbol(t *testing.T) {
	toks, err := New("|s|").All()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4: %v", len(toks), toks)
	}
	if toks[0].Kind != token.Symbol || toks[0].Text != "|" {
		t.Errorf("got %v, want Symbol(|)", toks[0])
	}
	if toks[2].Kind != token.Symbol || toks[2].Text != "|" {
		t.Errorf("got %v, want Symbol(|)", toks[2])
	}
}
