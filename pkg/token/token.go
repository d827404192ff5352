// Package token defines the token kinds and source-position type produced by
// the internal/lexer tokenizer and consumed by internal/parser.
package token

import "fmt"

// Position identifies a single point in source text.
type Position struct {
	Offset int // byte offset from the start of input
	Line   int // 1-based line number
	Column int // 1-based column number
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Type is the closed set of token kinds the tokenizer emits.
type Type int

const (
	Illegal Type = iota
	EOF

	Identifier
	String
	Symbol
	Integer

	Comma
	Colon
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	Dot
	Equals

	NewLine

	Do
	End
	If
	Else
)

var names = map[Type]string{
	Illegal:     "ILLEGAL",
	EOF:         "EOF",
	Identifier:  "IDENT",
	String:      "STRING",
	Symbol:      "SYMBOL",
	Integer:     "INT",
	Comma:       "COMMA",
	Colon:       "COLON",
	LeftParen:   "LPAREN",
	RightParen:  "RPAREN",
	LeftBracket: "LBRACKET",
	RightBracket: "RBRACKET",
	Dot:         "DOT",
	Equals:      "EQUALS",
	NewLine:     "NEWLINE",
	Do:          "DO",
	End:         "END",
	If:          "IF",
	Else:        "ELSE",
}

func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// keywords maps lowercase identifier text to its keyword token type. Any
// identifier not present here lexes as Identifier.
var keywords = map[string]Type{
	"do":   Do,
	"end":  End,
	"if":   If,
	"else": Else,
}

// LookupIdentifier returns the keyword Type for word, or Identifier if word
// is not a keyword.
func LookupIdentifier(word string) Type {
	if t, ok := keywords[word]; ok {
		return t
	}
	return Identifier
}

// Token is a single lexical unit: its kind, the exact source slice it spans,
// and its position.
type Token struct {
	Kind   Type
	Text   string
	Start  int
	End    int
	Line   int
	Column int
}

// Pos returns the token's starting position.
func (t Token) Pos() Position {
	return Position{Offset: t.Start, Line: t.Line, Column: t.Column}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Line, t.Column)
}
