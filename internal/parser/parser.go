// Package parser implements the lenient recursive-descent recognizer over
// the token stream produced by internal/lexer: it picks dependency
// declarations out of Gemfile/Podfile/gemspec/podspec sources, skipping
// anything it does not understand rather than aborting.
package parser

import (
	"github.com/depsuite/depscan/internal/lexer"
	"github.com/depsuite/depscan/pkg/token"
)

const defaultMaxNestingDepth = 256

// DiagnosticSink receives a human-readable message whenever the parser
// encounters a dynamic interpolation or unresolvable metaprogramming
// construct it cannot follow. It must never be allowed to panic the parse;
// Parse recovers from a panicking sink and otherwise ignores it.
type DiagnosticSink func(string)

// Option configures a Parser.
type Option func(*Parser)

// WithDiagnosticSink overrides the default no-op diagnostic sink.
func WithDiagnosticSink(sink DiagnosticSink) Option {
	return func(p *Parser) { p.diagnostic = sink }
}

// WithMaxNestingDepth overrides the default block-nesting safety cap.
func WithMaxNestingDepth(n int) Option {
	return func(p *Parser) { p.maxNestingDepth = n }
}

// WithMaxTokens overrides the tokenizer's token-count safety cap.
func WithMaxTokens(n int) Option {
	return func(p *Parser) { p.maxTokens = n }
}

// WithMaxLiteralLength overrides the tokenizer's string/symbol/percent
// literal body-length safety cap.
func WithMaxLiteralLength(n int) Option {
	return func(p *Parser) { p.maxLiteralLen = n }
}

// Parser walks a token stream with a cursor and a block-nesting counter.
type Parser struct {
	tokens []token.Token
	pos    int

	blockDepth      int
	maxNestingDepth int
	maxTokens       int
	maxLiteralLen   int

	diagnostic DiagnosticSink

	out *ParseOutput
}

// Parse tokenizes and parses source, producing a ParseOutput. Lexer errors
// and the two fatal parser errors ("name literal expected" and "nesting too
// deep") surface as a *token.Error; all other malformed input is tolerated
// by discarding tokens through the next newline.
func Parse(source string, opts ...Option) (*ParseOutput, error) {
	p := &Parser{
		maxNestingDepth: defaultMaxNestingDepth,
		maxTokens:       0, // 0 means "use the lexer default"
		diagnostic:      func(string) {},
	}
	for _, opt := range opts {
		opt(p)
	}

	var lexOpts []lexer.Option
	if p.maxTokens > 0 {
		lexOpts = append(lexOpts, lexer.WithMaxTokens(p.maxTokens))
	}
	if p.maxLiteralLen > 0 {
		lexOpts = append(lexOpts, lexer.WithMaxLiteralLength(p.maxLiteralLen))
	}

	toks, err := lexer.New(source, lexOpts...).All()
	if err != nil {
		return nil, err
	}

	p.tokens = toks
	p.out = newParseOutput()

	if err := p.parseTop(); err != nil {
		return nil, err
	}

	return p.out, nil
}

// --- cursor ------------------------------------------------------------

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[idx]
}

func (p *Parser) atEOF() bool {
	return p.cur().Kind == token.EOF
}

// advance consumes the current token and returns it.
func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) is(kind token.Type) bool {
	return p.cur().Kind == kind
}

func (p *Parser) isIdent(text string) bool {
	return p.cur().Kind == token.Identifier && p.cur().Text == text
}

// accept consumes the current token if it has kind, reporting whether it did.
func (p *Parser) accept(kind token.Type) bool {
	if p.is(kind) {
		p.advance()
		return true
	}
	return false
}

// discardLine consumes tokens through (and including) the next NewLine, or
// through EOF if no newline remains. This is how the parser recovers from
// any construct it does not understand.
func (p *Parser) discardLine() {
	for !p.atEOF() {
		if p.advance().Kind == token.NewLine {
			return
		}
	}
}

// skipNewLines consumes any run of NewLine tokens.
func (p *Parser) skipNewLines() {
	for p.is(token.NewLine) {
		p.advance()
	}
}

func (p *Parser) prevFirstByte() byte {
	if p.pos == 0 {
		return 0
	}
	prev := p.tokens[p.pos-1]
	if len(prev.Text) > 0 {
		return prev.Text[0]
	}
	return 0
}

func (p *Parser) fail(message string) *token.Error {
	pos := token.Position{Offset: p.cur().Start, Line: p.cur().Line, Column: p.cur().Column}
	return token.NewError(message, pos, p.prevFirstByte())
}

func (p *Parser) diag(message string) {
	defer func() { recover() }()
	p.diagnostic(message)
}

// enterBlock increments the nesting counter, failing if it exceeds the cap.
func (p *Parser) enterBlock() error {
	p.blockDepth++
	if p.blockDepth > p.maxNestingDepth {
		return p.fail("nesting too deep")
	}
	return nil
}

func (p *Parser) leaveBlock() {
	p.blockDepth--
}
