// Package manifest is the public entry point for extracting dependency
// declarations from Gemfile/Podfile/gemspec/podspec sources. It wraps
// internal/parser and internal/lexer behind a stable API and re-exports
// their data model as type aliases, so callers never import the internal
// packages directly.
package manifest

import (
	"log/slog"

	"github.com/depsuite/depscan/internal/lexer"
	"github.com/depsuite/depscan/internal/parser"
	"github.com/depsuite/depscan/pkg/token"
)

// Type aliases re-exporting the engine's data model.
type (
	GemDeclaration   = parser.GemDeclaration
	DependencyGroups = parser.DependencyGroups
	ParseOutput      = parser.ParseOutput
	ParseError       = token.Error
	Token            = token.Token
	Position         = token.Position
)

// DiagnosticSink receives a message whenever Parse encounters a construct
// it recognizes but cannot statically resolve: string interpolation, or a
// send(...) call whose target it cannot determine.
type DiagnosticSink func(string)

// Option configures Parse and Tokenize.
type Option func(*settings)

type settings struct {
	diagnostic      DiagnosticSink
	maxNestingDepth int
	maxTokens       int
	maxLiteralLen   int
}

// WithDiagnosticSink overrides the default sink, which logs at debug level
// via slog.Default().
func WithDiagnosticSink(sink DiagnosticSink) Option {
	return func(s *settings) { s.diagnostic = sink }
}

// WithMaxNestingDepth overrides the block-nesting safety cap (default 256).
func WithMaxNestingDepth(n int) Option {
	return func(s *settings) { s.maxNestingDepth = n }
}

// WithMaxTokens overrides the tokenizer's token-count safety cap (default
// 40000).
func WithMaxTokens(n int) Option {
	return func(s *settings) { s.maxTokens = n }
}

// WithMaxLiteralLength overrides the cap on string/symbol/percent-literal
// body length (default 8192 bytes).
func WithMaxLiteralLength(n int) Option {
	return func(s *settings) { s.maxLiteralLen = n }
}

func defaultSettings() *settings {
	return &settings{
		diagnostic: func(msg string) {
			slog.Default().Debug("manifest: unresolved construct", "detail", msg)
		},
	}
}

// Parse tokenizes and parses source, extracting every dependency
// declaration it can recognize. Lexer errors and the parser's two fatal
// conditions surface as a *ParseError; every other malformed construct is
// tolerated and skipped.
func Parse(source string, opts ...Option) (*ParseOutput, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	var parserOpts []parser.Option
	parserOpts = append(parserOpts, parser.WithDiagnosticSink(parser.DiagnosticSink(s.diagnostic)))
	if s.maxNestingDepth > 0 {
		parserOpts = append(parserOpts, parser.WithMaxNestingDepth(s.maxNestingDepth))
	}
	if s.maxTokens > 0 {
		parserOpts = append(parserOpts, parser.WithMaxTokens(s.maxTokens))
	}
	if s.maxLiteralLen > 0 {
		parserOpts = append(parserOpts, parser.WithMaxLiteralLength(s.maxLiteralLen))
	}

	return parser.Parse(source, parserOpts...)
}

// Tokenize runs only the tokenizer, returning the raw token stream. This is
// mainly useful for debugging tooling such as the depscan lex subcommand.
func Tokenize(source string, opts ...Option) ([]token.Token, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	var lexOpts []lexer.Option
	if s.maxTokens > 0 {
		lexOpts = append(lexOpts, lexer.WithMaxTokens(s.maxTokens))
	}
	if s.maxLiteralLen > 0 {
		lexOpts = append(lexOpts, lexer.WithMaxLiteralLength(s.maxLiteralLen))
	}

	return lexer.New(source, lexOpts...).All()
}
