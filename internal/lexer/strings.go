package lexer

import "github.com/depsuite/depscan/pkg/token"

// lexQuotedString scans a '...' or "..." literal, keeping the surrounding
// quotes in the token text. Stripping happens later in the string
// normalizer; the lexer just needs the exact source slice and its extent.
func (l *Lexer) lexQuotedString() (token.Token, error) {
	start, line, col := l.pos, l.line, l.col
	quote := l.cur()
	openerPos := l.pos_()
	l.advance() // opening quote

	if err := l.scanEscapedBody(quote, "string literal too long", "unterminated string", openerPos); err != nil {
		return token.Token{}, err
	}

	text := l.input[start:l.pos]
	return l.finishToken(token.String, text, start, line, col), nil
}

// percentCloser returns the closing delimiter for a %q/%w opener, using the
// fixed bracket-pair table; any other opener closes on itself.
func percentCloser(opener byte) byte {
	switch opener {
	case '{':
		return '}'
	case '[':
		return ']'
	case '(':
		return ')'
	case '<':
		return '>'
	default:
		return opener
	}
}

// lexPercentLiteral scans %q<...> / %w[...] style literals with an
// arbitrary bracket-pair (or self-closing) delimiter. The emitted token
// covers the literal verbatim, including the leading "%q"/"%w" and both
// delimiters.
func (l *Lexer) lexPercentLiteral() (token.Token, error) {
	start, line, col := l.pos, l.line, l.col
	l.advance() // '%'
	l.advance() // 'q' or 'w'

	opener := l.cur()
	openerPos := l.pos_()
	closer := percentCloser(opener)
	l.advance() // opening delimiter

	if err := l.scanEscapedBody(closer, "%q/%w literal too long", "unterminated %q/%w literal", openerPos); err != nil {
		return token.Token{}, err
	}

	text := l.input[start:l.pos]
	return l.finishToken(token.String, text, start, line, col), nil
}
