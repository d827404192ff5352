package parser

import (
	"strings"

	"github.com/depsuite/depscan/pkg/token"
)

// normalizeToken strips the lexer's verbatim literal shape down to the
// logical string value (§4.4), flagging any unresolved string
// interpolation it spots along the way to the diagnostic sink.
func (p *Parser) normalizeToken(t token.Token) string {
	if (t.Kind == token.String || t.Kind == token.Symbol) && strings.Contains(t.Text, "#{") {
		p.diag("unresolved string interpolation: " + t.Text)
	}
	return normalizeString(t)
}

// normalizeString implements §4.4 for every literal shape the lexer
// produces: percent-literals, quoted/unquoted symbols, and quoted strings.
// Plain identifiers are returned verbatim.
func normalizeString(t token.Token) string {
	text := t.Text

	switch {
	case strings.HasPrefix(text, "%q") || strings.HasPrefix(text, "%w"):
		return normalizePercentLiteral(text)

	case t.Kind == token.Symbol && len(text) >= 2 && (text[1] == '"' || text[1] == '\''):
		return text[2 : len(text)-1]

	case t.Kind == token.Symbol && len(text) >= 1 && text[0] == ':':
		return text[1:]

	case t.Kind == token.String && len(text) >= 2:
		return normalizeQuotedString(text)

	default:
		return text
	}
}

// normalizePercentLiteral strips a %q/%w literal's leading "%q"/"%w" plus
// both delimiters, leaving the body. There is no special-case absorption of
// stray '<'/'>' noise inside a %q<...> body: the lexer's scanEscapedBody
// stops at the first unescaped closer byte, so a real %q<...> token can
// never itself contain an unescaped '>' for this to absorb.
func normalizePercentLiteral(text string) string {
	if len(text) < 4 {
		return ""
	}
	content := text[3 : len(text)-1]
	content = strings.TrimSpace(content)

	if len(content) >= 6 && strings.HasPrefix(content, "'''") && strings.HasSuffix(content, "'''") {
		content = content[3 : len(content)-3]
	}

	return content
}

func normalizeQuotedString(text string) string {
	quote := text[0]
	inner := text[1 : len(text)-1]
	trimmed := strings.Trim(inner, string(quote))

	for len(trimmed) >= 2 && trimmed[0] == trimmed[len(trimmed)-1] &&
		(trimmed[0] == '\'' || trimmed[0] == '"') {
		trimmed = trimmed[1 : len(trimmed)-1]
	}
	return trimmed
}

// isWordArray reports whether a raw String token's text is a %w literal.
func isWordArray(text string) bool {
	return strings.HasPrefix(text, "%w")
}

// expandWordArray implements §4.5: normalize the %w literal's content, then
// split on runs of space/tab/newline into independent version constraints.
func expandWordArray(text string) []string {
	content := normalizePercentLiteral(text)
	fields := strings.FieldsFunc(content, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n'
	})
	return fields
}
