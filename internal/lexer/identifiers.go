package lexer

import "github.com/depsuite/depscan/pkg/token"

func (l *Lexer) lexIdentifier() (token.Token, error) {
	start, line, col := l.pos, l.line, l.col
	for isIdentContinue(l.cur()) {
		l.advance()
	}
	text := l.input[start:l.pos]
	return l.finishToken(token.LookupIdentifier(text), text, start, line, col), nil
}

func (l *Lexer) lexInteger() (token.Token, error) {
	start, line, col := l.pos, l.line, l.col
	for isDigit(l.cur()) {
		l.advance()
	}
	text := l.input[start:l.pos]
	return l.finishToken(token.Integer, text, start, line, col), nil
}
