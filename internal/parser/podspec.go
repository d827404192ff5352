package parser

import (
	"strings"

	"github.com/depsuite/depscan/pkg/token"
)

// parseSpecConstructor implements §4.3: a `Gem::Specification.new` or
// `Pod::Spec.new` prefix, an optional inline name string, an optional
// `|name|` block-argument declaration, and a block body of spec statements.
func (p *Parser) parseSpecConstructor() error {
	p.advance() // Gem or Pod
	p.advance() // Colon
	p.advance() // Colon
	p.advance() // Specification or Spec
	p.advance() // Dot
	p.advance() // new

	if p.is(token.String) {
		p.out.SelfName = p.normalizeToken(p.advance())
	}

	if !p.is(token.Do) {
		p.discardLine()
		return nil
	}
	p.advance() // Do

	if err := p.enterBlock(); err != nil {
		return err
	}
	defer p.leaveBlock()

	var argName string
	if p.cur().Kind == token.Symbol && p.cur().Text == "|" {
		p.advance()
		if p.is(token.Identifier) {
			argName = p.advance().Text
		}
		if p.cur().Kind == token.Symbol && p.cur().Text == "|" {
			p.advance()
		}
	}

	terminator, err := p.parseSpecBranchBody(argName)
	if err != nil {
		return err
	}
	if terminator == token.Else {
		p.advance() // stray else at the outermost level; recover leniently
		p.skipToMatchingEnd()
	}
	return nil
}

// parseSpecBranchBody parses spec statements until it reaches an End or
// Else token at this nesting level. It does not consume Else (the caller
// decides what to do with it); it does consume a terminating End.
func (p *Parser) parseSpecBranchBody(argName string) (token.Type, error) {
	for {
		p.skipNewLines()
		if p.atEOF() {
			return token.End, nil
		}
		if p.is(token.End) {
			p.advance()
			return token.End, nil
		}
		if p.is(token.Else) {
			return token.Else, nil
		}
		if p.is(token.If) {
			if err := p.parseSpecIf(argName); err != nil {
				return token.End, err
			}
			continue
		}
		if err := p.parseSpecStatement(argName); err != nil {
			return token.End, err
		}
	}
}

// parseSpecIf implements the §4.3 if/else rule: only the first branch is
// interpreted. The condition itself is never evaluated — its tokens are
// simply discarded through the end of the line.
func (p *Parser) parseSpecIf(argName string) error {
	p.advance() // if
	p.discardLine()

	if err := p.enterBlock(); err != nil {
		return err
	}
	defer p.leaveBlock()

	terminator, err := p.parseSpecBranchBody(argName)
	if err != nil {
		return err
	}
	if terminator == token.Else {
		p.advance() // else
		p.skipToMatchingEnd()
	}
	return nil
}

// skipToMatchingEnd discards tokens through the End that balances the If or
// Do the caller has already consumed one level of.
func (p *Parser) skipToMatchingEnd() {
	depth := 1
	for depth > 0 && !p.atEOF() {
		switch p.advance().Kind {
		case token.If, token.Do:
			depth++
		case token.End:
			depth--
		}
	}
}

// parseSpecStatement recognizes one `arg.method ...` form. Any shape that
// does not match is tolerated by discarding the line.
func (p *Parser) parseSpecStatement(argName string) error {
	if !p.is(token.Identifier) {
		p.discardLine()
		return nil
	}
	if argName != "" && p.cur().Text != argName {
		p.discardLine()
		return nil
	}
	p.advance() // receiver identifier

	if !p.accept(token.Dot) {
		p.discardLine()
		return nil
	}
	if !p.is(token.Identifier) {
		p.discardLine()
		return nil
	}
	method := p.advance().Text

	switch {
	case (method == "name" || method == "version") && p.is(token.Equals) && p.peekAt(1).Kind == token.String:
		p.advance() // Equals
		val := p.normalizeToken(p.advance())
		if method == "name" {
			p.out.SelfName = val
		} else {
			p.out.SelfVersion = val
		}
		p.discardLine()
		return nil

	case method == "send":
		return p.parseSendDependency()

	case method == "add_dependency", method == "add_runtime_dependency",
		method == "add_development_dependency", method == "dependency":
		return p.parseSpecDependencyCall(method)

	default:
		p.discardLine()
		return nil
	}
}

// parseSpecDependencyCall handles the four direct *_dependency method
// forms. Classification is driven by the method name; when the method is
// exactly "dependency" the Groups field is always stripped regardless of
// classification.
func (p *Parser) parseSpecDependencyCall(method string) error {
	decl, _, err := p.parseDependencyDeclaration(nil, nil)
	if err != nil {
		return err
	}
	isDev := strings.Contains(method, "development")
	if isDev || method == "dependency" {
		decl.Groups = nil
	}
	if isDev {
		p.out.Groups.Development = append(p.out.Groups.Development, *decl)
	} else {
		p.out.Groups.Runtime = append(p.out.Groups.Runtime, *decl)
	}
	p.discardLine()
	return nil
}

// parseSendDependency implements the `send(:add_dependency, …)`
// metaprogramming indirection form. When the symbol argument cannot be
// resolved to a dependency-adding call, it is reported to the diagnostic
// sink and the statement is otherwise discarded.
func (p *Parser) parseSendDependency() error {
	openedParen := p.accept(token.LeftParen)

	if !p.is(token.Symbol) {
		p.diag("unresolvable send(...) invocation: missing symbol argument")
		p.discardLine()
		return nil
	}
	symbolText := p.normalizeToken(p.advance())

	if !strings.Contains(symbolText, "dependency") {
		p.diag("unresolvable send(...) invocation: " + symbolText)
		p.discardLine()
		return nil
	}
	isDev := strings.Contains(symbolText, "development")

	if !p.accept(token.Comma) {
		p.discardLine()
		return nil
	}

	decl, _, err := p.parseDependencyDeclaration(nil, nil)
	if err != nil {
		return err
	}
	if isDev {
		decl.Groups = nil
		p.out.Groups.Development = append(p.out.Groups.Development, *decl)
	} else {
		p.out.Groups.Runtime = append(p.out.Groups.Runtime, *decl)
	}

	if openedParen {
		p.accept(token.RightParen)
	}
	p.discardLine()
	return nil
}
