package parser

import "github.com/depsuite/depscan/pkg/token"

// parseTop runs the top-level Gemfile/Podfile statement dispatch described
// in the component design, starting with no active groups or platforms.
func (p *Parser) parseTop() error {
	return p.parseStatements(nil, nil, false)
}

// parseStatements repeatedly dispatches statements until EOF (untilEnd
// false) or a matching End token (untilEnd true, which is consumed before
// returning).
func (p *Parser) parseStatements(activeGroups, activePlatforms []string, untilEnd bool) error {
	for {
		p.skipNewLines()
		if p.atEOF() {
			return nil
		}
		if untilEnd && p.is(token.End) {
			p.advance()
			return nil
		}
		if err := p.parseStatement(activeGroups, activePlatforms); err != nil {
			return err
		}
	}
}

func (p *Parser) parseStatement(activeGroups, activePlatforms []string) error {
	switch {
	case p.isIdent("gem") || p.isIdent("pod"):
		p.advance()
		return p.parseTopLevelDependency(activeGroups, activePlatforms)

	case p.isIdent("group") || p.isIdent("target"):
		p.advance()
		return p.parseLabeledBlock(activeGroups, activePlatforms, false)

	case p.isIdent("platforms"):
		p.advance()
		return p.parseLabeledBlock(activeGroups, activePlatforms, true)

	case p.isIdent("source"):
		p.advance()
		p.discardLine()
		return nil

	case p.looksLikeSpecConstructor():
		return p.parseSpecConstructor()

	case p.is(token.Do):
		return p.skipBalancedDo()

	case p.is(token.LeftParen):
		p.skipBalancedParen()
		return nil

	default:
		p.discardLine()
		return nil
	}
}

func (p *Parser) parseTopLevelDependency(activeGroups, activePlatforms []string) error {
	decl, isDev, err := p.parseDependencyDeclaration(activeGroups, activePlatforms)
	if err != nil {
		return err
	}

	hasConditional := p.is(token.If)
	if isDev || hasConditional {
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

// parseLabeledBlock handles `group`/`target` (isPlatforms false) and
// `platforms` (isPlatforms true): parse a comma-separated label list, then
// either recurse into a nested Do block carrying the labels as the active
// set (replacing, not merging with, the outer set) or discard the rest of
// the line if no block follows.
func (p *Parser) parseLabeledBlock(activeGroups, activePlatforms []string, isPlatforms bool) error {
	labels := p.parseLabels()

	if !p.is(token.Do) {
		p.discardLine()
		return nil
	}
	p.advance() // Do

	if err := p.enterBlock(); err != nil {
		return err
	}
	defer p.leaveBlock()

	newGroups, newPlatforms := activeGroups, activePlatforms
	if isPlatforms {
		newPlatforms = labels
	} else {
		newGroups = labels
	}
	return p.parseStatements(newGroups, newPlatforms, true)
}

// parseLabels reads a comma-separated run of Symbol/String/Identifier
// tokens, stripping Symbol/String literals per §4.4.
func (p *Parser) parseLabels() []string {
	var labels []string
	for {
		switch p.cur().Kind {
		case token.Symbol, token.String:
			labels = append(labels, p.normalizeToken(p.advance()))
		case token.Identifier:
			labels = append(labels, p.advance().Text)
		default:
			return labels
		}
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		return labels
	}
}

// looksLikeSpecConstructor checks for a `Gem::Specification.new` or
// `Pod::Spec.new` prefix without consuming any tokens.
func (p *Parser) looksLikeSpecConstructor() bool {
	t0 := p.cur()
	if t0.Kind != token.Identifier || (t0.Text != "Gem" && t0.Text != "Pod") {
		return false
	}
	if p.peekAt(1).Kind != token.Colon || p.peekAt(2).Kind != token.Colon {
		return false
	}
	t3 := p.peekAt(3)
	if t3.Kind != token.Identifier {
		return false
	}
	if t0.Text == "Gem" && t3.Text != "Specification" {
		return false
	}
	if t0.Text == "Pod" && t3.Text != "Spec" {
		return false
	}
	if p.peekAt(4).Kind != token.Dot {
		return false
	}
	t5 := p.peekAt(5)
	return t5.Kind == token.Identifier && t5.Text == "new"
}

// skipBalancedDo skips a Do block whose contents were not recognized as any
// of the named top-level forms, respecting nested Do/End pairs and the
// block-nesting cap.
func (p *Parser) skipBalancedDo() error {
	if err := p.enterBlock(); err != nil {
		return err
	}
	defer p.leaveBlock()

	p.advance() // Do
	depth := 1
	for depth > 0 && !p.atEOF() {
		switch p.advance().Kind {
		case token.Do:
			depth++
		case token.End:
			depth--
		}
	}
	return nil
}

// skipBalancedParen skips a parenthesized group, respecting nesting.
func (p *Parser) skipBalancedParen() {
	p.advance() // LeftParen
	depth := 1
	for depth > 0 && !p.atEOF() {
		switch p.advance().Kind {
		case token.LeftParen:
			depth++
		case token.RightParen:
			depth--
		}
	}
}
