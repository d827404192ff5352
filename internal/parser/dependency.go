package parser

import "github.com/depsuite/depscan/pkg/token"

// parseDependencyDeclaration recognizes the shared "gem/pod NAME [, ARG]...
// [if COND]" shape used both at the Gemfile/Podfile top level and inside a
// spec constructor's add_dependency family of calls. The caller has already
// consumed the leading gem/pod/add_*_dependency/send identifier.
//
// outerGroups/outerPlatforms are the active labels inherited from enclosing
// group/target/platforms blocks; they are concatenated with any inline
// group:/platforms: options. isDevelopment reports whether the effective
// group set routes this declaration to the development bucket — the caller
// decides whether to keep or drop the Groups field based on that plus
// whatever trailing conditional it finds after this call returns.
func (p *Parser) parseDependencyDeclaration(outerGroups, outerPlatforms []string) (*GemDeclaration, bool, error) {
	openedParen := p.accept(token.LeftParen)

	name, err := p.parseNameLiteral()
	if err != nil {
		return nil, false, err
	}

	// Optional `.freeze` immediately after the name.
	if p.is(token.Dot) && p.peekAt(1).Kind == token.Identifier && p.peekAt(1).Text == "freeze" {
		p.advance()
		p.advance()
	}

	var rawVersions []string
	var inlineGroups []string
	var inlinePlatforms []string
	var git, path string
	var require *bool

argLoop:
	for p.is(token.Comma) {
		p.advance() // comma

		switch {
		case p.is(token.String):
			tok := p.advance()
			if isWordArray(tok.Text) {
				rawVersions = append(rawVersions, expandWordArray(tok.Text)...)
			} else {
				rawVersions = append(rawVersions, p.normalizeToken(tok))
			}

		case p.is(token.LeftBracket):
			p.advance()
			for p.is(token.String) {
				tok := p.advance()
				rawVersions = append(rawVersions, p.normalizeToken(tok))
				if p.is(token.Comma) {
					p.advance()
					continue
				}
				break
			}
			p.accept(token.RightBracket)

		case p.isKeyValuePair():
			key, handled := p.parseKeyValuePair(&inlineGroups, &inlinePlatforms, &git, &path, &require)
			if !handled {
				// Unrecognized key: best-effort skip of one value so a
				// single unknown option does not stop recognition of the
				// remaining comma-separated items.
				p.skipOneValue()
			}
			_ = key

		default:
			// "Anything else -> stop parsing the pair list." The comma
			// was already consumed; whatever follows is left for the
			// trailing discardLine to clean up.
			break argLoop
		}
	}

	if openedParen {
		p.accept(token.RightParen)
	}

	versions := make([]string, len(rawVersions))
	for i, v := range rawVersions {
		versions[i] = formatVersion(v)
	}

	effectiveGroups := concatLabels(outerGroups, inlineGroups)
	effectivePlatforms := concatLabels(outerPlatforms, inlinePlatforms)

	decl := &GemDeclaration{
		Name:      name,
		Platforms: effectivePlatforms,
		Versions:  versions,
		Groups:    &effectiveGroups,
		Git:       git,
		Path:      path,
		Require:   require,
	}

	return decl, isDevelopmentGroup(effectiveGroups), nil
}

// parseNameLiteral consumes the dependency name token. This is one of the
// two conditions under which parsing is fatal.
func (p *Parser) parseNameLiteral() (string, error) {
	switch p.cur().Kind {
	case token.String, token.Symbol:
		tok := p.advance()
		return p.normalizeToken(tok), nil
	case token.Identifier:
		return p.advance().Text, nil
	default:
		return "", p.fail("name literal expected")
	}
}

// isKeyValuePair reports whether the current position starts a
// `key = value` / `key: value` pair (Symbol or Identifier key immediately
// followed by Equals or Colon).
func (p *Parser) isKeyValuePair() bool {
	if p.cur().Kind != token.Symbol && p.cur().Kind != token.Identifier {
		return false
	}
	next := p.peekAt(1).Kind
	return next == token.Equals || next == token.Colon
}

// parseKeyValuePair consumes a recognized key/separator/value triple and
// applies it to the relevant accumulator. handled is false for a key shape
// that matched structurally but isn't one of the five named keys; the
// caller still owns consuming a best-effort value in that case.
func (p *Parser) parseKeyValuePair(groups, platforms *[]string, git, path *string, require **bool) (string, bool) {
	keyTok := p.advance()
	key := stripSymbolColon(keyTok)
	p.advance() // separator: Equals or Colon

	switch key {
	case "group":
		if p.cur().Kind == token.Identifier || p.cur().Kind == token.Symbol {
			tok := p.advance()
			*groups = append(*groups, p.normalizeToken(tok))
		}
		return key, true

	case "platforms":
		if p.is(token.LeftBracket) {
			p.advance()
			for p.cur().Kind == token.Symbol {
				tok := p.advance()
				*platforms = append(*platforms, p.normalizeToken(tok))
				if p.is(token.Comma) {
					p.advance()
					continue
				}
				break
			}
			p.accept(token.RightBracket)
		}
		return key, true

	case "git", "github":
		if v, ok := p.consumeSimpleValue(); ok {
			*git = v
		}
		return key, true

	case "path":
		if v, ok := p.consumeSimpleValue(); ok {
			*path = v
		}
		return key, true

	case "require":
		if p.cur().Kind == token.String {
			tok := p.advance()
			val := p.normalizeToken(tok) != "false"
			*require = &val
		} else {
			val := true
			*require = &val
			p.skipOneValue()
		}
		return key, true

	default:
		return key, false
	}
}

// consumeSimpleValue consumes a single String/Symbol/Identifier value token
// and returns its normalized text.
func (p *Parser) consumeSimpleValue() (string, bool) {
	switch p.cur().Kind {
	case token.String, token.Symbol:
		return p.normalizeToken(p.advance()), true
	case token.Identifier:
		return p.advance().Text, true
	default:
		return "", false
	}
}

// skipOneValue discards a single value for an unrecognized key: a balanced
// bracket group, or one plain token.
func (p *Parser) skipOneValue() {
	if p.is(token.LeftBracket) {
		p.advance()
		depth := 1
		for depth > 0 && !p.atEOF() {
			switch p.advance().Kind {
			case token.LeftBracket:
				depth++
			case token.RightBracket:
				depth--
			}
		}
		return
	}
	if !p.atEOF() && !p.is(token.Comma) && !p.is(token.NewLine) {
		p.advance()
	}
}

func stripSymbolColon(t token.Token) string {
	if t.Kind == token.Symbol && len(t.Text) > 0 && t.Text[0] == ':' {
		return t.Text[1:]
	}
	return t.Text
}

func concatLabels(outer, inline []string) []string {
	out := make([]string, 0, len(outer)+len(inline))
	out = append(out, outer...)
	out = append(out, inline...)
	return out
}

// formatVersion applies the §4.2 step-6 spacing rule: insert a single space
// between a leading non-digit operator run and the digit run that follows,
// unless one is already there.
func formatVersion(s string) string {
	idx := -1
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return s
	}
	if s[idx-1] == ' ' {
		return s
	}
	return s[:idx] + " " + s[idx:]
}
