package syntax

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Info represents parsed tag information.
type Info struct {
	Table  string // Table is parsed from "table" key.
	Alias  string // Alias is parsed from "alias" key.
	Schema string // Schema is parsed from "schema" key.
	Column string // Column is parsed from "col" key.
}

// Parse parses a shape tag, e.g.:
//
//	table:orders;alias:o;schema:dbo
//	col:customer_id
func Parse(input string) (*Info, error) {
	p := &parser{
		scanner: newScanner(input),
		c:       &Info{},
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.c, nil
}

type parser struct {
	*scanner
	c *Info
}

func (p *parser) syntaxError(msg string) error {
	return fmt.Errorf("%d: syntax error: %s", p.token.start, msg)
}

func (p *parser) parse() error {
	for p.NextToken() {
		switch p.token.typ {
		case _EOF:
			return nil
		case _Key:
			if err := p.parseKeyValue(); err != nil {
				return err
			}
		case _Error:
			return p.syntaxError("invalid syntax")
		default:
			return p.syntaxError("unexpected token " + string(p.token.typ))
		}
	}
	return nil
}

func (p *parser) parseKeyValue() error {
	key := p.token.lit
	p.NextToken()
	if p.token.typ == _Semicolon || p.token.typ == _EOF {
		return p.syntaxError(fmt.Sprintf("missing value of key %q", key))
	}
	if p.token.typ != _Colon {
		return p.syntaxError(fmt.Sprintf("expected %s, see %s", _Colon, p.token.typ))
	}
	p.NextToken()
	if p.token.typ == _Semicolon || p.token.typ == _EOF {
		// empty value
		return nil
	}
	var target *string
	switch key {
	case "table":
		target = &p.c.Table
	case "alias":
		target = &p.c.Alias
	case "schema":
		target = &p.c.Schema
	case "col":
		target = &p.c.Column
	default:
		return p.syntaxError("unknown key: " + key)
	}
	if *target != "" {
		return p.syntaxError(fmt.Sprintf("redundant %s declaration: %q", key, p.token.lit))
	}
	value := strings.TrimSpace(p.token.lit)
	if !isQuoted(value) && !isAllowedName(value) {
		return p.syntaxError(fmt.Sprintf("invalid %s name: %q", key, value))
	}
	*target = value
	p.NextToken()
	if p.token.typ != _EOF && p.token.typ != _Semicolon {
		return p.syntaxError(fmt.Sprintf("expected %s, see %s", _Semicolon, p.token.typ))
	}
	return nil
}

// isQuoted reports whether name starts with a quote,
// in which case it's taken as is.
func isQuoted(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r == '"' || r == '`' || r == '['
}

// isAllowedName checks if characters of name are [a-zA-Z0-9_@#$] and not starting with a digit.
func isAllowedName(name string) bool {
	if name == "" {
		return false
	}
	for i, ch := range name {
		if !(ch >= 'a' && ch <= 'z' ||
			ch >= 'A' && ch <= 'Z' ||
			ch >= '0' && ch <= '9' ||
			ch == '_' || ch == '@' || ch == '#' || ch == '$') {
			return false
		}
		if i == 0 && ch >= '0' && ch <= '9' {
			return false
		}
	}
	return true
}
