package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/uistyle/adapter/htmladapter"
	"github.com/npillmayer/uistyle/syntax"
)

// TextType is the element type which matches text nodes.
const TextType = "text"

// parseSelector splits a selector into matchers, outermost first.
func parseSelector(sel string) ([]syntax.Matcher, error) {
	sel = strings.TrimSpace(sel)
	if _, err := cascadia.Parse(sel); err != nil {
		return nil, syntax.Errorf(syntax.Position{}, "Invalid selector %q: %v", sel, err)
	}
	s := &scanner{text: sel}
	var matchers []syntax.Matcher
	expectCompound := true
	for {
		s.skipSpace()
		if s.done() {
			break
		}
		if s.peek() == '>' {
			if expectCompound {
				return nil, s.errorf("unexpected '>'")
			}
			s.pos++
			expectCompound = true
			continue
		}
		if !expectCompound {
			return nil, s.errorf("only the child combinator '>' is supported")
		}
		m, err := s.compound()
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
		expectCompound = false
	}
	if expectCompound {
		return nil, s.errorf("incomplete selector")
	}
	return matchers, nil
}

type scanner struct {
	text string
	pos  int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.text)
}

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.text[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.done() && strings.IndexByte(" \t\r\n", s.peek()) >= 0 {
		s.pos++
	}
}

func (s *scanner) errorf(format string, args ...interface{}) error {
	return syntax.Errorf(syntax.Position{}, "Selector %q, offset %d: %s", s.text, s.pos,
		fmt.Sprintf(format, args...))
}

func isIdentChar(c byte, first bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9', c == '-':
		return !first
	}
	return false
}

func (s *scanner) ident() string {
	start := s.pos
	for !s.done() && isIdentChar(s.peek(), s.pos == start) {
		s.pos++
	}
	return s.text[start:s.pos]
}

// compound reads an element type followed by attribute tests.
func (s *scanner) compound() (syntax.Matcher, error) {
	var m syntax.Matcher
	name := s.ident()
	if name == "" {
		return m, s.errorf("expected element type")
	}
	if name == TextType {
		m.Text = true
	} else {
		m.Name = name
	}
	for s.peek() == '[' {
		s.pos++
		p, err := s.attribute()
		if err != nil {
			return m, err
		}
		m.Properties = append(m.Properties, p)
	}
	if !s.done() && strings.IndexByte(" \t\r\n>", s.peek()) < 0 {
		return m, s.errorf("unsupported selector syntax %q", s.text[s.pos:])
	}
	return m, nil
}

// attribute reads `key]` or `key=value]`.
func (s *scanner) attribute() (syntax.Property, error) {
	s.skipSpace()
	p := syntax.Property{Key: s.ident()}
	if p.Key == "" {
		return p, s.errorf("expected property name")
	}
	s.skipSpace()
	switch s.peek() {
	case ']':
		s.pos++
		p.Value = syntax.VarLit(p.Key)
		return p, nil
	case '=':
		s.pos++
	default:
		return p, s.errorf("unsupported attribute test")
	}
	s.skipSpace()
	var val string
	if q := s.peek(); q == '"' || q == '\'' {
		end := strings.IndexByte(s.text[s.pos+1:], q)
		if end < 0 {
			return p, s.errorf("unterminated string")
		}
		val = s.text[s.pos+1 : s.pos+1+end]
		s.pos += end + 2
	} else {
		start := s.pos
		for !s.done() && s.peek() != ']' && s.peek() != ' ' {
			s.pos++
		}
		val = s.text[start:s.pos]
	}
	s.skipSpace()
	if s.peek() != ']' {
		return p, s.errorf("expected ']'")
	}
	s.pos++
	p.Value = htmladapter.Literal(val)
	return p, nil
}
