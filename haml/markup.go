package haml

import (
	"regexp"
	"strings"
)

// TagAttr is one attribute parsed from a markup line. Static values are
// literal text; dynamic values are opaque target-language expressions the
// emitter splices into the generated code.
type TagAttr struct {
	Name    string
	Value   string
	Dynamic bool
	Boolean bool
}

// TagLine is the structured form of one markup expression. The emitters
// turn it into target-specific open/close fragments; the parse itself is
// target-agnostic.
type TagLine struct {
	Tag     string
	ID      string
	Classes []string
	Attrs   []TagAttr

	// Inline content: either literal text or an output expression from an
	// inline '=' / '!=' / '&=' marker.
	InlineText  string
	InlineCode  string
	Unescaped   bool
	ForceEscape bool

	// Doctype lines ('!!!' markers) carry the doctype variant instead of
	// an element.
	IsDoctype bool
	Doctype   string

	SelfClose bool
}

var tagHeadRe = regexp.MustCompile(`^(?:%([a-zA-Z][\w:-]*))?((?:[#.][\w-]+)*)`)

// selfCloseTags are void elements that render self-closed when they have no
// content.
var selfCloseTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true, "param": true,
}

// SelfClosing reports whether tag is a void element.
func SelfClosing(tag string) bool { return selfCloseTags[tag] }

// ParseTagLine breaks a markup expression into tag shorthand, attribute
// lists and inline content. It accepts both HTML-style (key='value') and
// Ruby-style {:key => 'value'} attribute groups, in any order and number.
func ParseTagLine(expression string) TagLine {
	if strings.HasPrefix(expression, "!") {
		return TagLine{
			IsDoctype: true,
			Doctype:   strings.TrimSpace(strings.TrimLeft(expression, "!")),
		}
	}

	t := TagLine{Tag: "div"}

	m := tagHeadRe.FindStringSubmatch(expression)
	if m[1] != "" {
		t.Tag = m[1]
	}
	for _, part := range splitShorthand(m[2]) {
		switch part[0] {
		case '#':
			t.ID = part[1:]
		case '.':
			t.Classes = append(t.Classes, part[1:])
		}
	}

	rest := expression[len(m[0]):]
	for {
		if strings.HasPrefix(rest, "(") {
			attrs, remainder := parseParenAttrs(rest)
			t.Attrs = append(t.Attrs, attrs...)
			rest = remainder
			continue
		}
		if strings.HasPrefix(rest, "{") {
			attrs, remainder := parseBraceAttrs(rest)
			t.Attrs = append(t.Attrs, attrs...)
			rest = remainder
			continue
		}
		break
	}

	if strings.HasPrefix(rest, "/") {
		t.SelfClose = true
		rest = rest[1:]
	}

	switch {
	case strings.HasPrefix(rest, "!="):
		t.InlineCode = strings.TrimSpace(rest[2:])
		t.Unescaped = true
	case strings.HasPrefix(rest, "&="):
		t.InlineCode = strings.TrimSpace(rest[2:])
		t.ForceEscape = true
	case strings.HasPrefix(rest, "="):
		t.InlineCode = strings.TrimSpace(rest[1:])
	default:
		t.InlineText = strings.TrimSpace(rest)
	}

	return t
}

// splitShorthand splits a run of #id and .class markers into its parts.
func splitShorthand(s string) []string {
	var parts []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || s[i] == '#' || s[i] == '.' {
			if i > start {
				parts = append(parts, s[start:i])
			}
			start = i
		}
	}
	return parts
}

// parseParenAttrs consumes one HTML-style (key='value' ...) group and
// returns the remainder of the expression after it.
func parseParenAttrs(s string) ([]TagAttr, string) {
	end, ok := balancedSpan(s, '(', ')')
	if !ok {
		// Unterminated group: treat everything as inline text downstream.
		return nil, s
	}
	body := s[1 : end-1]

	var attrs []TagAttr
	for _, tok := range splitTop(body, ' ') {
		if tok == "" {
			continue
		}
		name, value, found := strings.Cut(tok, "=")
		if !found {
			attrs = append(attrs, TagAttr{Name: tok, Boolean: true})
			continue
		}
		attrs = append(attrs, valueAttr(name, strings.TrimSpace(value)))
	}
	return attrs, s[end:]
}

// parseBraceAttrs consumes one Ruby-style {:key => 'value', ...} group and
// returns the remainder of the expression after it.
func parseBraceAttrs(s string) ([]TagAttr, string) {
	end, ok := balancedSpan(s, '{', '}')
	if !ok {
		return nil, s
	}
	body := s[1 : end-1]

	var attrs []TagAttr
	for _, pair := range splitTop(body, ',') {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=>")
		if !found {
			// key: value shorthand
			key, value, found = strings.Cut(strings.TrimPrefix(pair, ":"), ":")
			if !found {
				name := strings.Trim(strings.TrimPrefix(key, ":"), `'" `)
				attrs = append(attrs, TagAttr{Name: name, Boolean: true})
				continue
			}
		}
		name := strings.TrimSpace(key)
		name = strings.TrimPrefix(name, ":")
		name = strings.Trim(name, `'"`)
		attrs = append(attrs, valueAttr(name, strings.TrimSpace(value)))
	}
	return attrs, s[end:]
}

// valueAttr builds a TagAttr from a name and a raw value token, deciding
// whether the value is a quoted literal or a dynamic expression.
func valueAttr(name, value string) TagAttr {
	name = strings.TrimSpace(name)
	if len(value) >= 2 {
		if (value[0] == '\'' && value[len(value)-1] == '\'') ||
			(value[0] == '"' && value[len(value)-1] == '"') {
			return TagAttr{Name: name, Value: value[1 : len(value)-1]}
		}
	}
	return TagAttr{Name: name, Value: value, Dynamic: true}
}

// balancedSpan returns the index just past the close byte matching the open
// byte at s[0], honoring nesting and single/double quotes.
func balancedSpan(s string, open, close byte) (int, bool) {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// splitTop splits s on sep occurrences at nesting depth zero, outside
// quotes. Separator runs produce empty tokens which callers skip.
func splitTop(s string, sep byte) []string {
	var parts []string
	depth := 0
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
