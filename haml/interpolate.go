package haml

import "strings"

// Segment is one piece of an interpolated string: either literal text or an
// embedded #{...} expression to be spliced into the generated code.
type Segment struct {
	Code bool
	Text string
}

// Interpolate splits s on #{...} markers. The embedded expressions are
// opaque; nesting of braces inside an expression is honored, and a marker
// preceded by a backslash is literal text.
func Interpolate(s string) []Segment {
	var segs []Segment
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, Segment{Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(s); {
		if s[i] == '\\' && i+2 < len(s) && s[i+1] == '#' && s[i+2] == '{' {
			lit.WriteString("#{")
			i += 3
			continue
		}
		if s[i] == '#' && i+1 < len(s) && s[i+1] == '{' {
			if end, ok := braceEnd(s, i+2); ok {
				flush()
				segs = append(segs, Segment{Code: true, Text: s[i+2 : end]})
				i = end + 1
				continue
			}
		}
		lit.WriteByte(s[i])
		i++
	}
	flush()
	return segs
}

// braceEnd scans from start for the brace closing a #{ marker, counting
// nested braces.
func braceEnd(s string, start int) (int, bool) {
	depth := 1
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// Interpolated reports whether s contains at least one #{...} expression.
func Interpolated(s string) bool {
	for _, seg := range Interpolate(s) {
		if seg.Code {
			return true
		}
	}
	return false
}
