package haml

// tracker is the indentation / block-level state machine. It consumes the
// leading-whitespace width of each significant line and decides whether the
// line pushes a nesting level, pops one or more, or stays level.
//
// The tab unit is undefined until the first line whose indentation differs
// from the previous one; at that point it is fixed to the absolute difference
// and never recomputed, so later inconsistent indents surface as errors
// instead of being silently reinterpreted.
type tracker struct {
	tabSize int

	currentIndent  int
	previousIndent int

	currentBlockLevel  int
	previousBlockLevel int
}

// observe processes the whitespace width of one significant line. The line
// argument is the 1-based line number used in diagnostics. It is only called
// when the width actually changed relative to the previous significant line.
func (tk *tracker) observe(indent, line int) error {
	if tk.tabSize == 0 && indent > tk.previousIndent {
		tk.tabSize = indent - tk.previousIndent
	}
	tk.currentIndent = indent

	if tk.tabSize > 0 {
		if indent%tk.tabSize != 0 {
			return &ParseError{Err: ErrIndentation, Line: line}
		}
		tk.currentBlockLevel = indent / tk.tabSize
		if tk.currentBlockLevel-tk.previousBlockLevel > 1 {
			return &ParseError{Err: ErrBlockTooDeep, Line: line}
		}
	}
	return nil
}

// pushed reports whether the last observed line descended one level.
func (tk *tracker) pushed() bool { return tk.currentIndent > tk.previousIndent }

// popped returns how many levels the last observed line climbed, 0 when it
// stayed level or descended.
func (tk *tracker) popped() int {
	if tk.currentIndent >= tk.previousIndent {
		return 0
	}
	return tk.previousBlockLevel - tk.currentBlockLevel
}

// advance is the end-of-cycle bookkeeping: the current width and level become
// the reference for the next significant line.
func (tk *tracker) advance() {
	tk.previousIndent = tk.currentIndent
	tk.previousBlockLevel = tk.currentBlockLevel
}
