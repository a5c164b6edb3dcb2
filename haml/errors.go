package haml

import (
	"errors"
	"fmt"
)

var (
	// ErrIndentation reports leading whitespace that is not a whole
	// multiple of the inferred tab unit.
	ErrIndentation = errors.New("indentation error")

	// ErrBlockTooDeep reports a nesting jump of more than one level
	// between two consecutive significant lines.
	ErrBlockTooDeep = errors.New("block level too deep")
)

// ParseError is the fatal result of a failed parse. It carries one of the
// sentinel errors above plus the 1-based source line that tripped it. There
// is no recovery: a template either parses fully or fails here.
type ParseError struct {
	Err  error
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s in line %d", e.Err, e.Line)
}

func (e *ParseError) Unwrap() error { return e.Err }
