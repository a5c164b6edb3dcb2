package starlark

import "errors"

var (
	ErrContentNil         = errors.New("template content is nil")
	ErrValidationFailed   = errors.New("generated starlark validation error")
	ErrBytecodeNil        = errors.New("starlark bytecode is nil")
	ErrExecCreationFailed = errors.New("unable to create starlark executable")
)
