package risor

import "errors"

var (
	ErrContentNil         = errors.New("template content is nil")
	ErrValidationFailed   = errors.New("generated risor validation error")
	ErrBytecodeNil        = errors.New("risor bytecode is nil")
	ErrExecCreationFailed = errors.New("unable to create risor executable")
)
