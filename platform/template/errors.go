package template

import "errors"

var (
	ErrCompiler   = errors.New("compiler failed or is invalid")
	ErrNoContent  = errors.New("template has no content")
	ErrOldContent = errors.New("template content has not changed")
)
