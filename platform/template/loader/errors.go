package loader

import "errors"

var (
	ErrSchemeUnsupported    = errors.New("unsupported scheme")
	ErrTemplateNotAvailable = errors.New("template not available")
	ErrInputEmpty           = errors.New("input is empty")
)
