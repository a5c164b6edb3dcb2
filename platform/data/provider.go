// Package data supplies the data context a template is rendered with.
package data

import "context"

// Provider is an interface for retrieving the data context for template
// rendering. Implementations may return static data, read it from the
// context, or compose both.
type Provider interface {
	// GetData retrieves the data map for one render call. The returned map
	// becomes the single context argument of the generated rendering
	// function.
	GetData(ctx context.Context) (map[string]any, error)
}
