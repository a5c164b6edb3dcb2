// Package platform defines the engine-neutral contracts of the template
// pipeline: renderers that execute a compiled template and the responses
// they produce.
package platform

import (
	"context"

	"github.com/tavener/go-hamlet/platform/data"
)

// Renderer executes a compiled template unit and produces the rendered
// output. The context is used for cancellation and for carrying runtime
// data to context-aware data providers.
type Renderer interface {
	// Render runs the generated rendering function with the data returned
	// by the unit's data provider.
	Render(ctx context.Context) (Response, error)
}

// Response is the engine-neutral result of one render call.
type Response interface {
	// Type of the value the generated function returned.
	Type() data.Types

	// Inspect returns a string representation of the returned value.
	Inspect() string

	// Interface converts the returned value to a native Go value.
	Interface() any

	// HTML returns the rendered markup. For a well-formed template this is
	// the string the generated function returned.
	HTML() string

	// GetTemplateID returns the ID of the template unit that produced the
	// response.
	GetTemplateID() string

	// GetRenderTime returns the time it took to execute the generated
	// function.
	GetRenderTime() string
}
