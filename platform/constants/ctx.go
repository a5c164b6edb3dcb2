// Package constants holds the names shared between generated code and the
// engines that execute it.
package constants

// ContextKey is the type used for storing render data in a context.Context.
type ContextKey string

const (
	// Ctx is the top-scope variable name through which the generated
	// rendering function receives its data context.
	Ctx = "ctx"

	// RenderData is the context key the ContextProvider reads render data
	// from.
	RenderData ContextKey = "render_data"
)
