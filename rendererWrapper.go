package hamlet

import (
	"context"
	"fmt"

	"github.com/tavener/go-hamlet/platform"
	"github.com/tavener/go-hamlet/platform/template"
)

// RendererWrapper wraps an engine-specific renderer and stores the
// TemplateUnit. This allows callers to follow the "compile once, render many
// times" pattern.
type RendererWrapper struct {
	delegate platform.Renderer
	unit     *template.TemplateUnit
}

// NewRendererWrapper creates a new renderer wrapper.
func NewRendererWrapper(
	delegate platform.Renderer,
	unit *template.TemplateUnit,
) *RendererWrapper {
	return &RendererWrapper{
		delegate: delegate,
		unit:     unit,
	}
}

// Render implements the platform.Renderer interface. It delegates to the
// wrapped renderer using the stored TemplateUnit.
func (r *RendererWrapper) Render(ctx context.Context) (platform.Response, error) {
	return r.delegate.Render(ctx)
}

// AddDataToContext enriches the context with data for a later render call.
// It delegates to the wrapped renderer if it accepts context data, otherwise
// it uses the TemplateUnit's DataProvider directly.
func (r *RendererWrapper) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	type contextAdder interface {
		AddDataToContext(context.Context, ...map[string]any) (context.Context, error)
	}

	if adder, ok := r.delegate.(contextAdder); ok {
		return adder.AddDataToContext(ctx, data...)
	}

	if r.unit == nil || r.unit.GetDataProvider() == nil {
		return ctx, fmt.Errorf("no data provider available")
	}

	if adder, ok := r.unit.GetDataProvider().(contextAdder); ok {
		return adder.AddDataToContext(ctx, data...)
	}
	return ctx, fmt.Errorf("data provider does not accept context data")
}

// GetTemplateUnit returns the stored TemplateUnit. This is useful for
// examining the generated source or writing it to disk.
func (r *RendererWrapper) GetTemplateUnit() *template.TemplateUnit {
	return r.unit
}

// WithTemplateUnit returns a new renderer wrapper with the specified
// TemplateUnit. This is useful for creating renderer variants with different
// data providers.
func (r *RendererWrapper) WithTemplateUnit(unit *template.TemplateUnit) *RendererWrapper {
	return &RendererWrapper{
		delegate: r.delegate,
		unit:     unit,
	}
}
