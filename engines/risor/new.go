package risor

import (
	"log/slog"

	"github.com/tavener/go-hamlet/haml"
	"github.com/tavener/go-hamlet/platform/constants"
	"github.com/tavener/go-hamlet/platform/data"
	"github.com/tavener/go-hamlet/platform/template"
	"github.com/tavener/go-hamlet/platform/template/loader"
)

// FromLoader creates a Risor renderer from a loader with dynamic data only
// (ContextProvider). Use AddDataToContext on the renderer to attach data for
// each render call.
func FromLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
	opts haml.Options,
) (*Renderer, error) {
	return NewTemplateRenderer(
		logHandler,
		ldr,
		opts,
		data.NewContextProvider(constants.RenderData),
	)
}

// FromLoaderWithData creates a Risor renderer with both static and dynamic
// data capabilities. Static data is layered under the per-render context
// data.
func FromLoaderWithData(
	logHandler slog.Handler,
	ldr loader.Loader,
	opts haml.Options,
	staticData map[string]any,
) (*Renderer, error) {
	staticProvider := data.NewStaticProvider(staticData)
	dynamicProvider := data.NewContextProvider(constants.RenderData)
	compositeProvider := data.NewCompositeProvider(staticProvider, dynamicProvider)

	return NewTemplateRenderer(
		logHandler,
		ldr,
		opts,
		compositeProvider,
	)
}

// NewTemplateRenderer compiles the template behind the loader and returns a
// renderer ready for execution.
func NewTemplateRenderer(
	logHandler slog.Handler,
	ldr loader.Loader,
	opts haml.Options,
	dataProvider data.Provider,
) (*Renderer, error) {
	copts := []FunctionalOption{WithOptions(opts)}
	if logHandler != nil {
		copts = append(copts, WithLogHandler(logHandler))
	}

	compiler, err := NewCompiler(copts...)
	if err != nil {
		return nil, err
	}

	unitID := ""
	if sourceURL := ldr.GetSourceURL(); sourceURL != nil {
		unitID = sourceURL.String()
	}

	unit, err := template.NewTemplateUnit(
		logHandler,
		unitID,
		ldr,
		compiler,
		dataProvider,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return NewRenderer(logHandler, unit), nil
}
