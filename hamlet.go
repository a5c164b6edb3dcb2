// Package hamlet compiles indentation-based markup templates into the
// source of a rendering function in a target scripting language, and can
// execute the result on the bundled Starlark and Risor engines.
//
// The one-line usage is: create a renderer from template source with one of
// the From* functions, then call Render as many times as needed.
package hamlet

import (
	"fmt"

	"github.com/tavener/go-hamlet/engines/risor"
	"github.com/tavener/go-hamlet/engines/starlark"
	"github.com/tavener/go-hamlet/options"
	"github.com/tavener/go-hamlet/platform"
	"github.com/tavener/go-hamlet/platform/template"
	"github.com/tavener/go-hamlet/platform/template/loader"

	engineTypes "github.com/tavener/go-hamlet/engines/types"
)

// NewStarlarkRenderer creates a new renderer that compiles templates to
// Starlark.
func NewStarlarkRenderer(opts ...options.Option) (*RendererWrapper, error) {
	cfg := options.DefaultConfig(engineTypes.Starlark)
	return newRenderer(cfg, opts)
}

// NewRisorRenderer creates a new renderer that compiles templates to Risor.
func NewRisorRenderer(opts ...options.Option) (*RendererWrapper, error) {
	cfg := options.DefaultConfig(engineTypes.Risor)
	return newRenderer(cfg, opts)
}

func newRenderer(cfg *options.Config, opts []options.Option) (*RendererWrapper, error) {
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	// Apply defaults as a final step to fill in any missing values.
	if err := options.WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return createRenderer(cfg)
}

// createRenderer is a helper function to create a renderer from a config.
func createRenderer(cfg *options.Config) (*RendererWrapper, error) {
	var compiler template.Compiler
	var err error

	switch cfg.GetEngineType() {
	case engineTypes.Starlark:
		compiler, err = starlark.NewCompiler(
			starlark.WithLogHandler(cfg.GetHandler()),
			starlark.WithOptions(cfg.GetTemplateOptions()),
		)
	case engineTypes.Risor:
		compiler, err = risor.NewCompiler(
			risor.WithLogHandler(cfg.GetHandler()),
			risor.WithOptions(cfg.GetTemplateOptions()),
		)
	default:
		return nil, fmt.Errorf("unsupported engine type: %s", cfg.GetEngineType())
	}
	if err != nil {
		return nil, err
	}

	// Derive the unit ID from the source URL
	unitID := ""
	if sourceURL := cfg.GetLoader().GetSourceURL(); sourceURL != nil {
		unitID = sourceURL.String()
	}

	unit, err := template.NewTemplateUnit(
		cfg.GetHandler(),
		unitID,
		cfg.GetLoader(),
		compiler,
		cfg.GetDataProvider(),
		nil,
	)
	if err != nil {
		return nil, err
	}

	var delegate platform.Renderer
	switch cfg.GetEngineType() {
	case engineTypes.Starlark:
		delegate = starlark.NewRenderer(cfg.GetHandler(), unit)
	case engineTypes.Risor:
		delegate = risor.NewRenderer(cfg.GetHandler(), unit)
	}

	return NewRendererWrapper(delegate, unit), nil
}

// FromStarlarkString creates a Starlark-targeting renderer from template
// source held in a string.
func FromStarlarkString(content string, opts ...options.Option) (*RendererWrapper, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}

	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)
	return NewStarlarkRenderer(allOpts...)
}

// FromStarlarkFile creates a Starlark-targeting renderer from a template
// file. The file's path doubles as the template path unless overridden with
// WithTemplatePath.
func FromStarlarkFile(filePath string, opts ...options.Option) (*RendererWrapper, error) {
	l, err := loader.NewFromDisk(filePath)
	if err != nil {
		return nil, err
	}

	allOpts := append(
		[]options.Option{options.WithLoader(l), options.WithTemplatePath(filePath)},
		opts...)
	return NewStarlarkRenderer(allOpts...)
}

// FromRisorString creates a Risor-targeting renderer from template source
// held in a string.
func FromRisorString(content string, opts ...options.Option) (*RendererWrapper, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}

	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)
	return NewRisorRenderer(allOpts...)
}

// FromRisorFile creates a Risor-targeting renderer from a template file. The
// file's path doubles as the template path unless overridden with
// WithTemplatePath.
func FromRisorFile(filePath string, opts ...options.Option) (*RendererWrapper, error) {
	l, err := loader.NewFromDisk(filePath)
	if err != nil {
		return nil, err
	}

	allOpts := append(
		[]options.Option{options.WithLoader(l), options.WithTemplatePath(filePath)},
		opts...)
	return NewRisorRenderer(allOpts...)
}
