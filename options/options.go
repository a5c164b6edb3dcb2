// Package options holds the shared configuration for creating template
// renderers through the root API.
package options

import (
	"fmt"
	"log/slog"

	engineTypes "github.com/tavener/go-hamlet/engines/types"
	"github.com/tavener/go-hamlet/haml"
	"github.com/tavener/go-hamlet/platform/data"
	"github.com/tavener/go-hamlet/platform/template/loader"
)

// Config holds all configuration for creating a template renderer.
type Config struct {
	// Logger for the pipeline
	handler slog.Handler
	// Target engine the generated code runs on (starlark, risor)
	engineType engineTypes.Type
	// Data provider for passing values to the rendering function
	dataProvider data.Provider
	// Loader for the template source
	loader loader.Loader
	// Template compilation options (escaping, format, namespace, path)
	templateOptions haml.Options
}

// Option is a function that modifies Config.
type Option func(*Config) error

// WithLogger sets the logger for the template pipeline.
func WithLogger(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

// WithDataProvider sets the data provider for render calls.
func WithDataProvider(provider data.Provider) Option {
	return func(c *Config) error {
		if provider != nil {
			c.dataProvider = provider
		}
		return nil
	}
}

// WithLoader sets the template source loader.
func WithLoader(l loader.Loader) Option {
	return func(c *Config) error {
		if l != nil {
			c.loader = l
		}
		return nil
	}
}

// WithTemplatePath sets the template's logical path, which determines the
// name and namespace location of the generated rendering function.
func WithTemplatePath(path string) Option {
	return func(c *Config) error {
		if path != "" {
			c.templateOptions.Path = path
		}
		return nil
	}
}

// WithNamespace sets the top-level namespace object generated functions are
// registered in.
func WithNamespace(namespace string) Option {
	return func(c *Config) error {
		if namespace != "" {
			c.templateOptions.Namespace = namespace
		}
		return nil
	}
}

// WithFormat sets the output markup format (html5, html4 or xhtml).
func WithFormat(format haml.Format) Option {
	return func(c *Config) error {
		c.templateOptions.Format = format
		return nil
	}
}

// WithEscapeDisabled turns off HTML escaping of evaluated output by default.
// Individual lines can still opt back in with the forced-escape marker.
func WithEscapeDisabled() Option {
	return func(c *Config) error {
		c.templateOptions.EscapeHTML = false
		return nil
	}
}

// WithCustomEscape sets a host-provided escaping function reference to be
// used instead of the generated built-in one.
func WithCustomEscape(ref string) Option {
	return func(c *Config) error {
		c.templateOptions.CustomEscape = ref
		return nil
	}
}

// Validate performs basic validation on the configuration.
func (c *Config) Validate() error {
	if c.loader == nil {
		return fmt.Errorf("no loader specified")
	}
	if c.engineType == "" {
		return fmt.Errorf("no engine type specified")
	}
	return nil
}

// GetHandler returns the configured logger.
func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

// SetHandler sets the logger.
func (c *Config) SetHandler(handler slog.Handler) {
	c.handler = handler
}

// GetEngineType returns the configured target engine.
func (c *Config) GetEngineType() engineTypes.Type {
	return c.engineType
}

// SetEngineType sets the target engine.
func (c *Config) SetEngineType(engineType engineTypes.Type) {
	c.engineType = engineType
}

// GetDataProvider returns the configured data provider.
func (c *Config) GetDataProvider() data.Provider {
	return c.dataProvider
}

// SetDataProvider sets the data provider.
func (c *Config) SetDataProvider(provider data.Provider) {
	c.dataProvider = provider
}

// GetLoader returns the configured loader.
func (c *Config) GetLoader() loader.Loader {
	return c.loader
}

// GetTemplateOptions returns the template compilation options.
func (c *Config) GetTemplateOptions() haml.Options {
	return c.templateOptions
}

// SetTemplateOptions sets the template compilation options.
func (c *Config) SetTemplateOptions(opts haml.Options) {
	c.templateOptions = opts
}
