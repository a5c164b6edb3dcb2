package options

import (
	"log/slog"
	"os"

	engineTypes "github.com/tavener/go-hamlet/engines/types"
	"github.com/tavener/go-hamlet/haml"
	"github.com/tavener/go-hamlet/platform/data"
)

// DefaultConfig initializes a Config with sensible defaults.
func DefaultConfig(engineType engineTypes.Type) *Config {
	cfg := &Config{}
	cfg.SetEngineType(engineType)
	cfg.SetHandler(DefaultHandler())
	cfg.SetDataProvider(DefaultDataProvider())
	cfg.SetTemplateOptions(haml.DefaultOptions())
	return cfg
}

// DefaultHandler returns the default logging handler.
func DefaultHandler() slog.Handler {
	return slog.NewTextHandler(os.Stdout, nil)
}

// DefaultDataProvider returns the default data provider.
func DefaultDataProvider() data.Provider {
	return data.NewStaticProvider(map[string]any{})
}

// WithDefaults applies default values to any config properties left unset.
func WithDefaults() Option {
	return func(c *Config) error {
		if c.handler == nil {
			c.handler = DefaultHandler()
		}

		if c.dataProvider == nil {
			c.dataProvider = DefaultDataProvider()
		}

		if c.templateOptions.Namespace == "" {
			c.templateOptions.Namespace = haml.DefaultOptions().Namespace
		}
		if c.templateOptions.Path == "" {
			c.templateOptions.Path = haml.DefaultOptions().Path
		}

		return nil
	}
}
