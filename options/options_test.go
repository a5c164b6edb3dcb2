package options

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	engineTypes "github.com/tavener/go-hamlet/engines/types"
	"github.com/tavener/go-hamlet/haml"
	"github.com/tavener/go-hamlet/platform/data"
	"github.com/tavener/go-hamlet/platform/template/loader"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig(engineTypes.Starlark)

	require.Equal(t, engineTypes.Starlark, cfg.GetEngineType())
	require.NotNil(t, cfg.GetHandler())
	require.NotNil(t, cfg.GetDataProvider())
	require.Equal(t, haml.DefaultOptions(), cfg.GetTemplateOptions())
}

func TestOptionsModifyConfig(t *testing.T) {
	t.Parallel()

	ldr, err := loader.NewFromString("%p hi")
	require.NoError(t, err)

	handler := slog.NewTextHandler(os.Stderr, nil)
	provider := data.NewStaticProvider(map[string]any{"k": "v"})

	cfg := DefaultConfig(engineTypes.Risor)
	for _, opt := range []Option{
		WithLogger(handler),
		WithDataProvider(provider),
		WithLoader(ldr),
		WithTemplatePath("users/show.haml"),
		WithNamespace("T"),
		WithFormat(haml.FormatXHTML),
		WithEscapeDisabled(),
		WithCustomEscape("helpers.esc"),
	} {
		require.NoError(t, opt(cfg))
	}

	require.Equal(t, handler, cfg.GetHandler())
	require.Equal(t, provider, cfg.GetDataProvider())
	require.Equal(t, ldr, cfg.GetLoader())

	topts := cfg.GetTemplateOptions()
	require.Equal(t, "users/show.haml", topts.Path)
	require.Equal(t, "T", topts.Namespace)
	require.Equal(t, haml.FormatXHTML, topts.Format)
	require.False(t, topts.EscapeHTML)
	require.Equal(t, "helpers.esc", topts.CustomEscape)
}

func TestNilAndEmptyValuesAreIgnored(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig(engineTypes.Starlark)
	defaultHandler := cfg.GetHandler()
	defaultProvider := cfg.GetDataProvider()

	require.NoError(t, WithLogger(nil)(cfg))
	require.NoError(t, WithDataProvider(nil)(cfg))
	require.NoError(t, WithLoader(nil)(cfg))
	require.NoError(t, WithNamespace("")(cfg))
	require.NoError(t, WithTemplatePath("")(cfg))

	require.Equal(t, defaultHandler, cfg.GetHandler())
	require.Equal(t, defaultProvider, cfg.GetDataProvider())
	require.Nil(t, cfg.GetLoader())
	require.Equal(t, "HAML", cfg.GetTemplateOptions().Namespace)
	require.Equal(t, "render", cfg.GetTemplateOptions().Path)
}

func TestWithDefaultsFillsUnsetFields(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.SetEngineType(engineTypes.Starlark)

	require.NoError(t, WithDefaults()(cfg))

	require.NotNil(t, cfg.GetHandler())
	require.NotNil(t, cfg.GetDataProvider())
	require.Equal(t, "HAML", cfg.GetTemplateOptions().Namespace)
	require.Equal(t, "render", cfg.GetTemplateOptions().Path)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	ldr, err := loader.NewFromString("%p hi")
	require.NoError(t, err)

	cfg := DefaultConfig(engineTypes.Starlark)
	require.Error(t, cfg.Validate())

	require.NoError(t, WithLoader(ldr)(cfg))
	require.NoError(t, cfg.Validate())

	cfg.SetEngineType("")
	require.Error(t, cfg.Validate())
}
