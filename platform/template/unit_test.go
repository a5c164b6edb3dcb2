package template

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	engineTypes "github.com/tavener/go-hamlet/engines/types"
	"github.com/tavener/go-hamlet/internal/helpers"
	"github.com/tavener/go-hamlet/platform/constants"
	"github.com/tavener/go-hamlet/platform/data"
	"github.com/tavener/go-hamlet/platform/template/loader"
)

type fakeContent struct {
	source string
}

func (c *fakeContent) GetSource() string              { return c.source }
func (c *fakeContent) GetGeneratedSource() string     { return "def render(ctx): pass" }
func (c *fakeContent) GetByteCode() any               { return []byte{0x01} }
func (c *fakeContent) GetEngineType() engineTypes.Type { return engineTypes.Starlark }
func (c *fakeContent) GetEntrypoint() string          { return "HAML.render" }

type fakeCompiler struct {
	err error
}

func (c *fakeCompiler) Compile(r io.ReadCloser) (GeneratedContent, error) {
	if c.err != nil {
		return nil, c.err
	}
	defer r.Close()
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &fakeContent{source: string(source)}, nil
}

func (c *fakeCompiler) String() string { return "template.fakeCompiler" }

func TestNewTemplateUnit(t *testing.T) {
	t.Parallel()

	ldr, err := loader.NewFromString("%p hi")
	require.NoError(t, err)

	t.Run("compiles through the loader", func(t *testing.T) {
		t.Parallel()
		unit, err := NewTemplateUnit(nil, "v1", ldr, &fakeCompiler{}, nil, nil)
		require.NoError(t, err)

		require.Equal(t, "v1", unit.GetID())
		require.Equal(t, "%p hi", unit.GetContent().GetSource())
		require.Equal(t, engineTypes.Starlark, unit.GetEngineType())
		require.False(t, unit.GetCreatedAt().IsZero())
	})

	t.Run("derives id from source checksum", func(t *testing.T) {
		t.Parallel()
		unit, err := NewTemplateUnit(nil, "", ldr, &fakeCompiler{}, nil, nil)
		require.NoError(t, err)

		require.Equal(t, helpers.SHA256("%p hi")[:12], unit.GetID())
	})

	t.Run("rejects nil collaborators", func(t *testing.T) {
		t.Parallel()
		_, err := NewTemplateUnit(nil, "", ldr, nil, nil, nil)
		require.Error(t, err)

		_, err = NewTemplateUnit(nil, "", nil, &fakeCompiler{}, nil, nil)
		require.Error(t, err)
	})

	t.Run("propagates compiler failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		_, err := NewTemplateUnit(nil, "", ldr, &fakeCompiler{err: boom}, nil, nil)
		require.ErrorIs(t, err, boom)
	})

	t.Run("static data alone", func(t *testing.T) {
		t.Parallel()
		unit, err := NewTemplateUnit(nil, "", ldr, &fakeCompiler{}, nil,
			map[string]any{"title": "home"})
		require.NoError(t, err)

		got, err := unit.GetDataProvider().GetData(context.Background())
		require.NoError(t, err)
		require.Equal(t, map[string]any{"title": "home"}, got)
	})

	t.Run("runtime provider shadows static data", func(t *testing.T) {
		t.Parallel()
		runtime := data.NewContextProvider(constants.RenderData)
		unit, err := NewTemplateUnit(nil, "", ldr, &fakeCompiler{}, runtime,
			map[string]any{"title": "default", "lang": "en"})
		require.NoError(t, err)

		ctx, err := runtime.AddDataToContext(context.Background(),
			map[string]any{"title": "custom"})
		require.NoError(t, err)

		got, err := unit.GetDataProvider().GetData(ctx)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"title": "custom", "lang": "en"}, got)
	})
}
