package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tavener/go-hamlet/platform/constants"
)

func TestStaticProvider(t *testing.T) {
	t.Parallel()

	t.Run("returns configured data", func(t *testing.T) {
		t.Parallel()
		p := NewStaticProvider(map[string]any{"name": "Alice"})

		got, err := p.GetData(context.Background())
		require.NoError(t, err)
		require.Equal(t, map[string]any{"name": "Alice"}, got)
	})

	t.Run("callers cannot mutate the source map", func(t *testing.T) {
		t.Parallel()
		p := NewStaticProvider(map[string]any{"name": "Alice"})

		got, err := p.GetData(context.Background())
		require.NoError(t, err)
		got["name"] = "Mallory"

		again, err := p.GetData(context.Background())
		require.NoError(t, err)
		require.Equal(t, "Alice", again["name"])
	})

	t.Run("nil map yields empty data", func(t *testing.T) {
		t.Parallel()
		p := NewStaticProvider(nil)

		got, err := p.GetData(context.Background())
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestContextProvider(t *testing.T) {
	t.Parallel()

	t.Run("round trips data through the context", func(t *testing.T) {
		t.Parallel()
		p := NewContextProvider(constants.RenderData)

		ctx, err := p.AddDataToContext(context.Background(),
			map[string]any{"n": 1})
		require.NoError(t, err)

		got, err := p.GetData(ctx)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"n": 1}, got)
	})

	t.Run("later maps override earlier ones", func(t *testing.T) {
		t.Parallel()
		p := NewContextProvider(constants.RenderData)

		ctx, err := p.AddDataToContext(context.Background(),
			map[string]any{"n": 1, "keep": true})
		require.NoError(t, err)
		ctx, err = p.AddDataToContext(ctx, map[string]any{"n": 2})
		require.NoError(t, err)

		got, err := p.GetData(ctx)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"n": 2, "keep": true}, got)
	})

	t.Run("missing value yields empty map", func(t *testing.T) {
		t.Parallel()
		p := NewContextProvider(constants.RenderData)

		got, err := p.GetData(context.Background())
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("empty key is an error", func(t *testing.T) {
		t.Parallel()
		p := NewContextProvider("")

		_, err := p.GetData(context.Background())
		require.Error(t, err)

		_, err = p.AddDataToContext(context.Background(), map[string]any{})
		require.Error(t, err)
	})

	t.Run("wrong value type is an error", func(t *testing.T) {
		t.Parallel()
		p := NewContextProvider(constants.RenderData)
		ctx := context.WithValue(context.Background(), constants.RenderData, "nope")

		_, err := p.GetData(ctx)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid render data type")
	})
}

func TestCompositeProvider(t *testing.T) {
	t.Parallel()

	t.Run("later providers override earlier ones", func(t *testing.T) {
		t.Parallel()
		p := NewCompositeProvider(
			NewStaticProvider(map[string]any{"a": 1, "b": 1}),
			NewStaticProvider(map[string]any{"b": 2}),
		)

		got, err := p.GetData(context.Background())
		require.NoError(t, err)
		require.Equal(t, map[string]any{"a": 1, "b": 2}, got)
	})

	t.Run("runtime data shadows static defaults", func(t *testing.T) {
		t.Parallel()
		p := NewCompositeProvider(
			NewStaticProvider(map[string]any{"title": "default", "lang": "en"}),
			NewContextProvider(constants.RenderData),
		)

		ctx, err := p.AddDataToContext(context.Background(),
			map[string]any{"title": "custom"})
		require.NoError(t, err)

		got, err := p.GetData(ctx)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"title": "custom", "lang": "en"}, got)
	})

	t.Run("no context-capable provider is an error", func(t *testing.T) {
		t.Parallel()
		p := NewCompositeProvider(NewStaticProvider(nil))

		_, err := p.AddDataToContext(context.Background(), map[string]any{})
		require.Error(t, err)
	})

	t.Run("nil providers are skipped", func(t *testing.T) {
		t.Parallel()
		p := NewCompositeProvider(nil, NewStaticProvider(map[string]any{"a": 1}))

		got, err := p.GetData(context.Background())
		require.NoError(t, err)
		require.Equal(t, map[string]any{"a": 1}, got)
	})
}
