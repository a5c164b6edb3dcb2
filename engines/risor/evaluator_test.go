package risor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tavener/go-hamlet/haml"
	"github.com/tavener/go-hamlet/platform/data"
	"github.com/tavener/go-hamlet/platform/template/loader"
)

func renderString(t *testing.T, source string, opts haml.Options, staticData map[string]any) string {
	t.Helper()

	ldr, err := loader.NewFromString(source)
	require.NoError(t, err)

	renderer, err := FromLoaderWithData(nil, ldr, opts, staticData)
	require.NoError(t, err)

	resp, err := renderer.Render(context.Background())
	require.NoError(t, err)
	require.Equal(t, data.STRING, resp.Type())
	return resp.HTML()
}

func TestRenderSimpleTemplate(t *testing.T) {
	t.Parallel()

	html := renderString(t, "%div\n  Hello", haml.DefaultOptions(), nil)
	require.Equal(t, "<div>\nHello\n</div>", html)
}

func TestRenderWithData(t *testing.T) {
	t.Parallel()

	html := renderString(t, `%p= ctx["name"]`, haml.DefaultOptions(),
		map[string]any{"name": "Alice"})
	require.Equal(t, "<p>Alice</p>", html)
}

func TestRenderEscapesByDefault(t *testing.T) {
	t.Parallel()

	html := renderString(t, `%p= ctx["name"]`, haml.DefaultOptions(),
		map[string]any{"name": "<b>bold</b>"})
	require.Equal(t, "<p>&lt;b&gt;bold&lt;/b&gt;</p>", html)
}

func TestRenderInterpolation(t *testing.T) {
	t.Parallel()

	html := renderString(t, `%p Hello #{ctx["who"]}!`, haml.DefaultOptions(),
		map[string]any{"who": "world"})
	require.Equal(t, "<p>Hello world!</p>", html)
}

func TestRenderManyTimesWithContextData(t *testing.T) {
	t.Parallel()

	ldr, err := loader.NewFromString(`%p= ctx["n"]`)
	require.NoError(t, err)

	renderer, err := FromLoader(nil, ldr, haml.DefaultOptions())
	require.NoError(t, err)

	for _, n := range []string{"one", "two"} {
		ctx, err := renderer.AddDataToContext(context.Background(),
			map[string]any{"n": n})
		require.NoError(t, err)

		resp, err := renderer.Render(ctx)
		require.NoError(t, err)
		require.Equal(t, "<p>"+n+"</p>", resp.HTML())
	}
}

func TestResponseMetadata(t *testing.T) {
	t.Parallel()

	ldr, err := loader.NewFromString("%p hi")
	require.NoError(t, err)

	renderer, err := FromLoaderWithData(nil, ldr, haml.DefaultOptions(), nil)
	require.NoError(t, err)

	resp, err := renderer.Render(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, resp.GetTemplateID())
	require.NotEmpty(t, resp.GetRenderTime())
	require.Equal(t, "<p>hi</p>", resp.Interface())
}
