package starlark

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tavener/go-hamlet/haml"
)

func emitSource(t *testing.T, source string, opts haml.Options) Module {
	t.Helper()
	tree, err := haml.Parse(source, opts)
	require.NoError(t, err)
	return Emit(tree, opts)
}

func TestEmitSimpleTree(t *testing.T) {
	t.Parallel()

	mod := emitSource(t, "%div\n  Hello", haml.DefaultOptions())

	require.Equal(t, "HAML.render", mod.Entrypoint)
	require.Equal(t, "_HAML_render", mod.FuncName)
	require.Equal(t, []string{"ctx"}, mod.Predeclared)

	require.Contains(t, mod.Source, "HAML = {}\n")
	require.Contains(t, mod.Source, "def _HAML_render(ctx):")
	require.Contains(t, mod.Source, `__o.append("<div>")`)
	require.Contains(t, mod.Source, `__o.append("Hello")`)
	require.Contains(t, mod.Source, `__o.append("</div>")`)
	require.Contains(t, mod.Source, `return "\n".join(__o)`)
	require.Contains(t, mod.Source, `HAML["render"] = _HAML_render`)
}

func TestEmitMultipleRootNodes(t *testing.T) {
	t.Parallel()

	mod := emitSource(t, "%header top\n%main body\n%footer bottom", haml.DefaultOptions())

	first := strings.Index(mod.Source, `__o.append("<header>top</header>")`)
	second := strings.Index(mod.Source, `__o.append("<main>body</main>")`)
	third := strings.Index(mod.Source, `__o.append("<footer>bottom</footer>")`)

	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
	require.Greater(t, third, second)
}

func TestEmitNestedNamespacePath(t *testing.T) {
	t.Parallel()

	opts := haml.DefaultOptions()
	opts.Path = "users/show.haml"

	mod := emitSource(t, "%p profile", opts)
	require.Equal(t, "HAML.users.show", mod.Entrypoint)
	require.Equal(t, "_HAML_users_show", mod.FuncName)
	require.Contains(t, mod.Source, `HAML.setdefault("users", {})`)
	require.Contains(t, mod.Source, `HAML["users"]["show"] = _HAML_users_show`)
}

func TestEmitInlineContentCollapses(t *testing.T) {
	t.Parallel()

	mod := emitSource(t, "%p Hello", haml.DefaultOptions())
	require.Contains(t, mod.Source, `__o.append("<p>Hello</p>")`)
}

func TestEmitOutputEscaping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		expect string
	}{
		{"escaped by default", "= x", `__o.append(__e(str(x)))`},
		{"unescaped marker", "!= x", `__o.append(str(x))`},
		{"forced escape", "&= x", `__o.append(__e(str(x)))`},
		{"preserve", "~ x", `__o.append(__e(str(x)).replace("\n", "&#x000A;"))`},
		{"inline code", "%p= x", `__o.append("<p>" + __e(str(x)) + "</p>")`},
		{"inline unescaped", "%p!= x", `__o.append("<p>" + str(x) + "</p>")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod := emitSource(t, tt.source, haml.DefaultOptions())
			require.Contains(t, mod.Source, tt.expect)
		})
	}
}

func TestEmitInterpolation(t *testing.T) {
	t.Parallel()

	mod := emitSource(t, `%p Hello #{name}!`, haml.DefaultOptions())
	require.Contains(t, mod.Source, `__o.append("<p>Hello " + __e(str(name)) + "!</p>")`)
}

func TestEmitSilentCodeIndentsChildren(t *testing.T) {
	t.Parallel()

	source := "- if ok:\n  %p yes"
	mod := emitSource(t, source, haml.DefaultOptions())

	require.Contains(t, mod.Source, "\n    if ok:\n")
	require.Contains(t, mod.Source, "\n        __o.append(\"<p>yes</p>\")\n")
}

func TestEmitAttributes(t *testing.T) {
	t.Parallel()

	opts := haml.DefaultOptions()

	mod := emitSource(t, `%a(href='x' data-n=item.n) go`, opts)
	require.Contains(t, mod.Source,
		`__o.append("<a href=\"x\" data-n=\"" + __e(str(item.n)) + "\">go</a>")`)

	mod = emitSource(t, `%input(type='text' required)/`, opts)
	require.Contains(t, mod.Source, `__o.append("<input type=\"text\" required>")`)
}

func TestEmitBooleanAttrXHTML(t *testing.T) {
	t.Parallel()

	opts := haml.DefaultOptions()
	opts.Format = haml.FormatXHTML

	mod := emitSource(t, `%input(required)/`, opts)
	require.Contains(t, mod.Source, `__o.append("<input required=\"required\" />")`)
}

func TestEmitIDAndClassFolding(t *testing.T) {
	t.Parallel()

	mod := emitSource(t, `%p.a(class='b') text`, haml.DefaultOptions())
	require.Contains(t, mod.Source, `__o.append("<p class=\"a b\">text</p>")`)
}

func TestEmitDoctype(t *testing.T) {
	t.Parallel()

	mod := emitSource(t, "!!! 5\n%html", haml.DefaultOptions())
	require.Contains(t, mod.Source, `__o.append("<!DOCTYPE html>")`)
}

func TestEmitComments(t *testing.T) {
	t.Parallel()

	mod := emitSource(t, "/ visible", haml.DefaultOptions())
	require.Contains(t, mod.Source, `__o.append("<!-- visible -->")`)

	mod = emitSource(t, "-# hidden\n  %p never", haml.DefaultOptions())
	require.NotContains(t, mod.Source, "never")

	mod = emitSource(t, "/[if IE] upgrade", haml.DefaultOptions())
	require.Contains(t, mod.Source, `__o.append("<!--[if IE]> upgrade <![endif]-->")`)
}

func TestEmitFilters(t *testing.T) {
	t.Parallel()

	opts := haml.DefaultOptions()

	mod := emitSource(t, ":javascript\n  go();", opts)
	require.Contains(t, mod.Source, `__o.append("<script>")`)
	require.Contains(t, mod.Source, `__o.append("go();")`)
	require.Contains(t, mod.Source, `__o.append("</script>")`)

	mod = emitSource(t, ":escaped\n  <b>", opts)
	require.Contains(t, mod.Source, `__o.append("&lt;b&gt;")`)

	mod = emitSource(t, ":preserve\n  one\n  two", opts)
	require.Contains(t, mod.Source, `__o.append("one&#x000A;two")`)

	mod = emitSource(t, ":code\n  extra = 1", opts)
	require.Contains(t, mod.Source, "\n    extra = 1\n")
}

func TestEmitCustomEscape(t *testing.T) {
	t.Parallel()

	opts := haml.DefaultOptions()
	opts.CustomEscape = "helpers.esc"

	mod := emitSource(t, "= x", opts)
	require.NotContains(t, mod.Source, "def __escape")
	require.Contains(t, mod.Source, "__e = helpers.esc")
	require.Equal(t, []string{"ctx", "helpers"}, mod.Predeclared)
}

func TestEmitNamespaceOption(t *testing.T) {
	t.Parallel()

	opts := haml.DefaultOptions()
	opts.Namespace = "Views"
	opts.Path = "home"

	mod := emitSource(t, "%p hi", opts)
	require.Contains(t, mod.Source, "Views = {}\n")
	require.Contains(t, mod.Source, `Views["home"] = _Views_home`)
	require.Equal(t, "Views.home", mod.Entrypoint)
}
