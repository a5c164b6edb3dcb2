package haml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseSingle(t *testing.T, line string) *Node {
	t.Helper()
	tree := mustParse(t, line)
	root := tree.Node(tree.Root())
	require.Len(t, root.Children, 1)
	return tree.Node(root.Children[0])
}

func TestClassifyKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expression string
		kind       NodeKind
	}{
		{"%div", KindMarkup},
		{"%fb:name", KindMarkup},
		{"#main", KindMarkup},
		{".wrapper", KindMarkup},
		{"!!! 5", KindMarkup},
		{"- x = 1", KindCode},
		{"= x", KindCode},
		{"!= x", KindCode},
		{"&= x", KindCode},
		{"~ x", KindCode},
		{"/ rendered comment", KindComment},
		{"/[if IE] conditional", KindComment},
		{"-# silent comment", KindComment},
		{":javascript", KindFilter},
		{":css", KindFilter},
		{":plain", KindFilter},
		{"just some text", KindText},
		{":unknownfilter", KindText},
		{"123 starts with digit", KindText},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			n := parseSingle(t, tt.expression)
			require.Equal(t, tt.kind, n.Kind, "expression %q", tt.expression)
		})
	}
}

func TestClassifyCodeMarkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expression string
		silent     bool
		escape     bool
		preserve   bool
	}{
		{"- count = 0", true, false, false},
		{"= user.name", false, true, false},
		{"!= raw_html", false, false, false},
		{"&= always_escaped", false, true, false},
		{"~ multi_line", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			n := parseSingle(t, tt.expression)
			require.Equal(t, KindCode, n.Kind)
			require.Equal(t, tt.silent, n.Silent)
			require.Equal(t, tt.escape, n.Escape)
			require.Equal(t, tt.preserve, n.Preserve)
		})
	}
}

func TestClassifyEscapeDisabledByOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.EscapeHTML = false

	tree, err := Parse("= x\n&= y", opts)
	require.NoError(t, err)

	root := tree.Node(tree.Root())
	require.Len(t, root.Children, 2)
	require.False(t, tree.Node(root.Children[0]).Escape)

	// The forced-escape marker wins over the option.
	require.True(t, tree.Node(root.Children[1]).Escape)
}

func TestClassifySilentCommentBeforeCode(t *testing.T) {
	t.Parallel()

	// '-#' must classify as a comment even though '-' alone opens code.
	n := parseSingle(t, "-# not code")
	require.Equal(t, KindComment, n.Kind)
	require.True(t, n.Silent)
}

func TestClassifyFilterContentStaysRaw(t *testing.T) {
	t.Parallel()

	// Lines under a filter keep their raw text even when they look like
	// markup or code.
	source := ":plain\n  %div\n  - not code\n  = not output"
	tree := mustParse(t, source)

	opener := tree.Node(tree.Root()).Children[0]
	require.Equal(t, []string{"%div", "- not code", "= not output"},
		tree.FilterLines(opener))

	for _, c := range tree.Node(opener).Children {
		require.Equal(t, KindFilter, tree.Node(c).Kind)
		require.Equal(t, opener, tree.Node(c).FilterTop)
	}
}

func TestCodeContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"- x = 1", "x = 1"},
		{"= user.name", "user.name"},
		{"!= raw", "raw"},
		{"&= safe", "safe"},
		{"~ poem", "poem"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, CodeContent(tt.in), "input %q", tt.in)
	}
}

func TestNodeKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "root", KindRoot.String())
	require.Equal(t, "markup", KindMarkup.String())
	require.Equal(t, "filter", KindFilter.String())
	require.Equal(t, "NodeKind(42)", NodeKind(42).String())
}
