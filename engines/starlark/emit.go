package starlark

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tavener/go-hamlet/haml"
	"github.com/tavener/go-hamlet/platform/constants"
)

// Module is the result of emitting one template: the generated Starlark
// source plus the names a host needs to reach the rendering function.
type Module struct {
	// Source is the complete generated Starlark module.
	Source string

	// Entrypoint is the dotted namespace path the function is registered
	// under, e.g. "HAML.users.show".
	Entrypoint string

	// FuncName is the top-level identifier the function is defined as.
	FuncName string

	// Predeclared lists the names the module expects the host to provide,
	// always including the render context binding.
	Predeclared []string
}

// Emit assembles the Starlark module for a parsed template tree. The module
// defines one rendering function taking the context dict, registers it in a
// nested namespace dict, and carries its own escaping helper unless a custom
// one is configured.
func Emit(tree *haml.Tree, opts haml.Options) Module {
	e := &emitter{tree: tree, opts: opts}

	segs := haml.PathSegments(opts.Path)
	fn := haml.FuncName(opts.Namespace, segs)

	e.buf.WriteString(opts.Namespace + " = {}\n")
	if opts.CustomEscape == "" {
		e.escapeHelper()
	}

	escRef := opts.CustomEscape
	if escRef == "" {
		escRef = "__escape"
	}

	fmt.Fprintf(&e.buf, "def %s(%s):\n", fn, constants.Ctx)
	e.line(0, "__e = "+escRef)
	e.line(0, "__o = []")
	for _, c := range tree.Node(tree.Root()).Children {
		e.node(c)
	}
	e.line(0, `return "\n".join(__o)`)

	// Register the function under its dotted path, creating intermediate
	// namespace dicts as needed.
	target := opts.Namespace
	for _, seg := range segs[:len(segs)-1] {
		fmt.Fprintf(&e.buf, "%s.setdefault(%s, {})\n", target, strconv.Quote(seg))
		target += "[" + strconv.Quote(seg) + "]"
	}
	fmt.Fprintf(&e.buf, "%s[%s] = %s\n", target, strconv.Quote(segs[len(segs)-1]), fn)

	predeclared := []string{constants.Ctx}
	if opts.CustomEscape != "" {
		root, _, _ := strings.Cut(opts.CustomEscape, ".")
		predeclared = append(predeclared, root)
	}

	return Module{
		Source:      e.buf.String(),
		Entrypoint:  opts.Namespace + "." + strings.Join(segs, "."),
		FuncName:    fn,
		Predeclared: predeclared,
	}
}

type emitter struct {
	tree *haml.Tree
	opts haml.Options
	buf  strings.Builder
}

func (e *emitter) escapeHelper() {
	e.buf.WriteString(`def __escape(text):
    s = str(text)
    s = s.replace("&", "&amp;")
    s = s.replace("<", "&lt;")
    s = s.replace(">", "&gt;")
    s = s.replace("\"", "&quot;")
    s = s.replace("'", "&#39;")
    return s
`)
}

// line writes one statement inside the rendering function. level is the
// embedded-code nesting depth, so statements land inside the code blocks
// spliced around them.
func (e *emitter) line(level int, s string) {
	e.buf.WriteString(strings.Repeat("    ", level+1))
	e.buf.WriteString(s)
	e.buf.WriteByte('\n')
}

func (e *emitter) push(level int, expr string) {
	e.line(level, "__o.append("+expr+")")
}

func (e *emitter) node(id haml.NodeID) {
	n := e.tree.Node(id)
	switch n.Kind {
	case haml.KindText:
		x := &strExpr{}
		e.interp(x, n.Expression, e.opts.EscapeHTML)
		e.push(n.CodeBlockLevel, x.expr())
		e.children(id)

	case haml.KindMarkup:
		e.markup(id, n)

	case haml.KindCode:
		e.code(n)
		e.children(id)

	case haml.KindComment:
		e.comment(id, n)

	case haml.KindFilter:
		e.filter(id, n)

	case haml.KindRoot:
		e.children(id)
	}
}

func (e *emitter) children(id haml.NodeID) {
	for _, c := range e.tree.Node(id).Children {
		e.node(c)
	}
}

func (e *emitter) markup(id haml.NodeID, n *haml.Node) {
	tag := haml.ParseTagLine(n.Expression)
	level := n.CodeBlockLevel

	if tag.IsDoctype {
		e.push(level, strconv.Quote(haml.DoctypeFor(e.opts.Format, tag.Doctype)))
		e.children(id)
		return
	}

	open := e.openTag(tag)
	hasChildren := len(n.Children) > 0

	if !hasChildren && tag.InlineCode == "" && tag.InlineText == "" &&
		(tag.SelfClose || haml.SelfClosing(tag.Tag)) {
		if e.opts.Format == haml.FormatXHTML {
			open.text(" />")
		} else {
			open.text(">")
		}
		e.push(level, open.expr())
		return
	}

	open.text(">")

	if !hasChildren {
		e.inlineContent(open, tag)
		open.text("</" + tag.Tag + ">")
		e.push(level, open.expr())
		return
	}

	e.push(level, open.expr())
	if tag.InlineCode != "" || tag.InlineText != "" {
		x := &strExpr{}
		e.inlineContent(x, tag)
		e.push(level, x.expr())
	}
	e.children(id)
	e.push(level, strconv.Quote("</"+tag.Tag+">"))
}

func (e *emitter) inlineContent(x *strExpr, tag haml.TagLine) {
	switch {
	case tag.InlineCode != "":
		esc := e.opts.EscapeHTML
		if tag.Unescaped {
			esc = false
		}
		if tag.ForceEscape {
			esc = true
		}
		x.code(e.outputExpr(tag.InlineCode, esc))
	case tag.InlineText != "":
		e.interp(x, tag.InlineText, e.opts.EscapeHTML)
	}
}

// openTag builds the opening tag up to, but not including, the closing
// bracket. Static id and class attributes fold into the shorthand values;
// everything dynamic concatenates at render time.
func (e *emitter) openTag(t haml.TagLine) *strExpr {
	x := &strExpr{}
	x.text("<" + t.Tag)

	id := t.ID
	classes := append([]string{}, t.Classes...)
	var rest []haml.TagAttr
	for _, a := range t.Attrs {
		switch {
		case a.Boolean:
			rest = append(rest, a)
		case !a.Dynamic && a.Name == "class" && !haml.Interpolated(a.Value):
			classes = append(classes, a.Value)
		case !a.Dynamic && a.Name == "id" && !haml.Interpolated(a.Value):
			id = a.Value
		default:
			rest = append(rest, a)
		}
	}

	if id != "" {
		x.text(` id="` + id + `"`)
	}
	if len(classes) > 0 {
		x.text(` class="` + strings.Join(classes, " ") + `"`)
	}
	for _, a := range rest {
		if a.Boolean {
			if e.opts.Format == haml.FormatXHTML {
				x.text(" " + a.Name + `="` + a.Name + `"`)
			} else {
				x.text(" " + a.Name)
			}
			continue
		}
		x.text(" " + a.Name + `="`)
		if a.Dynamic {
			x.code(e.outputExpr(a.Value, e.opts.EscapeHTML))
		} else {
			e.interp(x, a.Value, e.opts.EscapeHTML)
		}
		x.text(`"`)
	}
	return x
}

func (e *emitter) code(n *haml.Node) {
	content := haml.CodeContent(n.Expression)
	if n.Silent {
		e.line(n.CodeBlockLevel, content)
		return
	}
	expr := e.outputExpr(content, n.Escape)
	if n.Preserve {
		expr += `.replace("\n", "&#x000A;")`
	}
	e.push(n.CodeBlockLevel, expr)
}

func (e *emitter) comment(id haml.NodeID, n *haml.Node) {
	if n.Silent {
		return
	}

	rest := strings.TrimPrefix(n.Expression, "/")
	open, close := "<!--", "-->"
	if strings.HasPrefix(rest, "[") {
		if i := strings.Index(rest, "]"); i >= 0 {
			open = "<!--" + rest[:i+1] + ">"
			close = "<![endif]-->"
			rest = rest[i+1:]
		}
	}
	text := strings.TrimSpace(rest)
	level := n.CodeBlockLevel

	if len(n.Children) == 0 {
		if text != "" {
			e.push(level, strconv.Quote(open+" "+text+" "+close))
		} else {
			e.push(level, strconv.Quote(open+" "+close))
		}
		return
	}

	e.push(level, strconv.Quote(open))
	if text != "" {
		e.push(level, strconv.Quote(text))
	}
	e.children(id)
	e.push(level, strconv.Quote(close))
}

func (e *emitter) filter(id haml.NodeID, n *haml.Node) {
	// Continuation nodes are consumed through their opener.
	if n.FilterName == "" {
		return
	}

	lines := e.tree.FilterLines(id)
	level := n.CodeBlockLevel

	pushAll := func(ls []string) {
		for _, l := range ls {
			e.push(level, strconv.Quote(l))
		}
	}

	switch n.FilterName {
	case "plain":
		pushAll(lines)

	case "escaped":
		for _, l := range lines {
			e.push(level, strconv.Quote(haml.EscapeHTML(l)))
		}

	case "preserve":
		e.push(level, strconv.Quote(strings.Join(lines, "&#x000A;")))

	case "cdata":
		e.push(level, strconv.Quote("<![CDATA["))
		pushAll(lines)
		e.push(level, strconv.Quote("]]>"))

	case "css":
		switch e.opts.Format {
		case haml.FormatXHTML:
			e.push(level, strconv.Quote(`<style type='text/css'>`))
			e.push(level, strconv.Quote("/*<![CDATA[*/"))
			pushAll(lines)
			e.push(level, strconv.Quote("/*]]>*/"))
			e.push(level, strconv.Quote("</style>"))
		case haml.FormatHTML4:
			e.push(level, strconv.Quote(`<style type='text/css'>`))
			pushAll(lines)
			e.push(level, strconv.Quote("</style>"))
		default:
			e.push(level, strconv.Quote("<style>"))
			pushAll(lines)
			e.push(level, strconv.Quote("</style>"))
		}

	case "javascript":
		switch e.opts.Format {
		case haml.FormatXHTML:
			e.push(level, strconv.Quote(`<script type='text/javascript'>`))
			e.push(level, strconv.Quote("//<![CDATA["))
			pushAll(lines)
			e.push(level, strconv.Quote("//]]>"))
			e.push(level, strconv.Quote("</script>"))
		case haml.FormatHTML4:
			e.push(level, strconv.Quote(`<script type='text/javascript'>`))
			pushAll(lines)
			e.push(level, strconv.Quote("</script>"))
		default:
			e.push(level, strconv.Quote("<script>"))
			pushAll(lines)
			e.push(level, strconv.Quote("</script>"))
		}

	case "code":
		for _, l := range lines {
			if strings.TrimSpace(l) == "" {
				continue
			}
			e.line(level, l)
		}
	}
}

func (e *emitter) interp(x *strExpr, s string, escape bool) {
	for _, seg := range haml.Interpolate(s) {
		if seg.Code {
			x.code(e.outputExpr(seg.Text, escape))
		} else {
			x.text(seg.Text)
		}
	}
}

func (e *emitter) outputExpr(code string, escape bool) string {
	if escape {
		return "__e(str(" + code + "))"
	}
	return "str(" + code + ")"
}

// strExpr accumulates a string-valued Starlark expression, merging adjacent
// literal text into single quoted chunks joined by '+' with code fragments.
type strExpr struct {
	parts []string
	lit   strings.Builder
}

func (x *strExpr) text(s string) {
	x.lit.WriteString(s)
}

func (x *strExpr) code(expr string) {
	x.flush()
	x.parts = append(x.parts, expr)
}

func (x *strExpr) flush() {
	if x.lit.Len() > 0 {
		x.parts = append(x.parts, strconv.Quote(x.lit.String()))
		x.lit.Reset()
	}
}

func (x *strExpr) expr() string {
	x.flush()
	if len(x.parts) == 0 {
		return `""`
	}
	return strings.Join(x.parts, " + ")
}
