package haml

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes markup-significant characters in static content at
// compile time, using the same character table the generated escape helper
// applies at render time.
func EscapeHTML(s string) string { return htmlEscaper.Replace(s) }
