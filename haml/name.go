package haml

import (
	"regexp"
	"strings"
)

var (
	wsHyphenRe = regexp.MustCompile(`[\s-]+`)
	nonIdentRe = regexp.MustCompile(`\W`)
)

// PathSegments derives the namespace path of the generated function from a
// template file path: the extension is dropped, path separators become
// segments, and runs of whitespace or hyphens become underscores, so
// "users/show page.haml" maps to ["users", "show_page"].
func PathSegments(path string) []string {
	path = strings.ReplaceAll(path, "\\", "/")
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") && i > 0 {
		path = path[:i]
	}

	var segs []string
	for _, seg := range strings.Split(path, "/") {
		seg = wsHyphenRe.ReplaceAllString(strings.TrimSpace(seg), "_")
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	if len(segs) == 0 {
		segs = []string{"render"}
	}
	return segs
}

// FuncName builds the identifier the generated rendering function is defined
// as, from the namespace name and the path segments. Characters illegal in
// an identifier are replaced with underscores.
func FuncName(namespace string, segments []string) string {
	name := "_" + namespace + "_" + strings.Join(segments, "_")
	return nonIdentRe.ReplaceAllString(name, "_")
}
