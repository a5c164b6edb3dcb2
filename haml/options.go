package haml

import (
	"fmt"
	"strings"
)

// Format selects the markup dialect the emitters target. It only affects
// leaf-renderer details: doctypes, self-closing tag syntax, boolean
// attributes and the wrapping of style/script filters.
type Format int

const (
	// FormatHTML5 is the default and richest output format.
	FormatHTML5 Format = iota
	FormatHTML4
	FormatXHTML
)

func (f Format) String() string {
	switch f {
	case FormatHTML5:
		return "html5"
	case FormatHTML4:
		return "html4"
	case FormatXHTML:
		return "xhtml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a format name from configuration into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "html5":
		return FormatHTML5, nil
	case "html4":
		return FormatHTML4, nil
	case "xhtml":
		return FormatXHTML, nil
	default:
		return FormatHTML5, fmt.Errorf("unknown output format %q", name)
	}
}

// Options configures parsing and emission of one template. The zero value is
// not useful; start from DefaultOptions.
type Options struct {
	// EscapeHTML controls whether output code nodes and interpolations are
	// escaped by default. The '!=' marker always bypasses escaping and
	// '&=' always applies it, regardless of this setting.
	EscapeHTML bool

	// Format is the target markup dialect.
	Format Format

	// CustomEscape optionally names a caller-provided escape function that
	// the generated code calls instead of defining its own helper. The
	// reference is spliced verbatim; its root name is predeclared to the
	// engine so the generated module still compiles.
	CustomEscape string

	// Namespace is the container object the generated function is bound
	// into.
	Namespace string

	// Path is the template's file path, used to derive the dotted binding
	// path of the generated function. Path separators become namespace
	// segments; runs of whitespace or hyphens become underscores.
	Path string
}

// DefaultOptions returns the option set used when the caller specifies
// nothing: HTML5 output, escaping on, HAML namespace.
func DefaultOptions() Options {
	return Options{
		EscapeHTML: true,
		Format:     FormatHTML5,
		Namespace:  "HAML",
		Path:       "render",
	}
}
