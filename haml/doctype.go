package haml

// DoctypeFor returns the doctype declaration for a '!!!' marker variant
// under the given output format. Unknown variants fall back to the format's
// default doctype.
func DoctypeFor(format Format, variant string) string {
	switch format {
	case FormatHTML4:
		switch variant {
		case "strict":
			return `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`
		case "frameset":
			return `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN" "http://www.w3.org/TR/html4/frameset.dtd">`
		default:
			return `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`
		}
	case FormatXHTML:
		switch variant {
		case "xml":
			return `<?xml version='1.0' encoding='utf-8' ?>`
		case "strict":
			return `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`
		case "frameset":
			return `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Frameset//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd">`
		case "5":
			return `<!DOCTYPE html>`
		default:
			return `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`
		}
	default:
		return `<!DOCTYPE html>`
	}
}
