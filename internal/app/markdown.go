package app

import (
	"html"
	"html/template"
	"strings"
)

// MarkdownLite renders the limited markup accepted in product long
// descriptions and page content: the input is HTML-escaped first, then
// **bold** spans become <strong> and newlines become <br>. Nothing else
// is interpreted.
func MarkdownLite(input string) template.HTML {
	escaped := html.EscapeString(input)

	var b strings.Builder
	bold := false
	for {
		idx := strings.Index(escaped, "**")
		if idx < 0 {
			b.WriteString(escaped)
			break
		}
		b.WriteString(escaped[:idx])
		if bold {
			b.WriteString("</strong>")
		} else {
			b.WriteString("<strong>")
		}
		bold = !bold
		escaped = escaped[idx+2:]
	}
	if bold {
		// Unbalanced marker, close the span rather than leak the tag.
		b.WriteString("</strong>")
	}

	return template.HTML(strings.ReplaceAll(b.String(), "\n", "<br>"))
}
