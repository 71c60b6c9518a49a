package view

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// Highlight HTML-escapes text and wraps every case-insensitive occurrence of
// query in <mark>. The query is matched literally.
func Highlight(text, query string) template.HTML {
	if query == "" {
		return template.HTML(html.EscapeString(text))
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return template.HTML(html.EscapeString(text))
	}

	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return template.HTML(html.EscapeString(text))
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(html.EscapeString(text[last:m[0]]))
		b.WriteString("<mark>")
		b.WriteString(html.EscapeString(text[m[0]:m[1]]))
		b.WriteString("</mark>")
		last = m[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
	return template.HTML(b.String())
}
