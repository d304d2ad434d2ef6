package web

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"
)

// Transition mirrors the page-navigation accessor of the old browser
// client. Plain anchor navigation never tracks an in-flight transition,
// so IsNavigating always reports false and Start is a no-op.
type Transition struct{}

func (Transition) IsNavigating() bool { return false }

func (Transition) Start(path string) {}

// navLink renders a plain hyperlink to the destination path, passing
// any extra attributes through unchanged. Attributes are given as
// name/value pairs after the link text.
var attrNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

func navLink(href, text string, attrs ...string) (template.HTML, error) {
	if len(attrs)%2 != 0 {
		return "", fmt.Errorf("navLink: attributes must come in name/value pairs, got %d values", len(attrs))
	}

	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(template.HTMLEscapeString(href))
	b.WriteString(`"`)
	for i := 0; i < len(attrs); i += 2 {
		if !attrNamePattern.MatchString(attrs[i]) {
			return "", fmt.Errorf("navLink: invalid attribute name %q", attrs[i])
		}
		b.WriteString(" ")
		b.WriteString(attrs[i])
		b.WriteString(`="`)
		b.WriteString(template.HTMLEscapeString(attrs[i+1]))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(template.HTMLEscapeString(text))
	b.WriteString("</a>")
	return template.HTML(b.String()), nil
}
