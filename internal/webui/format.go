package webui

import (
	"html/template"
	"regexp"
	"strings"
)

var (
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)\s]+)\)`)
)

// formatMessage renders the small markdown subset used by canned responses
// (bold, links, line breaks) as HTML. Input is escaped first.
func formatMessage(content string) template.HTML {
	s := template.HTMLEscapeString(content)
	s = boldPattern.ReplaceAllString(s, "<strong>$1</strong>")
	s = linkPattern.ReplaceAllString(s, `<a href="$2" target="_blank" rel="noopener">$1</a>`)
	s = strings.ReplaceAll(s, "\n", "<br>")
	return template.HTML(s)
}
