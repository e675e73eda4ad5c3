package chatclient

import (
	"html"
	"regexp"
	"strings"
)

var (
	boldPattern  = regexp.MustCompile(`\*\*(.+?)\*\*`)
	phonePattern = regexp.MustCompile(`\(408\)\s*427-5318`)
)

const phoneLink = `<a href="tel:+14084275318" style="color:inherit;text-decoration:underline;">(408) 427-5318</a>`

// Format renders an assistant reply for the widget: the raw text is
// HTML-escaped first, then the minimal markdown-like touches are applied,
// so markup injected into the reply can never execute.
func Format(text string) string {
	escaped := html.EscapeString(text)
	escaped = boldPattern.ReplaceAllString(escaped, "<strong>$1</strong>")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return phonePattern.ReplaceAllString(escaped, phoneLink)
}

func trimMessage(s string) string {
	return strings.TrimSpace(s)
}
