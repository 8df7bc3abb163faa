package textutil

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// ReadingCharsPerMinute is the assumed reading speed.
const ReadingCharsPerMinute = 400

var (
	markupTag   = regexp.MustCompile(`<[^>]*>`)
	stripPolicy = bluemonday.StrictPolicy()
)

// EstimateReadingMinutes returns the minutes needed to read content, counting
// visible characters after markup is removed and rounding up.
func EstimateReadingMinutes(content string) int {
	if content == "" {
		return 0
	}
	n := utf8.RuneCountInString(markupTag.ReplaceAllString(content, ""))
	return (n + ReadingCharsPerMinute - 1) / ReadingCharsPerMinute
}

// StripHTML returns the text content of an HTML fragment.
func StripHTML(s string) string {
	return html.UnescapeString(stripPolicy.Sanitize(s))
}

// TruncateText shortens text to maxLength characters, appending "...".
func TruncateText(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	r := []rune(text)
	if len(r) <= maxLength {
		return text
	}
	return strings.TrimSpace(string(r[:maxLength])) + "..."
}

// Excerpt derives a plain-text summary from post content.
func Excerpt(content string, maxLength int) string {
	text := strings.Join(strings.Fields(StripHTML(content)), " ")
	return TruncateText(text, maxLength)
}
