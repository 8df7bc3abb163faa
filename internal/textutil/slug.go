// Package textutil holds the pure formatting helpers shared by the services:
// slugs, reading time, dates, file checks and small text utilities.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars   = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators = regexp.MustCompile(`[\s_-]+`)
	edgeHyphens    = regexp.MustCompile(`^-+|-+$`)

	pinyinArgs = pinyin.NewArgs()
)

// Slugify converts text to a URL-safe slug.
// "Hello, World!" -> "hello-world".
// "  snake_case  title " -> "snake-case-title".
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}

// EnsureSlug normalizes a caller-supplied slug. Applying it twice gives the
// same result as applying it once.
func EnsureSlug(slug string) string {
	if slug == "" {
		return ""
	}
	return Slugify(slug)
}

// SlugifyTransliterated derives a slug from text that may contain Han
// characters or accented Latin letters.
// "Go 语言入门" -> "go-yu-yan-ru-men".
// "Crème brûlée" -> "creme-brulee".
func SlugifyTransliterated(text string) string {
	return Slugify(foldAccents(Transliterate(text)))
}

// Transliterate replaces every Han character with its toneless pinyin
// syllable, separated by spaces. Other characters pass through.
func Transliterate(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !unicode.Is(unicode.Han, r) {
			b.WriteRune(r)
			continue
		}
		py := pinyin.Pinyin(string(r), pinyinArgs)
		if len(py) == 0 || len(py[0]) == 0 {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
		b.WriteString(py[0][0])
		b.WriteByte(' ')
	}
	return b.String()
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
