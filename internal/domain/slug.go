package domain

import (
	"regexp"
	"strings"
)

var (
	slugStrip      = regexp.MustCompile(`[^\w\s]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL slug from an event title: lower-cased, non-word
// characters stripped, whitespace runs collapsed to single hyphens.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	return slugWhitespace.ReplaceAllString(s, "-")
}
