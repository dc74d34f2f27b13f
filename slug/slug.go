// Package slug builds URL-friendly slugs from titles and names.
package slug

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace      = regexp.MustCompile(`\s+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate lowercases s and keeps ASCII letters, digits and hyphens.
// "Hello, World! 2026" becomes "hello-world-2026".
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// GenerateOrRandom is Generate with a fallback for titles that have no
// ASCII characters at all, such as Devanagari-only headlines.
func GenerateOrRandom(prefix, s string) string {
	if out := Generate(s); out != "" {
		return out
	}
	return prefix + "-" + strings.SplitN(uuid.NewString(), "-", 2)[0]
}
