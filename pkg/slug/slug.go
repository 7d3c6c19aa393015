// Package slug converts display names into URL-safe identifiers.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWord     = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen = regexp.MustCompile(`-{2,}`)
	validSlug   = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	// NFKD decomposition followed by removal of combining marks strips
	// diacritics ("Café" -> "Cafe") before the ASCII cleanup below.
	stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Make converts free text to a lowercase hyphenated token containing only
// [a-z0-9-]. Empty input yields an empty string.
func Make(text string) string {
	if text == "" {
		return ""
	}

	normalized, _, err := transform.String(stripMarks, text)
	if err != nil {
		normalized = text
	}

	s := strings.ToLower(strings.TrimSpace(normalized))
	s = strings.Join(strings.Fields(s), "-")
	s = nonWord.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// MakeUnique appends -1, -2, ... to the base slug until the result is absent
// from existing.
func MakeUnique(base string, existing []string) string {
	baseSlug := Make(base)

	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}

	if _, ok := taken[baseSlug]; !ok {
		return baseSlug
	}

	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s-%d", baseSlug, counter)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

// WithSuffix slugifies both parts and joins them with a hyphen.
func WithSuffix(text, suffix string) string {
	return Make(text) + "-" + Make(suffix)
}

// IsValid reports whether s is already slug-shaped.
func IsValid(s string) bool {
	return validSlug.MatchString(s)
}
