package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrSlugDerivation indicates that neither an explicit slug nor a derivable
// non-empty normalized title exists for a page.
var ErrSlugDerivation = errors.New("no slug derivable for page")

// Slugify resolves the URL identifier of a page: the explicit config slug
// when present, otherwise the normalized title (lower-cased, runs of
// non-alphanumeric characters collapsed to single dashes).
func Slugify(c PageConfig) (string, error) {
	if c.Slug != "" {
		return c.Slug, nil
	}
	slug := normalizeTitle(c.Title)
	if slug == "" {
		return "", fmt.Errorf("%w: title %q", ErrSlugDerivation, c.Title)
	}
	return slug, nil
}

// HiddenSlug reports whether a slug marks its page as hidden.
func HiddenSlug(slug string) bool {
	return strings.HasPrefix(slug, "_") || strings.HasPrefix(slug, ".")
}

func normalizeTitle(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		} else {
			dash = true
		}
	}
	return b.String()
}
