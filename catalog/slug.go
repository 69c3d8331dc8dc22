package catalog

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases name and collapses every run of non-alphanumeric
// characters into a single "-", trimming dashes from both ends.
func Slugify(name string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// ProductSlug returns the explicit slug when one was supplied, otherwise the
// slug derived from the product name.
func ProductSlug(explicit, name string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	return Slugify(name)
}
