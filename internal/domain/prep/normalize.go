package prep

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s]`)
	whitespace = regexp.MustCompile(`\s+`)
	descriptor = regexp.MustCompile(`\b(fresh|dried|minced|chopped|sliced|diced|whole|ground|crushed)\b`)
)

// NormalizeName canonicalizes an ingredient name for knowledge base lookup:
// lowercase, punctuation stripped, preparation descriptors removed, runs of
// whitespace collapsed. "Fresh Chicken Breast!" and "chicken breast" map to
// the same key. This is deliberately more aggressive than the shopping
// list's aggregation key; a descriptor can change what you buy but not how
// you batch cook it.
func NormalizeName(name string) string {
	s := strings.ToLower(name)
	s = nonWord.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = descriptor.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
