// Package slugs provides the slug helpers used for glossary anchors and
// glossary de-duplication keys.
//
// There are two strategies:
//   - Anchor slugs: fragment IDs appended to glossary links. These follow the
//     conservative heading transformation (lower-case, separators to dashes).
//   - Term keys: identity keys for generated glossary entries, built on
//     gosimple/slug so that spelling variants of one term collapse.
package slugs

import (
	"strings"
	"unicode"

	goslug "github.com/gosimple/slug"
)

// Anchor converts a glossary term to the fragment used in glossary links.
//
// A single-word term yields its lower-cased form ("Order" -> "order").
func Anchor(term string) string {
	var result strings.Builder
	prevDash := false

	for _, r := range strings.ToLower(term) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			result.WriteRune(r)
			prevDash = false
		case r == ' ' || r == '-' || r == '_' || r == ':' || r == '/':
			if !prevDash && result.Len() > 0 {
				result.WriteRune('-')
				prevDash = true
			}
		}
	}

	return strings.TrimSuffix(result.String(), "-")
}

// TermKey returns the identity key of a term: lower-cased with every
// non-alphanumeric character removed.
//
// "Customer Order", "customer-order" and "CustomerOrder" share one key.
func TermKey(term string) string {
	key := strings.ReplaceAll(goslug.Make(term), "-", "")
	if key == "" {
		key = strings.ToLower(strings.Join(strings.Fields(term), ""))
	}
	return key
}
