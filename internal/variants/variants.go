// Package variants derives the lexical spellings of glossary terms and
// matches them as whole words.
package variants

import (
	"sort"
	"strings"

	pluralize "github.com/gertd/go-pluralize"
)

// Set maps a canonical glossary term to its spellings.
type Set map[string][]string

// Expander derives spellings using an English inflection engine.
type Expander struct {
	inflect *pluralize.Client
}

// NewExpander returns an Expander with the standard English rules loaded.
func NewExpander() *Expander {
	return &Expander{inflect: pluralize.NewClient()}
}

// Expand returns the spellings searched for term: the lower-cased term, its
// plural, its singular (the lower-cased term itself when it has none), the
// capitalized form and the title-cased form.
//
// The result holds distinct spellings ordered longest first, so that an
// alternation built from it prefers "orders" over "order".
func (e *Expander) Expand(term string) []string {
	lower := strings.ToLower(strings.TrimSpace(term))
	if lower == "" {
		return nil
	}

	singular := lower
	if e.inflect.IsPlural(lower) {
		if s := e.inflect.Singular(lower); s != "" {
			singular = s
		}
	}

	seen := make(map[string]struct{}, 5)
	var out []string
	for _, v := range []string{lower, e.inflect.Plural(lower), singular, Capitalize(lower), Title(lower)} {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sortLongestFirst(out)
	return out
}

// ExpandAll expands every term.
func (e *Expander) ExpandAll(terms []string) Set {
	set := make(Set, len(terms))
	for _, term := range terms {
		set[term] = e.Expand(term)
	}
	return set
}

// Normalized returns the distinct lower-cased spellings, longest first.
func Normalized(spellings []string) []string {
	seen := make(map[string]struct{}, len(spellings))
	var out []string
	for _, s := range spellings {
		l := strings.ToLower(s)
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sortLongestFirst(out)
	return out
}

func sortLongestFirst(s []string) {
	sort.SliceStable(s, func(i, j int) bool {
		if len(s[i]) != len(s[j]) {
			return len(s[i]) > len(s[j])
		}
		return s[i] < s[j]
	})
}
