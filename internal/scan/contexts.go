package scan

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	coreContextsSegment  = "core-contexts"
	businessModelSegment = "business-model"
)

// ClassifyContext derives the bounded-context label of a document from its
// directory layout. Under a core-contexts directory the label is the next
// directory name; anywhere under a business-model directory it is
// "business-model". Other paths have no label.
func ClassifyContext(path string) (string, bool) {
	parts := strings.Split(filepath.ToSlash(filepath.Dir(path)), "/")
	for i, part := range parts {
		if part == coreContextsSegment {
			if i+1 < len(parts) && parts[i+1] != "" {
				return parts[i+1], true
			}
			return "", false
		}
	}
	for _, part := range parts {
		if part == businessModelSegment {
			return businessModelSegment, true
		}
	}
	return "", false
}

// ContextOf classifies path by its location below base, so directories above
// the project root never contribute a label.
func ContextOf(base, path string) (string, bool) {
	if base != "" {
		if rel, err := filepath.Rel(base, path); err == nil && !strings.HasPrefix(filepath.ToSlash(rel), "../") {
			path = rel
		}
	}
	return ClassifyContext(path)
}

// ContextMap maps each term to the sorted, distinct context labels of the
// files it was found in.
type ContextMap map[string][]string

// Contexts builds the ContextMap of ix, classifying files relative to base.
// Terms found in no labelled file map to an empty list.
func (ix *Index) Contexts(base string) ContextMap {
	cm := make(ContextMap, len(ix.Terms))
	for _, term := range ix.Terms {
		seen := make(map[string]struct{})
		labels := []string{}
		for file := range ix.Files[term] {
			label, ok := ContextOf(base, file)
			if !ok {
				continue
			}
			if _, dup := seen[label]; dup {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
		sort.Strings(labels)
		cm[term] = labels
	}
	return cm
}

// Ambiguous reports whether term was found in more than one context.
func (cm ContextMap) Ambiguous(term string) bool {
	return len(cm[term]) > 1
}

// AmbiguousTerms returns the ambiguous terms, sorted.
func (cm ContextMap) AmbiguousTerms() []string {
	var terms []string
	for term, labels := range cm {
		if len(labels) > 1 {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)
	return terms
}
