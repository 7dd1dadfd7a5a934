// Package glossary reads, lints and generates the ubiquitous-language
// glossary file.
//
// A glossary entry is a single line of the form "- **Term**: definition".
// Only the term is significant to the consistency checker; definitions are
// free text.
package glossary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
)

var entryPattern = regexp.MustCompile(`^- \*\*([A-Za-z0-9 _-]+)\*\*:`)

// ParseTerms reads glossary entries from r and returns the distinct terms,
// sorted. Terms that differ only in case collapse to the first spelling seen.
func ParseTerms(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	var terms []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := entryPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		term := strings.TrimSpace(m[1])
		if term == "" {
			continue
		}
		key := strings.ToLower(term)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		terms = append(terms, term)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Strings(terms)
	return terms, nil
}

// LoadTerms reads the glossary at path.
func LoadTerms(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glossary: %w", err)
	}
	defer f.Close()

	terms, err := ParseTerms(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read glossary %s: %w", path, err)
	}
	return terms, nil
}

// FilterStoplist removes every term that exactly matches a stoplist entry.
func FilterStoplist(terms []string, stoplist map[string]struct{}) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		if _, stop := stoplist[term]; stop {
			continue
		}
		out = append(out, term)
	}
	return out
}
