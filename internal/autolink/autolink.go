// Package autolink rewrites unlinked glossary term usages into markdown links
// to the glossary.
package autolink

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/aidanlsb/ubiq/internal/atomicfile"
	"github.com/aidanlsb/ubiq/internal/mdtext"
	"github.com/aidanlsb/ubiq/internal/scan"
	"github.com/aidanlsb/ubiq/internal/slugs"
	"github.com/aidanlsb/ubiq/internal/variants"
)

// Change records the lines rewritten in one file.
type Change struct {
	Path  string
	Lines []int
}

// Linker inserts glossary links.
type Linker struct {
	target string
	logger *log.Logger
}

// New returns a Linker pointing links at target, a glossary URL relative to
// the rewritten documents.
func New(target string, logger *log.Logger) *Linker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Linker{target: target, logger: logger}
}

// Link returns the markdown link for term, labelled with label.
func (l *Linker) Link(term, label string) string {
	return "[" + label + "](" + l.target + "#" + slugs.Anchor(term) + ")"
}

// Fix rewrites every unlinked usage recorded in ix. Each affected file is
// read once, rewritten in memory and replaced atomically only when at least
// one line changed. Changes are returned sorted by path.
func (l *Linker) Fix(ix *scan.Index, set variants.Set) ([]Change, error) {
	// Longer terms first so "Customer Order" is linked before "Order" can
	// claim part of it.
	terms := append([]string(nil), ix.Terms...)
	sort.SliceStable(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})

	byFile := make(map[string][]string)
	for _, term := range terms {
		for _, file := range ix.UnlinkedFiles(term) {
			byFile[file] = append(byFile[file], term)
		}
	}

	files := make([]string, 0, len(byFile))
	for f := range byFile {
		files = append(files, f)
	}
	sort.Strings(files)

	matchers := variants.Matchers(set)
	var changes []Change
	for _, file := range files {
		changed, err := l.fixFile(file, byFile[file], ix, matchers)
		if err != nil {
			return changes, err
		}
		if len(changed) > 0 {
			changes = append(changes, Change{Path: file, Lines: changed})
		}
	}
	return changes, nil
}

func (l *Linker) fixFile(path string, terms []string, ix *scan.Index, matchers map[string]*variants.Matcher) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	lines := mdtext.SplitLines(string(data))

	touched := make(map[int]struct{})
	for _, term := range terms {
		for _, n := range ix.Unlinked[term][path] {
			if n < 1 || n > len(lines) {
				continue
			}
			if updated, ok := l.LinkLine(lines[n-1], term, matchers[term]); ok {
				lines[n-1] = updated
				touched[n] = struct{}{}
			}
		}
	}
	if len(touched) == 0 {
		return nil, nil
	}

	if _, err := atomicfile.ReplaceIfChanged(path, []byte(strings.Join(lines, ""))); err != nil {
		return nil, err
	}
	l.logger.Debug("inserted glossary links", "path", path, "lines", len(touched))

	out := make([]int, 0, len(touched))
	for n := range touched {
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}

// LinkLine wraps every standalone occurrence of term's spellings in line with
// a glossary link. Occurrences inside an existing glossary link, any other
// link or image, inline code or an autolink are left alone. A spelling that
// only differs from term in case is replaced by term itself; an inflected
// spelling keeps its own text as the link label.
func (l *Linker) LinkLine(line, term string, m *variants.Matcher) (string, bool) {
	matches := m.FindAllIndex(line)
	if len(matches) == 0 {
		return line, false
	}
	protected := mdtext.Protected(line)
	linked := mdtext.GlossaryLinks(line)

	var b strings.Builder
	last := 0
	for _, loc := range matches {
		start, end := loc[0], loc[1]
		if linked.Contains(start, end) || protected.Contains(start, end) {
			continue
		}
		label := line[start:end]
		if strings.EqualFold(label, term) {
			label = term
		}
		b.WriteString(line[last:start])
		b.WriteString(l.Link(term, label))
		last = end
	}
	if last == 0 {
		return line, false
	}
	b.WriteString(line[last:])
	return b.String(), true
}
