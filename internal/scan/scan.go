// Package scan walks documentation trees and records where glossary terms
// are used and where they are used without a link to the glossary.
package scan

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gobwas/glob"

	"github.com/aidanlsb/ubiq/internal/mdtext"
	"github.com/aidanlsb/ubiq/internal/variants"
)

// Index holds the result of one scan. Every map is keyed by the canonical
// glossary term.
type Index struct {
	// Terms are the scanned terms, sorted.
	Terms []string

	// Files records, per term, every file where any spelling occurs in the
	// stripped document text.
	Files map[string]map[string]struct{}

	// Unlinked records, per term and file, the ascending 1-indexed lines on
	// which a spelling occurs outside a glossary link.
	Unlinked map[string]map[string][]int

	// Scanned is the number of markdown files read.
	Scanned int
}

func newIndex(terms []string) *Index {
	sorted := append([]string(nil), terms...)
	sort.Strings(sorted)
	ix := &Index{
		Terms:    sorted,
		Files:    make(map[string]map[string]struct{}, len(terms)),
		Unlinked: make(map[string]map[string][]int, len(terms)),
	}
	for _, t := range sorted {
		ix.Files[t] = make(map[string]struct{})
		ix.Unlinked[t] = make(map[string][]int)
	}
	return ix
}

// FilesFor returns the files containing term, sorted.
func (ix *Index) FilesFor(term string) []string {
	files := make([]string, 0, len(ix.Files[term]))
	for f := range ix.Files[term] {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Found reports whether term occurs in at least one file.
func (ix *Index) Found(term string) bool {
	return len(ix.Files[term]) > 0
}

// UnlinkedFiles returns the files with unlinked usages of term, sorted.
func (ix *Index) UnlinkedFiles(term string) []string {
	files := make([]string, 0, len(ix.Unlinked[term]))
	for f, lines := range ix.Unlinked[term] {
		if len(lines) > 0 {
			files = append(files, f)
		}
	}
	sort.Strings(files)
	return files
}

// UnlinkedCount returns the total number of unlinked lines across all terms.
func (ix *Index) UnlinkedCount() int {
	n := 0
	for _, byFile := range ix.Unlinked {
		for _, lines := range byFile {
			n += len(lines)
		}
	}
	return n
}

// Scanner walks documentation roots for markdown files.
type Scanner struct {
	roots   []string
	base    string
	exclude []glob.Glob
	logger  *log.Logger
}

// Options configures a Scanner.
type Options struct {
	// Roots are the directories walked recursively.
	Roots []string

	// Base is the directory exclude patterns are relative to.
	Base string

	// Exclude holds slash-separated glob patterns; matching files and
	// directories are skipped.
	Exclude []string

	Logger *log.Logger
}

// New compiles the exclude patterns and returns a Scanner.
func New(opts Options) (*Scanner, error) {
	s := &Scanner{
		roots:  opts.Roots,
		base:   opts.Base,
		logger: opts.Logger,
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	for _, pattern := range opts.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		s.exclude = append(s.exclude, g)
	}
	return s, nil
}

// Scan reads every markdown file under the roots and indexes the usage of
// each term in set. It does not modify anything on disk.
//
// A read failure on any file aborts the scan.
func (s *Scanner) Scan(set variants.Set) (*Index, error) {
	terms := make([]string, 0, len(set))
	for t := range set {
		terms = append(terms, t)
	}
	ix := newIndex(terms)
	matchers := variants.Matchers(set)

	for _, root := range s.roots {
		if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("scan root does not exist", "root", root)
			continue
		}
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if s.excluded(path) {
				s.logger.Debug("excluded", "path", path)
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
				return nil
			}
			return s.scanFile(ix, matchers, path)
		})
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", root, err)
		}
	}
	return ix, nil
}

func (s *Scanner) scanFile(ix *Index, matchers map[string]*variants.Matcher, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	ix.Scanned++
	s.logger.Debug("scanning", "path", path)

	content := string(data)
	stripped := mdtext.Strip(strings.ToLower(content))
	lines := mdtext.SplitLines(content)

	for _, term := range ix.Terms {
		m := matchers[term]
		if m.MatchString(stripped) {
			ix.Files[term][path] = struct{}{}
		}
		if hits := UnlinkedLines(lines, m); len(hits) > 0 {
			ix.Unlinked[term][path] = hits
		}
	}
	return nil
}

// UnlinkedLines returns the 1-indexed lines holding at least one whole-word
// match of m that is not inside a glossary link. Lines of fenced code blocks
// are never flagged.
func UnlinkedLines(lines []string, m *variants.Matcher) []int {
	var hits []int
	fenced := mdtext.FencedLines(lines)
	for i, line := range lines {
		if fenced[i] {
			continue
		}
		if LineHasUnlinked(line, m) {
			hits = append(hits, i+1)
		}
	}
	return hits
}

// LineHasUnlinked reports whether line holds a prose match of m outside every
// glossary link on that line. Matches inside other links, link targets,
// inline code and autolinks are not prose.
func LineHasUnlinked(line string, m *variants.Matcher) bool {
	matches := m.FindAllIndex(line)
	if len(matches) == 0 {
		return false
	}
	linked := mdtext.GlossaryLinks(line)
	protected := mdtext.Protected(line)
	for _, loc := range matches {
		if !linked.Contains(loc[0], loc[1]) && !protected.Contains(loc[0], loc[1]) {
			return true
		}
	}
	return false
}

func (s *Scanner) excluded(path string) bool {
	if len(s.exclude) == 0 {
		return false
	}
	rel := path
	if s.base != "" {
		if r, err := filepath.Rel(s.base, path); err == nil {
			rel = r
		}
	}
	rel = filepath.ToSlash(rel)
	for _, g := range s.exclude {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
