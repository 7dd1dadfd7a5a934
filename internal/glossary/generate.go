package glossary

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aidanlsb/ubiq/internal/atomicfile"
	"github.com/aidanlsb/ubiq/internal/slugs"
	"github.com/aidanlsb/ubiq/internal/variants"
)

// Entry is one generated glossary entry.
type Entry struct {
	Term       string
	Definition string
	Source     string
}

// Sources locates the documents a glossary is generated from.
type Sources struct {
	// BusinessDir holds one page per business concept. The file stem names
	// the term, optionally prefixed with an ordering number ("03-pricing.md").
	BusinessDir string

	// ContextsDir holds one directory per bounded context; each README.md
	// defines the context named by its directory.
	ContextsDir string
}

// Collect gathers entries from both sources. Business pages take precedence
// over context READMEs that produce the same term key. Missing directories
// contribute nothing.
func Collect(src Sources) ([]Entry, error) {
	byKey := make(map[string]Entry)

	pages, err := filepath.Glob(filepath.Join(src.BusinessDir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("failed to list business pages: %w", err)
	}
	sort.Strings(pages)
	for _, page := range pages {
		term := businessTerm(strings.TrimSuffix(filepath.Base(page), ".md"))
		def, err := definitionFromFile(page)
		if err != nil {
			return nil, err
		}
		byKey[slugs.TermKey(term)] = Entry{Term: term, Definition: def, Source: page}
	}

	dirs, err := os.ReadDir(src.ContextsDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to list contexts: %w", err)
	}
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		readme := filepath.Join(src.ContextsDir, d.Name(), "README.md")
		if _, err := os.Stat(readme); err != nil {
			continue
		}
		term := variants.Title(strings.ReplaceAll(d.Name(), "-", " "))
		key := slugs.TermKey(term)
		if _, exists := byKey[key]; exists {
			continue
		}
		def, err := definitionFromFile(readme)
		if err != nil {
			return nil, err
		}
		byKey[key] = Entry{Term: term, Definition: def, Source: readme}
	}

	entries := make([]Entry, 0, len(byKey))
	for _, e := range byKey {
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		li, lj := strings.ToLower(entries[i].Term), strings.ToLower(entries[j].Term)
		if li != lj {
			return li < lj
		}
		return entries[i].Term < entries[j].Term
	})
	return entries, nil
}

// businessTerm turns "03-price-list" into "price list".
func businessTerm(stem string) string {
	if prefix, rest, ok := strings.Cut(stem, "-"); ok && rest != "" && isDigits(prefix) {
		stem = rest
	}
	return strings.TrimSpace(strings.ReplaceAll(stem, "-", " "))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func definitionFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return FirstParagraph(data), nil
}

// FirstParagraph returns the first prose paragraph of a markdown document,
// its source lines trimmed and joined with single spaces. Headings and code
// blocks are skipped.
func FirstParagraph(source []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var para *ast.Paragraph
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			para = node
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if para == nil {
		return ""
	}

	lines := para.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if line := strings.TrimSpace(string(seg.Value(source))); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// Render formats entries as a glossary document.
func Render(entries []Entry) []byte {
	var b bytes.Buffer
	b.WriteString("# Domain Glossary\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "- **%s**: %s\n", e.Term, e.Definition)
	}
	return b.Bytes()
}

// Write renders entries to path, creating parent directories as needed.
func Write(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create glossary directory: %w", err)
	}
	if err := atomicfile.WriteFile(path, Render(entries), 0o644); err != nil {
		return fmt.Errorf("failed to write glossary: %w", err)
	}
	return nil
}
