// Package nav checks an mkdocs navigation tree against the documents on disk.
package nav

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Entry is one document reference in the navigation tree.
type Entry struct {
	// Section is the title path of the entry, e.g. "Domain > Pricing".
	// Untitled entries use "Item" as their last component.
	Section string

	// Ref is the document path as written in the navigation.
	Ref string

	// Line is the line of the reference in the config file.
	Line int
}

// Missing is a navigation entry whose document does not exist.
type Missing struct {
	Entry
	FullPath string
}

// Result holds the findings of one check.
type Result struct {
	Entries []Entry
	Missing []Missing
	Orphans []string
}

// Checker compares a navigation tree with a docs directory.
type Checker struct {
	// DocsDir is the directory navigation references resolve against.
	DocsDir string

	// Base is the directory exclude patterns are relative to.
	Base    string
	exclude []glob.Glob
}

// NewChecker returns a Checker skipping orphan candidates matching exclude.
func NewChecker(docsDir, base string, exclude []string) (*Checker, error) {
	c := &Checker{DocsDir: docsDir, Base: base}
	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		c.exclude = append(c.exclude, g)
	}
	return c, nil
}

// ParseFile reads the nav entries of an mkdocs config file.
func ParseFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return entries, nil
}

// Parse reads the nav entries of mkdocs config data. Only the nav key is
// interpreted, so custom tags elsewhere in the file are harmless.
func Parse(data []byte) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping at the top level, got %s", kindName(root.Kind))
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "nav" {
			return walkItems(root.Content[i+1], "")
		}
	}
	return nil, nil
}

func walkItems(node *yaml.Node, prefix string) ([]Entry, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: nav must be a list, got %s", node.Line, kindName(node.Kind))
	}
	var entries []Entry
	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			entries = append(entries, Entry{Section: prefix + "Item", Ref: item.Value, Line: item.Line})
		case yaml.MappingNode:
			for i := 0; i+1 < len(item.Content); i += 2 {
				title, value := item.Content[i].Value, item.Content[i+1]
				switch value.Kind {
				case yaml.ScalarNode:
					entries = append(entries, Entry{Section: prefix + title, Ref: value.Value, Line: value.Line})
				case yaml.SequenceNode:
					nested, err := walkItems(value, prefix+title+" > ")
					if err != nil {
						return nil, err
					}
					entries = append(entries, nested...)
				}
			}
		}
	}
	return entries, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}

// External reports whether ref points outside the docs tree (a URL).
func External(ref string) bool {
	return strings.Contains(ref, "://") || strings.HasPrefix(ref, "mailto:")
}

// Check resolves entries against the docs directory and lists orphans.
func (c *Checker) Check(entries []Entry) (*Result, error) {
	res := &Result{Entries: entries}
	referenced := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if External(e.Ref) {
			continue
		}
		referenced[filepath.ToSlash(filepath.Clean(filepath.FromSlash(e.Ref)))] = struct{}{}
		full := filepath.Join(c.DocsDir, filepath.FromSlash(e.Ref))
		if info, err := os.Stat(full); err != nil || !info.Mode().IsRegular() {
			res.Missing = append(res.Missing, Missing{Entry: e, FullPath: full})
		}
	}

	err := filepath.WalkDir(c.DocsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		if c.excluded(path) {
			return nil
		}
		rel, err := filepath.Rel(c.DocsDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if _, ok := referenced[rel]; !ok {
			res.Orphans = append(res.Orphans, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", c.DocsDir, err)
	}
	sort.Strings(res.Orphans)
	return res, nil
}

func (c *Checker) excluded(path string) bool {
	if len(c.exclude) == 0 {
		return false
	}
	rel := path
	if c.Base != "" {
		if r, err := filepath.Rel(c.Base, path); err == nil {
			rel = r
		}
	}
	rel = filepath.ToSlash(rel)
	for _, g := range c.exclude {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
