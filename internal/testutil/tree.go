// Package testutil provides reusable fixtures for documentation-tree tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestTree is a temporary project directory holding a documentation tree.
type TestTree struct {
	Path  string
	t     *testing.T
	files map[string]string
}

// NewTestTree creates a new tree builder. Call Build() to create the directory.
func NewTestTree(t *testing.T) *TestTree {
	t.Helper()
	return &TestTree{
		t:     t,
		files: make(map[string]string),
	}
}

// WithFile adds a file to the tree. The path is slash-separated and relative
// to the tree root.
func (tr *TestTree) WithFile(path, content string) *TestTree {
	tr.files[path] = content
	return tr
}

// WithGlossary writes a glossary at the default (new) glossary location.
func (tr *TestTree) WithGlossary(content string) *TestTree {
	return tr.WithFile("DDD_Artefacts/docs/ubiquitous-language/glossary.md", content)
}

// WithBusinessDoc adds a document under the default business-model scan root.
func (tr *TestTree) WithBusinessDoc(name, content string) *TestTree {
	return tr.WithFile("DDD_Artefacts/docs/business-model/"+name, content)
}

// WithContextDoc adds a document under the default bounded-contexts scan root.
func (tr *TestTree) WithContextDoc(name, content string) *TestTree {
	return tr.WithFile("DDD_Artefacts/docs/domain-knowledge/bounded-contexts/"+name, content)
}

// Build creates the tree directory and all configured files.
func (tr *TestTree) Build() *TestTree {
	tr.t.Helper()
	tr.Path = tr.t.TempDir()
	for path, content := range tr.files {
		tr.WriteFile(path, content)
	}
	return tr
}

// Abs returns the absolute path of a tree-relative path.
func (tr *TestTree) Abs(relPath string) string {
	return filepath.Join(tr.Path, filepath.FromSlash(relPath))
}

// WriteFile writes a file into the built tree, creating directories as needed.
func (tr *TestTree) WriteFile(relPath, content string) {
	tr.t.Helper()
	fullPath := tr.Abs(relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		tr.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		tr.t.Fatalf("failed to write %s: %v", relPath, err)
	}
}

// ReadFile returns the contents of a tree file.
func (tr *TestTree) ReadFile(relPath string) string {
	tr.t.Helper()
	data, err := os.ReadFile(tr.Abs(relPath))
	if err != nil {
		tr.t.Fatalf("failed to read %s: %v", relPath, err)
	}
	return string(data)
}

// AssertFileContains fails the test if the file does not contain substr.
func (tr *TestTree) AssertFileContains(relPath, substr string) {
	tr.t.Helper()
	content := tr.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		tr.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileNotContains fails the test if the file contains substr.
func (tr *TestTree) AssertFileNotContains(relPath, substr string) {
	tr.t.Helper()
	content := tr.ReadFile(relPath)
	if strings.Contains(content, substr) {
		tr.t.Errorf("expected file %s to not contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileEquals fails the test if the file content differs from want.
func (tr *TestTree) AssertFileEquals(relPath, want string) {
	tr.t.Helper()
	if got := tr.ReadFile(relPath); got != want {
		tr.t.Errorf("file %s:\ngot:\n%s\nwant:\n%s", relPath, got, want)
	}
}
