package scan

import (
	"bytes"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/aidanlsb/ubiq/internal/testutil"
	"github.com/aidanlsb/ubiq/internal/variants"
)

func expand(terms ...string) variants.Set {
	return variants.NewExpander().ExpandAll(terms)
}

func scanTree(t *testing.T, tree *testutil.TestTree, set variants.Set, exclude ...string) *Index {
	t.Helper()
	s, err := New(Options{
		Roots:   []string{tree.Path},
		Base:    tree.Path,
		Exclude: exclude,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ix, err := s.Scan(set)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	return ix
}

func TestScanNoSubstringMatches(t *testing.T) {
	tree := testutil.NewTestTree(t).
		WithFile("docs/a.md", "reordering\n").
		Build()

	ix := scanTree(t, tree, expand("Order"))
	if ix.Found("Order") {
		t.Fatalf("Order found in %v, want no occurrence", ix.FilesFor("Order"))
	}
	if len(ix.UnlinkedFiles("Order")) != 0 {
		t.Fatalf("Unlinked = %v, want none", ix.Unlinked["Order"])
	}
}

func TestScanFindsOccurrencesAndUnlinkedLines(t *testing.T) {
	tree := testutil.NewTestTree(t).
		WithFile("docs/a.md", strings.Join([]string{
			"# Orders",
			"",
			"An Order is created when a customer checks out.",
			"See the [Order](../ubiquitous-language/guidelines/glossary.md#order) entry.",
			"Two orders and an order in one line.",
			"An [Order](orders.md) link elsewhere.",
			"",
		}, "\n")).
		WithFile("docs/notes.txt", "Order everywhere\n").
		WithFile("docs/b.md", "Nothing relevant.\n").
		Build()

	ix := scanTree(t, tree, expand("Order", "Invoice"))

	if got := ix.FilesFor("Order"); len(got) != 1 || got[0] != tree.Abs("docs/a.md") {
		t.Fatalf("FilesFor(Order) = %v", got)
	}
	if ix.Found("Invoice") {
		t.Error("Invoice should not be found")
	}
	// Line 6 only uses the term as the text of a link to another document.
	want := []int{1, 3, 5}
	if got := ix.Unlinked["Order"][tree.Abs("docs/a.md")]; !reflect.DeepEqual(got, want) {
		t.Fatalf("unlinked lines = %v, want %v", got, want)
	}
	if ix.Scanned != 2 {
		t.Errorf("Scanned = %d, want 2", ix.Scanned)
	}
	if ix.UnlinkedCount() != 3 {
		t.Errorf("UnlinkedCount() = %d, want 3", ix.UnlinkedCount())
	}
}

func TestScanGlossaryLinkCaseInsensitive(t *testing.T) {
	tree := testutil.NewTestTree(t).
		WithFile("docs/a.md", "The [order](../GLOSSARY.MD#order) flow.\n").
		Build()

	ix := scanTree(t, tree, expand("Order"))
	if !ix.Found("Order") {
		t.Fatal("Order not found")
	}
	if files := ix.UnlinkedFiles("Order"); len(files) != 0 {
		t.Fatalf("UnlinkedFiles() = %v, want none", files)
	}
}

func TestScanLineFlaggedForSeveralTerms(t *testing.T) {
	tree := testutil.NewTestTree(t).
		WithFile("docs/a.md", "Each Invoice settles one Order.\n").
		Build()

	ix := scanTree(t, tree, expand("Order", "Invoice"))
	for _, term := range []string{"Order", "Invoice"} {
		if got := ix.Unlinked[term][tree.Abs("docs/a.md")]; !reflect.DeepEqual(got, []int{1}) {
			t.Errorf("%s unlinked = %v, want [1]", term, got)
		}
	}
}

func TestScanExclude(t *testing.T) {
	tree := testutil.NewTestTree(t).
		WithFile("docs/drafts/a.md", "Order\n").
		WithFile("docs/final/b.md", "Order\n").
		Build()

	ix := scanTree(t, tree, expand("Order"), "docs/drafts/**")
	if got := ix.FilesFor("Order"); len(got) != 1 || got[0] != tree.Abs("docs/final/b.md") {
		t.Fatalf("FilesFor(Order) = %v", got)
	}
}

func TestNewRejectsBadPattern(t *testing.T) {
	if _, err := New(Options{Exclude: []string{"[unterminated"}}); err == nil {
		t.Fatal("expected error for invalid glob")
	}
}

func TestScanMissingRootIsSkipped(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(Options{
		Roots:  []string{t.TempDir() + "/missing"},
		Logger: log.New(&buf),
	})
	if err != nil {
		t.Fatal(err)
	}
	ix, err := s.Scan(expand("Order"))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if ix.Scanned != 0 {
		t.Errorf("Scanned = %d", ix.Scanned)
	}
	if !strings.Contains(buf.String(), "scan root does not exist") {
		t.Errorf("expected warning, got %q", buf.String())
	}
}

func TestFoundWithoutUnlinkedLines(t *testing.T) {
	// The only occurrence is inside a glossary link: found, but not unlinked.
	tree := testutil.NewTestTree(t).
		WithFile("docs/a.md", "## [Order](glossary.md#order)\n").
		Build()

	ix := scanTree(t, tree, expand("Order"))
	if !ix.Found("Order") {
		t.Fatal("Order not found")
	}
	if len(ix.UnlinkedFiles("Order")) != 0 {
		t.Fatal("expected no unlinked lines")
	}
}

func TestUnlinkedIgnoresNonProse(t *testing.T) {
	tree := testutil.NewTestTree(t).
		WithFile("docs/a.md", strings.Join([]string{
			"See [the flow](../orders/flow.md) for details.",
			"Served from <https://example.com/order>.",
			"Call `order.Submit()` first.",
			"```",
			"order := New()",
			"```",
			"But this order counts.",
			"",
		}, "\n")).
		Build()

	ix := scanTree(t, tree, expand("Order"))
	if got := ix.Unlinked["Order"][tree.Abs("docs/a.md")]; !reflect.DeepEqual(got, []int{7}) {
		t.Fatalf("unlinked lines = %v, want [7]", got)
	}
}

func TestScanUnreadableFileAborts(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files regardless of mode")
	}
	tree := testutil.NewTestTree(t).
		WithFile("docs/a.md", "Order\n").
		WithFile("docs/b.md", "Order\n").
		Build()
	locked := tree.Abs("docs/b.md")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o644) })

	s, err := New(Options{Roots: []string{tree.Path}})
	if err != nil {
		t.Fatal(err)
	}
	ix, err := s.Scan(expand("Order"))
	if err == nil {
		t.Fatalf("Scan() = %+v, want read error", ix)
	}
	if !strings.Contains(err.Error(), "b.md") {
		t.Errorf("error %q does not name the unreadable file", err)
	}
}
