package cli

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/aidanlsb/ubiq/internal/testutil"
)

// runCLI executes the root command in-process and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootFlag, configPath, verboseFlag = ".", "", false
	checkFix, lintFix, generateDryRun = false, false, false
	cfg, logger = nil, nil

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), err
}

const checkoutDoc = "# Checkout\n\nAn Order is created at checkout.\n"

func checkoutTree(t *testing.T) *testutil.TestTree {
	return testutil.NewTestTree(t).
		WithGlossary("# Glossary\n\n- **Order**: A customer purchase request.\n- **Refund**: Money returned.\n").
		WithBusinessDoc("checkout.md", checkoutDoc).
		Build()
}

func TestCheckReportsWithoutRewriting(t *testing.T) {
	tree := checkoutTree(t)

	out, err := runCLI(t, "check", "--root", tree.Path)
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	for _, want := range []string{
		"=== Ubiquitous Language Consistency Report ===",
		"Order in DDD_Artefacts/docs/business-model/checkout.md: unlinked on lines 3",
		"Glossary terms NOT found in any documentation:\n  Refund",
		"Checklist for 'Order':",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n---\n%s", want, out)
		}
	}
	if strings.Contains(out, "Auto-Fix Mode") {
		t.Error("fix summary printed without --fix")
	}
	tree.AssertFileEquals("DDD_Artefacts/docs/business-model/checkout.md", checkoutDoc)
}

func TestCheckFixIsIdempotent(t *testing.T) {
	tree := checkoutTree(t)
	doc := "DDD_Artefacts/docs/business-model/checkout.md"

	out, err := runCLI(t, "check", "--root", tree.Path, "--fix")
	if err != nil {
		t.Fatalf("check --fix error = %v", err)
	}
	if !strings.Contains(out, "business-model/checkout.md: lines 3") {
		t.Errorf("fix summary missing rewritten file\n---\n%s", out)
	}
	if !strings.Contains(out, "All glossary term usages are properly linked to the glossary.") {
		t.Errorf("usages left unlinked after fix\n---\n%s", out)
	}
	tree.AssertFileContains(doc, "An [Order](../ubiquitous-language/guidelines/glossary.md#order) is created")
	fixed := tree.ReadFile(doc)

	out, err = runCLI(t, "check", "--root", tree.Path, "--fix")
	if err != nil {
		t.Fatalf("second check --fix error = %v", err)
	}
	if !strings.Contains(out, "No glossary links needed to be inserted.") {
		t.Errorf("second pass inserted links\n---\n%s", out)
	}
	tree.AssertFileEquals(doc, fixed)
}

func TestCheckMissingGlossary(t *testing.T) {
	tree := testutil.NewTestTree(t).WithBusinessDoc("a.md", "text\n").Build()

	_, err := runCLI(t, "check", "--root", tree.Path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("check error = %v, want not-exist", err)
	}
}

func TestCheckHonoursConfigFile(t *testing.T) {
	tree := testutil.NewTestTree(t).
		WithFile("ubiq.toml", "glossary_paths = [\"docs/glossary.md\"]\nscan_dirs = [\"docs\"]\nexclude = [\"docs/drafts/**\"]\n").
		WithFile("docs/glossary.md", "- **Invoice**: A bill.\n").
		WithFile("docs/billing.md", "Every Invoice is numbered.\n").
		WithFile("docs/drafts/wip.md", "Invoice draft.\n").
		Build()

	out, err := runCLI(t, "check", "--root", tree.Path)
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	if !strings.Contains(out, "docs/billing.md") {
		t.Errorf("configured scan dir not scanned\n---\n%s", out)
	}
	if strings.Contains(out, "wip.md") {
		t.Errorf("excluded file reported\n---\n%s", out)
	}
}

func TestUnknownConfigKeyFails(t *testing.T) {
	tree := testutil.NewTestTree(t).WithFile("ubiq.toml", "scan_dir = [\"x\"]\n").Build()

	_, err := runCLI(t, "check", "--root", tree.Path)
	if err == nil || !strings.Contains(err.Error(), "scan_dir") {
		t.Fatalf("check error = %v, want unknown key error", err)
	}
}

func TestLintGlossary(t *testing.T) {
	const glossary = "# Glossary\n\n- **Order**: ok\n- Refund: missing bold\n- **order**: duplicate\n"

	t.Run("report only", func(t *testing.T) {
		tree := testutil.NewTestTree(t).WithGlossary(glossary).Build()

		out, err := runCLI(t, "lint-glossary", "--root", tree.Path)
		if err != nil {
			t.Fatalf("lint-glossary error = %v", err)
		}
		for _, want := range []string{"Line 4: - Refund: missing bold", "Duplicate term 'order'", "Run with --fix"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q\n---\n%s", want, out)
			}
		}
		tree.AssertFileEquals("DDD_Artefacts/docs/ubiquitous-language/glossary.md", glossary)
	})

	t.Run("fix", func(t *testing.T) {
		tree := testutil.NewTestTree(t).WithGlossary(glossary).Build()

		out, err := runCLI(t, "lint-glossary", "--root", tree.Path, "--fix")
		if err != nil {
			t.Fatalf("lint-glossary --fix error = %v", err)
		}
		if !strings.Contains(out, "Fixed 1 style violations in-place.") {
			t.Errorf("output missing fix summary\n---\n%s", out)
		}
		tree.AssertFileContains("DDD_Artefacts/docs/ubiquitous-language/glossary.md", "- **Refund**: missing bold\n")
		tree.AssertFileContains("DDD_Artefacts/docs/ubiquitous-language/glossary.md", "- **order**: duplicate\n")
	})
}

func TestGenerateGlossary(t *testing.T) {
	tree := testutil.NewTestTree(t).
		WithFile("business-model/01-price-list.md", "# Price List\n\nThe published prices.\n").
		WithFile("DDD_Artefacts/docs/v2/domain-knowledge/core-contexts/order-management/README.md", "# Order Management\n\nHandles orders.\n").
		Build()

	out, err := runCLI(t, "generate-glossary", "--root", tree.Path, "--dry-run")
	if err != nil {
		t.Fatalf("generate-glossary --dry-run error = %v", err)
	}
	want := "# Domain Glossary\n\n- **Order Management**: Handles orders.\n- **price list**: The published prices.\n"
	if out != want {
		t.Errorf("dry run output = %q, want %q", out, want)
	}

	out, err = runCLI(t, "generate-glossary", "--root", tree.Path)
	if err != nil {
		t.Fatalf("generate-glossary error = %v", err)
	}
	if !strings.Contains(out, "with 2 unique terms") {
		t.Errorf("output = %q", out)
	}
	tree.AssertFileEquals("DDD_Artefacts/docs/v2/ubiquitous-language/guidelines/glossary.md", want)
}

func TestNav(t *testing.T) {
	tree := testutil.NewTestTree(t).
		WithFile("mkdocs.yml", "site_name: Docs\nnav:\n  - Home: index.md\n  - Domain:\n      - Pricing: domain/pricing.md\n  - Site: https://example.com\n").
		WithFile("DDD_Artefacts/docs/index.md", "# Home\n").
		WithFile("DDD_Artefacts/docs/orphan.md", "# Orphan\n").
		Build()

	out, err := runCLI(t, "nav", "--root", tree.Path)
	if err != nil {
		t.Fatalf("nav error = %v", err)
	}
	for _, want := range []string{"Section: Domain > Pricing", "Reference: domain/pricing.md", "orphan.md"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n---\n%s", want, out)
		}
	}
	if strings.Contains(out, "example.com") {
		t.Errorf("external URL reported\n---\n%s", out)
	}
}

func TestNavMissingConfig(t *testing.T) {
	tree := testutil.NewTestTree(t).Build()

	if _, err := runCLI(t, "nav", "--root", tree.Path); err == nil {
		t.Fatal("expected error for missing mkdocs.yml")
	}
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "ubiq ") || !strings.Contains(out, "module: ") {
		t.Errorf("version output = %q", out)
	}
}

func TestGuide(t *testing.T) {
	out, err := runCLI(t, "guide")
	if err != nil {
		t.Fatalf("guide error = %v", err)
	}
	if !strings.Contains(out, "  linking\n") {
		t.Errorf("topic list = %q", out)
	}

	out, err = runCLI(t, "guide", "glossary")
	if err != nil {
		t.Fatalf("guide glossary error = %v", err)
	}
	if !strings.HasPrefix(out, "# Glossary format") {
		t.Errorf("guide glossary = %q", out)
	}

	if _, err := runCLI(t, "guide", "nope"); err == nil {
		t.Fatal("expected error for unknown topic")
	}
}
