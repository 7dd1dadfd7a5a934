package report

import (
	"fmt"
	"io"

	"github.com/aidanlsb/ubiq/internal/glossary"
	"github.com/aidanlsb/ubiq/internal/nav"
	"github.com/aidanlsb/ubiq/internal/ui"
)

// RenderNav writes the navigation check result.
func (rw *Writer) RenderNav(w io.Writer, configName string, res *nav.Result) error {
	p := &printer{w: w}
	if len(res.Missing) == 0 {
		p.println(ui.Successf("All files in %s navigation exist.", configName))
	} else {
		p.printf("\n%s\n", ui.Warningf("Missing files referenced in %s navigation:", configName))
		p.println(rw.theme.Rule())
		for _, m := range res.Missing {
			p.printf("Section: %s\n", rw.theme.Term(m.Section))
			p.printf("  Reference: %s %s\n", m.Ref, rw.theme.Hint(ui.LineRef(m.Line)))
			p.printf("  Full path: %s\n", rw.theme.Path(m.FullPath))
			p.println(rw.theme.Rule())
		}
	}

	p.println("\nChecking for orphaned files (not in navigation)...")
	if len(res.Orphans) == 0 {
		p.println(ui.Success("No orphaned files found."))
		return p.err
	}
	p.printf("\n%s\n", ui.Warning("Orphaned files (not in navigation):"))
	p.println(rw.theme.Rule())
	for _, o := range res.Orphans {
		p.println(rw.theme.Path(o))
	}
	return p.err
}

// RenderLint writes the glossary style check result. fixed reports whether
// the fixes were written back.
func (rw *Writer) RenderLint(w io.Writer, name string, res *glossary.LintResult, fixed bool) error {
	p := &printer{w: w}
	if res.Compliant() {
		p.println(ui.Successf("%s is fully compliant with style and duplicate rules.", name))
		return p.err
	}

	if len(res.Violations) > 0 {
		p.println(ui.Warningf("Found the following style violations in %s:", name))
		for _, v := range res.Violations {
			p.printf("  Line %d: %s\n", v.Line, v.Text)
		}
	}
	if len(res.Duplicates) > 0 {
		p.printf("\n%s\n", ui.Warning("Found duplicate glossary terms (case-insensitive):"))
		for _, d := range res.Duplicates {
			p.printf("  Line %d: Duplicate term '%s' %s\n", d.Line, d.Term, rw.theme.Hint(fmt.Sprintf("(first defined on line %d)", d.FirstLine)))
		}
	}

	if fixed {
		p.printf("\nFixed %d style violations in-place. Duplicates must be manually resolved.\n", len(res.Violations))
	} else {
		p.println("\nRun with --fix to automatically correct style issues. Duplicates must be manually resolved.")
	}
	return p.err
}
