// Package report renders the ubiquitous-language consistency report.
//
// Every finding is advisory: rendering never fails because of what was found,
// only because the output could not be written.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/ubiq/internal/autolink"
	"github.com/aidanlsb/ubiq/internal/scan"
	"github.com/aidanlsb/ubiq/internal/ui"
)

// Report is the input of one rendering.
type Report struct {
	// Root is the directory file paths are shown relative to.
	Root string

	// Index is the scan the report describes. After a fix pass it should be
	// a fresh scan, so that unlinked usages are the remaining ones.
	Index *scan.Index

	Contexts scan.ContextMap

	// FixMode enables the auto-fix summary; Changes lists what was rewritten.
	FixMode bool
	Changes []autolink.Change
}

// Writer renders reports.
type Writer struct {
	theme ui.Theme
}

// NewWriter returns a Writer using theme for decoration.
func NewWriter(theme ui.Theme) *Writer {
	return &Writer{theme: theme}
}

// printer keeps the first write error so rendering code can stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}

// Render writes r to w.
func (rw *Writer) Render(w io.Writer, r *Report) error {
	p := &printer{w: w}
	contexts := r.Contexts
	if contexts == nil {
		contexts = r.Index.Contexts(r.Root)
	}

	if r.FixMode {
		rw.fixSummary(p, r)
	}
	rw.occurrences(p, r, contexts)
	rw.missing(p, r)
	rw.ambiguity(p, contexts)
	rw.unlinked(p, r)
	rw.checklist(p, r, contexts)
	return p.err
}

func (rw *Writer) rel(r *Report, path string) string {
	if r.Root == "" {
		return filepath.ToSlash(path)
	}
	if rel, err := filepath.Rel(r.Root, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}

func (rw *Writer) header(p *printer, title string) {
	p.printf("\n%s\n", rw.theme.Header("=== "+title+" ==="))
}

func (rw *Writer) fixSummary(p *printer, r *Report) {
	rw.header(p, "Glossary Link Auto-Fix Mode Enabled")
	if len(r.Changes) == 0 {
		p.println("No glossary links needed to be inserted.")
		return
	}
	p.println("\nGlossary links inserted in the following files:")
	for _, c := range r.Changes {
		p.printf("  %s: lines %s\n", rw.theme.Path(rw.rel(r, c.Path)), ui.JoinInts(c.Lines))
	}
}

func (rw *Writer) occurrences(p *printer, r *Report, contexts scan.ContextMap) {
	rw.header(p, "Ubiquitous Language Consistency Report")
	p.println("")
	for _, term := range r.Index.Terms {
		files := r.Index.FilesFor(term)
		if len(files) == 0 {
			continue
		}
		p.printf("%s:\n  Found in:\n", rw.theme.Term(term))
		for _, f := range files {
			label, ok := scan.ContextOf(r.Root, f)
			if !ok {
				label = rw.rel(r, filepath.Dir(f))
			}
			p.printf("    - %s %s\n", rw.theme.Path(rw.rel(r, f)), rw.theme.Hint("(context: "+label+")"))
		}
	}
}

func (rw *Writer) missing(p *printer, r *Report) {
	var missing []string
	for _, term := range r.Index.Terms {
		if !r.Index.Found(term) {
			missing = append(missing, term)
		}
	}
	if len(missing) == 0 {
		p.println("\nAll glossary terms were found in documentation.")
		return
	}
	p.println("\nGlossary terms NOT found in any documentation:")
	for _, term := range missing {
		p.printf("  %s\n", term)
	}
}

func (rw *Writer) ambiguity(p *printer, contexts scan.ContextMap) {
	ambiguous := contexts.AmbiguousTerms()
	if len(ambiguous) == 0 {
		p.println("\nNo terms found in multiple contexts.")
		return
	}
	rw.header(p, "Potential Ambiguity: Terms Found in Multiple Contexts")
	for _, term := range ambiguous {
		p.printf("%s: found in contexts: %s\n", rw.theme.Term(term), strings.Join(contexts[term], ", "))
	}
	p.println("\nReview these terms to ensure context-specific meanings are explicit and ambiguity is avoided.")
}

func (rw *Writer) unlinked(p *printer, r *Report) {
	rw.header(p, "Glossary Link Enforcement: Unlinked Usages")
	listed := false
	for _, term := range r.Index.Terms {
		for _, f := range r.Index.UnlinkedFiles(term) {
			listed = true
			p.printf("%s in %s: unlinked on lines %s\n",
				rw.theme.Term(term), rw.theme.Path(rw.rel(r, f)), ui.JoinInts(r.Index.Unlinked[term][f]))
		}
	}
	if !listed {
		p.println("All glossary term usages are properly linked to the glossary.")
	}
}

func (rw *Writer) checklist(p *printer, r *Report, contexts scan.ContextMap) {
	rw.header(p, "Automated Compliance Checklist")
	for _, term := range r.Index.Terms {
		c := NewChecklist(term, r.Index.Found(term), len(contexts[term]))
		p.printf("\nChecklist for '%s':\n", rw.theme.Term(term))
		for _, item := range c.Items {
			p.printf("  %s %d. %s (%s)\n", ui.Checkbox(item.Checked), item.Number, item.Question, item.Note)
		}
	}
}
