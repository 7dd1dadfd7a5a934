// Package consistency runs the ubiquitous-language consistency check:
// load the glossary, expand term spellings, scan the documentation, link
// unlinked usages when asked to, and assemble the report.
package consistency

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/aidanlsb/ubiq/internal/autolink"
	"github.com/aidanlsb/ubiq/internal/config"
	"github.com/aidanlsb/ubiq/internal/glossary"
	"github.com/aidanlsb/ubiq/internal/report"
	"github.com/aidanlsb/ubiq/internal/scan"
	"github.com/aidanlsb/ubiq/internal/variants"
)

// Options controls one run.
type Options struct {
	// Fix enables the auto-linker.
	Fix bool

	Logger *log.Logger
}

// Result is the outcome of one run.
type Result struct {
	GlossaryPath string

	// Terms are the glossary terms that survived the stoplist, sorted.
	Terms []string

	// Initial is the scan taken before any rewriting.
	Initial *scan.Index

	Report *report.Report
}

// Run executes the check described by cfg.
//
// Findings never produce an error. Errors mean a precondition failed: the
// glossary is missing or a document could not be read or written.
func Run(cfg *config.Config, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	path, fallback, err := cfg.GlossaryPath()
	if err != nil {
		return nil, err
	}
	if fallback {
		logger.Warn("using legacy glossary location", "path", path)
	}

	all, err := glossary.LoadTerms(path)
	if err != nil {
		return nil, err
	}
	terms := glossary.FilterStoplist(all, cfg.Stoplist())
	logger.Debug("loaded glossary", "path", path, "terms", len(all), "after_stoplist", len(terms))

	set := variants.NewExpander().ExpandAll(terms)

	scanner, err := scan.New(scan.Options{
		Roots:   cfg.ScanRoots(),
		Base:    cfg.Root,
		Exclude: cfg.Exclude,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	ix, err := scanner.Scan(set)
	if err != nil {
		return nil, err
	}
	res := &Result{
		GlossaryPath: path,
		Terms:        terms,
		Initial:      ix,
		Report:       &report.Report{Root: cfg.Root, Index: ix, FixMode: opts.Fix},
	}

	if opts.Fix {
		changes, err := autolink.New(cfg.LinkTarget, logger).Fix(ix, set)
		if err != nil {
			return nil, fmt.Errorf("failed to insert glossary links: %w", err)
		}
		res.Report.Changes = changes

		// Report what is left after the rewrite, not what was there before.
		if len(changes) > 0 {
			if res.Report.Index, err = scanner.Scan(set); err != nil {
				return nil, err
			}
		}
	}

	res.Report.Contexts = res.Report.Index.Contexts(cfg.Root)
	return res, nil
}
