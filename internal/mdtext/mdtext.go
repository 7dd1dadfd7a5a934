// Package mdtext provides the lossy markdown-to-text normalisation and the
// link-span detection used by the consistency checker.
//
// None of this is a markdown parser. Strip only has to produce text that is
// good enough for whole-word matching, and span detection only has to know
// whether a word already sits inside a link.
package mdtext

import (
	"regexp"
	"sort"
	"strings"
)

var (
	markerPattern   = regexp.MustCompile("[`*_#\\[\\]()>~\\-]")
	imagePattern    = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkPattern     = regexp.MustCompile(`\[[^\]]*\]\([^)]*\)`)
	curlyPattern    = regexp.MustCompile(`\{[^}]*\}`)
	punctPattern    = regexp.MustCompile(`[!"#$%&'()*+,\-./:;<=>?@\[\\\]^_{|}~` + "`" + `]`)
	glossaryLink    = regexp.MustCompile(`(?i)!?\[[^\]]*\]\([^)]*glossary\.md[^)]*\)`)
	anyLink         = regexp.MustCompile(`!?\[[^\]]*\]\([^)]*\)`)
	inlineCode      = regexp.MustCompile("`[^`]*`")
	autolinkPattern = regexp.MustCompile(`<[a-zA-Z][a-zA-Z0-9+.\-]*:[^>\s]*>`)
)

// Strip returns a plain-text approximation of markdown text.
//
// Emphasis, heading, list, link and code markers are blanked first, then any
// residual image, link and curly-brace spans, and finally all ASCII
// punctuation. Every removed character becomes a space so word boundaries
// survive.
func Strip(text string) string {
	text = markerPattern.ReplaceAllString(text, " ")
	text = imagePattern.ReplaceAllString(text, " ")
	text = linkPattern.ReplaceAllString(text, " ")
	text = curlyPattern.ReplaceAllString(text, " ")
	return punctPattern.ReplaceAllString(text, " ")
}

// Span is a half-open byte range [Start, End) within a line.
type Span struct {
	Start, End int
}

// Spans is a sorted list of non-overlapping spans.
type Spans []Span

// Contains reports whether [start, end) lies entirely inside one span.
func (s Spans) Contains(start, end int) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i].End >= end })
	return i < len(s) && s[i].Start <= start
}

// GlossaryLinks returns the spans of markdown links whose target mentions
// glossary.md, matched case-insensitively.
func GlossaryLinks(line string) Spans {
	return toSpans(glossaryLink.FindAllStringIndex(line, -1))
}

// Protected returns every span that is not linkable prose: markdown links and
// images of any target (text and URL), inline code and angle-bracket
// autolinks. The link rewriter leaves these alone and the unlinked-usage
// check ignores matches inside them.
func Protected(line string) Spans {
	var idx [][]int
	idx = append(idx, anyLink.FindAllStringIndex(line, -1)...)
	idx = append(idx, inlineCode.FindAllStringIndex(line, -1)...)
	idx = append(idx, autolinkPattern.FindAllStringIndex(line, -1)...)
	return toSpans(idx)
}

func toSpans(idx [][]int) Spans {
	if len(idx) == 0 {
		return nil
	}
	spans := make(Spans, 0, len(idx))
	for _, loc := range idx {
		spans = append(spans, Span{Start: loc[0], End: loc[1]})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	merged := spans[:1]
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if sp.Start <= last.End {
			if sp.End > last.End {
				last.End = sp.End
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// FencedLines reports, per line, whether the line belongs to a fenced code
// block, fence lines included. A fence opens with three or more backticks or
// tildes indented at most three spaces and closes with a line of at least as
// many of the same character. An unclosed fence runs to the end.
func FencedLines(lines []string) []bool {
	fenced := make([]bool, len(lines))
	var open string
	for i, raw := range lines {
		marker := fenceMarker(raw)
		switch {
		case open == "":
			if marker != "" {
				open = marker
				fenced[i] = true
			}
		default:
			fenced[i] = true
			if marker != "" && marker[0] == open[0] && len(marker) >= len(open) &&
				strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), marker[:1])) == "" {
				open = ""
			}
		}
	}
	return fenced
}

// fenceMarker returns the run of backticks or tildes opening line, or "" when
// line is not a fence line.
func fenceMarker(line string) string {
	line = strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 || len(trimmed) < 3 {
		return ""
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return ""
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == c {
		n++
	}
	if n < 3 {
		return ""
	}
	if c == '`' && strings.ContainsRune(trimmed[n:], '`') {
		return ""
	}
	return trimmed[:n]
}

// SplitLines splits content into lines, keeping each line's terminator so
// that joining the result reproduces content exactly.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
