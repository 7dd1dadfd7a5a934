package glossary

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/aidanlsb/ubiq/internal/atomicfile"
	"github.com/aidanlsb/ubiq/internal/mdtext"
)

// CandidateHeading marks the section holding proposed, not yet agreed terms.
const CandidateHeading = "## Candidate Terms"

var (
	strictEntryPattern = regexp.MustCompile(`^- \*\*([A-Za-z0-9 _\-/]+)\*\*: .+`)
	bareEntryPattern   = regexp.MustCompile(`^- ?([A-Za-z0-9 _\-/]+):`)
)

// StyleViolation is an entry line that does not follow the entry format.
type StyleViolation struct {
	Line  int // 1-indexed
	Text  string
	Fixed string
}

// Duplicate is an entry whose term was already defined earlier in the file.
type Duplicate struct {
	Line      int
	Term      string
	FirstLine int
}

// LintResult holds the findings for one glossary file.
type LintResult struct {
	Violations []StyleViolation
	Duplicates []Duplicate

	// CandidateLine is the line of the candidate-terms heading, 0 if absent.
	CandidateLine int

	lines []string
}

// Compliant reports whether the glossary has no findings.
func (r *LintResult) Compliant() bool {
	return len(r.Violations) == 0 && len(r.Duplicates) == 0
}

// Fixed returns the glossary content with every style violation replaced by
// its fixed form. Duplicates are left untouched.
func (r *LintResult) Fixed() []byte {
	fixed := make([]string, len(r.lines))
	copy(fixed, r.lines)
	for _, v := range r.Violations {
		fixed[v.Line-1] = v.Fixed + lineEnding(r.lines[v.Line-1])
	}
	return []byte(strings.Join(fixed, ""))
}

// Lint checks glossary content. Every line starting with "- " is an entry.
func Lint(content string) *LintResult {
	res := &LintResult{lines: mdtext.SplitLines(content)}
	firstSeen := make(map[string]int)

	for i, raw := range res.lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r\n")

		if res.CandidateLine == 0 && strings.HasPrefix(strings.TrimSpace(line), CandidateHeading) {
			res.CandidateLine = lineNo
		}
		if !strings.HasPrefix(line, "- ") {
			continue
		}

		m := strictEntryPattern.FindStringSubmatch(line)
		if m == nil {
			res.Violations = append(res.Violations, StyleViolation{
				Line:  lineNo,
				Text:  line,
				Fixed: fixEntry(line),
			})
			continue
		}

		key := strings.ToLower(strings.TrimSpace(m[1]))
		if first, ok := firstSeen[key]; ok {
			res.Duplicates = append(res.Duplicates, Duplicate{Line: lineNo, Term: m[1], FirstLine: first})
			continue
		}
		firstSeen[key] = lineNo
	}
	return res
}

// fixEntry bolds a bare "- Term: text" entry. Lines it cannot repair get a
// FIXME placeholder term so they stand out for manual editing.
func fixEntry(line string) string {
	fixed := bareEntryPattern.ReplaceAllString(line, "- **$1**:")
	if strings.HasPrefix(fixed, "- **") {
		return fixed
	}
	return "- **FIXME**: " + strings.TrimLeft(line, "- ")
}

func lineEnding(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	}
	return ""
}

// LintFile lints the glossary at path.
func LintFile(path string) (*LintResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read glossary: %w", err)
	}
	return Lint(string(data)), nil
}

// FixFile writes the fixed content of res back to path. It reports whether
// the file changed.
func FixFile(path string, res *LintResult) (bool, error) {
	return atomicfile.ReplaceIfChanged(path, res.Fixed())
}
