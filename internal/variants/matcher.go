package variants

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Matcher finds whole-word, case-insensitive occurrences of a set of
// spellings. A spelling never matches inside a longer word: "order" does not
// match "reorder" or "order_id". Non-ASCII letters, digits and combining
// marks count as word characters too, so "order" does not match "orderé".
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles a matcher for spellings. It returns nil when spellings
// is empty.
func NewMatcher(spellings []string) *Matcher {
	norm := Normalized(spellings)
	if len(norm) == 0 {
		return nil
	}
	quoted := make([]string, len(norm))
	for i, s := range norm {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return &Matcher{re: regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)}
}

// MatchString reports whether s contains any spelling as a whole word.
func (m *Matcher) MatchString(s string) bool {
	if m == nil {
		return false
	}
	for _, loc := range m.re.FindAllStringIndex(s, -1) {
		if wholeWord(s, loc[0], loc[1]) {
			return true
		}
	}
	return false
}

// FindAllIndex returns the byte ranges of every whole-word occurrence in s.
func (m *Matcher) FindAllIndex(s string) [][]int {
	if m == nil {
		return nil
	}
	all := m.re.FindAllStringIndex(s, -1)
	out := all[:0]
	for _, loc := range all {
		if wholeWord(s, loc[0], loc[1]) {
			out = append(out, loc)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// wholeWord rejects matches that RE2's ASCII-only \b lets through next to a
// non-ASCII word character.
func wholeWord(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); nonASCIIWord(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); nonASCIIWord(r) {
			return false
		}
	}
	return true
}

func nonASCIIWord(r rune) bool {
	return r >= utf8.RuneSelf && r != utf8.RuneError &&
		(unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r))
}

// Matchers compiles one Matcher per term of set.
func Matchers(set Set) map[string]*Matcher {
	out := make(map[string]*Matcher, len(set))
	for term, spellings := range set {
		out[term] = NewMatcher(spellings)
	}
	return out
}
