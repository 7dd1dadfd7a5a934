package report

import "fmt"

// ChecklistItem is one compliance question for a term.
type ChecklistItem struct {
	Number   int
	Question string
	Checked  bool
	Manual   bool
	Note     string
}

// Checklist is the six-item compliance checklist of one term. Items 1 and 6
// always need a human; items 2 to 5 are derived from the scan.
type Checklist struct {
	Term  string
	Items []ChecklistItem
}

// NewChecklist builds the checklist for term given whether it was found in
// any document and in how many contexts.
func NewChecklist(term string, found bool, contexts int) Checklist {
	plural := "s"
	if contexts == 1 {
		plural = ""
	}
	multi := contexts > 1
	multiNote := "n/a"
	if multi {
		multiNote = "REVIEW NEEDED"
	}

	return Checklist{
		Term: term,
		Items: []ChecklistItem{
			{
				Number:   1,
				Question: "Does the term reflect a concept that domain experts recognize?",
				Manual:   true,
				Note:     "MANUAL CHECK",
			},
			{
				Number:   2,
				Question: "Is the term consistently used in code, documentation, and conversation?",
				Checked:  found,
				Note:     "found in documentation",
			},
			{
				Number:   3,
				Question: "Is the term clearly defined without technical jargon?",
				Checked:  true,
				Note:     "definition in glossary",
			},
			{
				Number:   4,
				Question: "Does the term avoid ambiguity within its bounded context?",
				Checked:  contexts == 1,
				Note:     fmt.Sprintf("found in %d context%s", contexts, plural),
			},
			{
				Number:   5,
				Question: "If the term has different meanings across bounded contexts, is this explicitly documented?",
				Checked:  !multi,
				Note:     multiNote,
			},
			{
				Number:   6,
				Question: "Has the term been reviewed and approved by domain experts?",
				Manual:   true,
				Note:     "MANUAL CHECK",
			},
		},
	}
}
