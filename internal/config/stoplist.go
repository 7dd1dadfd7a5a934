package config

// DefaultStoplist holds common English and technical words that are never
// treated as glossary terms. Entries are compared case-sensitively.
var DefaultStoplist = []string{
	"The", "And", "Or", "If", "Else", "For", "In", "On", "At", "By", "Of", "To", "From", "With", "Without",
	"Is", "Are", "Was", "Were", "Be", "Being", "Been",
	"A", "An", "As", "It", "This", "That", "These", "Those", "Can", "Could", "Should", "Would", "May", "Might",
	"Will", "Shall", "Do", "Does", "Did", "Not",
	"Has", "Have", "Had", "But", "So", "Than", "Then", "Which", "Who", "Whom", "Whose", "What", "When", "Where",
	"Why", "How", "All", "Any", "Some", "No", "None",
	"One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",

	// Technical
	"API", "UI", "ID", "URL", "HTTP", "HTTPS", "JSON", "CSV", "MD", "Doc", "Docs", "Test", "Tests", "Testing",
	"Code", "File", "Files", "Folder", "Directory",
	"True", "False", "Null", "Type", "Types", "String", "Number", "Int", "Float", "Bool", "List", "Dict", "Set",
	"Object", "Class", "Function", "Method",
	"Example", "Examples", "See", "Note", "Section", "Table", "Row", "Column", "Line", "Lines", "Page", "Pages",
	"Figure", "Figures", "Diagram", "Diagrams",
	"Above", "Below", "Left", "Right", "Up", "Down", "Next", "Previous", "Current", "New", "Old", "First", "Last",
	"Start", "End", "Beginning", "Middle", "After", "Before",
}

// Stoplist returns the effective stoplist as a set.
func (c *Config) Stoplist() map[string]struct{} {
	set := make(map[string]struct{}, len(DefaultStoplist)+len(c.StoplistExtra))
	for _, w := range DefaultStoplist {
		set[w] = struct{}{}
	}
	for _, w := range c.StoplistExtra {
		set[w] = struct{}{}
	}
	return set
}
