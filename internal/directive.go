package internal

import "strings"

const directiveMarker = "@@"

type Keyword string

const (
	KeywordDeclarationsA Keyword = "declarationsA"
	KeywordDeclarationsB Keyword = "declarationsB"
	KeywordNamelist      Keyword = "namelist"
	KeywordDefaults      Keyword = "defaults"
	KeywordCommandLine   Keyword = "commandline"
)

func (k Keyword) IsValid() bool {
	switch k {
	case KeywordDeclarationsA, KeywordDeclarationsB, KeywordNamelist, KeywordDefaults, KeywordCommandLine:
		return true
	}
	return false
}

// Directive is a template line to be replaced by generated text.
type Directive struct {
	Keyword Keyword
	// Indent is the column of the first marker; generated lines are
	// prefixed with that many spaces.
	Indent int
}

func (d *Directive) Prefix() string {
	return strings.Repeat(" ", d.Indent)
}

// ParseDirective reports whether line is a directive line and, if so, returns
// the text between the first and last marker as its keyword. A line holding a
// single marker is still a directive, with an empty keyword.
func ParseDirective(line string) (*Directive, bool) {
	first := strings.Index(line, directiveMarker)
	if first < 0 {
		return nil, false
	}
	last := strings.LastIndex(line, directiveMarker)

	var keyword string
	if start := first + len(directiveMarker); last >= start {
		keyword = line[start:last]
	}
	return &Directive{Keyword: Keyword(keyword), Indent: first}, true
}
