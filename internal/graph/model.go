package graph

import (
	"regexp"
	"strings"
)

// nodePattern matches `<id> [label="<text>"<attrs>]`. The label is
// non-greedy so the first closing quote ends it.
var nodePattern = regexp.MustCompile(`(?s)(\d+)\s*\[label="(.+?)"(.*?)\]`)

// NodeDecl is a node declaration split into its parts.
type NodeDecl struct {
	ID    string
	Label string
	Attrs string // everything between the label's closing quote and ']'
}

// Stats counts what happened to the lines of one rewrite.
type Stats struct {
	Lines         int `json:"lines"`
	Candidates    int `json:"candidates"`
	Recolored     int `json:"recolored"`
	Exempt        int `json:"exempt"`
	PassedThrough int `json:"passed_through"`
}

// ParseNodeDecl finds a node declaration in line.
func ParseNodeDecl(line string) (NodeDecl, bool) {
	if !strings.Contains(line, "label=") || !strings.Contains(line, "[") || !strings.Contains(line, "]") {
		return NodeDecl{}, false
	}

	m := nodePattern.FindStringSubmatch(line)
	if m == nil {
		return NodeDecl{}, false
	}

	return NodeDecl{ID: m[1], Label: m[2], Attrs: m[3]}, true
}
