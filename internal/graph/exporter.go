package graph

import (
	"fmt"
	"strings"
)

// Render writes the declaration back in DOT syntax with a fill color.
// Anything outside the brackets on the original line is dropped.
func (d NodeDecl) Render(color string) string {
	label := strings.ReplaceAll(d.Label, "\"", "\\\"")
	return fmt.Sprintf("%s [label=\"%s\"%s, fillcolor=\"%s\", style=filled]\n",
		d.ID, label, d.Attrs, color)
}
