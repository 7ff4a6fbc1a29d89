package arrayvec

import (
	"fmt"
	"io"
	"strings"
)

// Vec2Dot outputs the slot layout of a vector in Graphviz DOT format
// (for debugging purposes).
//
// Live slots render their element, free slots render as empty cells; free
// slot contents are never read. A second node carries the length and
// capacity.
func Vec2Dot[T any](v *Vec[T], w io.Writer) {
	T().Debugf("vector DOT: dumping vector, len=%d cap=%d", v.n, len(v.store))
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	cells := make([]string, 0, len(v.store))
	for i := range v.store {
		if i < v.n {
			cells = append(cells, fmt.Sprintf("<s%d> %s", i, dotEscape(fmt.Sprintf("%v", v.store[i]))))
		} else {
			cells = append(cells, fmt.Sprintf("<s%d> ∅", i))
		}
	}
	label := strings.Join(cells, "|")
	if label == "" {
		label = "(no capacity)"
	}
	if _, err := fmt.Fprintf(w, "\"slots\" [label=\"%s\",style=filled,fillcolor=\"#a3d7e4\"];\n", label); err != nil {
		T().Errorf("vector DOT: %s", err.Error())
	}
	fmt.Fprintf(w, "\"len\" [label=\"len %d / cap %d\",shape=box];\n", v.n, len(v.store))
	if len(v.store) > 0 {
		fmt.Fprintf(w, "\"len\" -> \"slots\":s0;\n")
	}
	io.WriteString(w, "}\n")
}

// dotEscape escapes the characters which delimit cells in a DOT record label.
func dotEscape(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		"\"", "\\\"",
		"|", "\\|",
		"{", "\\{",
		"}", "\\}",
		"<", "\\<",
		">", "\\>",
	)
	return r.Replace(s)
}
