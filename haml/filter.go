package haml

import "strings"

// FilterLines collects the raw content of a filter block in source order,
// reconstructing interior indentation relative to the block opener. Blank
// continuation lines come back as empty strings.
func (t *Tree) FilterLines(opener NodeID) []string {
	var lines []string
	base := t.Node(opener).BlockLevel

	var walk func(NodeID)
	walk = func(id NodeID) {
		for _, c := range t.Node(id).Children {
			n := t.Node(c)
			if n.Expression == "" {
				lines = append(lines, "")
			} else {
				rel := (n.BlockLevel - base - 1) * t.TabSize
				if rel < 0 {
					rel = 0
				}
				lines = append(lines, strings.Repeat(" ", rel)+n.Expression)
			}
			walk(c)
		}
	}
	walk(opener)
	return lines
}
