// Package render derives the two textual views from a scanned segment
// sequence: the setup-grouped shooting schedule and the chronological
// annotated screenplay. Both renderers are pure functions; rendering the
// same segments twice yields byte-identical output.
package render

import (
	"fmt"
	"strings"

	"github.com/ewinters/slate/internal/fountain"
)

// Schedule renders the shooting schedule view: segments grouped by setup
// letter so everything shot with one setup appears consecutively.
//
// Groups are ordered by each letter's first appearance in the segment
// sequence, not alphabetically; within a group, segments keep scan order.
// Unattributed segments (no setup) cannot be grouped and are excluded.
func Schedule(segments []fountain.Segment) string {
	var letters []string
	groups := make(map[string][]fountain.Segment)

	for _, seg := range segments {
		if !seg.Attributed() {
			continue
		}
		if _, ok := groups[seg.SetupLetter]; !ok {
			letters = append(letters, seg.SetupLetter)
		}
		groups[seg.SetupLetter] = append(groups[seg.SetupLetter], seg)
	}

	var b strings.Builder
	for i, letter := range letters {
		if i > 0 {
			b.WriteString("---\n")
		}
		fmt.Fprintf(&b, "# SETUP %s\n\n", letter)
		for _, seg := range groups[letter] {
			fmt.Fprintf(&b, ".[ ] From Scene %d (SETUP %s: %s) %s\n\n",
				seg.SceneIndex, seg.SetupLetter, seg.SetupDescription, seg.Marker())
			for _, line := range seg.Lines {
				b.WriteString(line)
				b.WriteByte('\n')
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
