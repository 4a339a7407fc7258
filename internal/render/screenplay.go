package render

import (
	"fmt"
	"strings"

	"github.com/ewinters/slate/internal/fountain"
)

// Screenplay renders the annotated screenplay view: segments in their
// original chronological order with a setup header at each transition.
//
// The first segment emitted for a scene carries the scene label
// (.SCENE N - SETUP L: desc); later segments in the same scene carry only
// the setup header. Segments with no associated setup are dropped from
// this view, since content before the first marker has no setup to annotate.
// The check operation reports such content so it isn't lost silently.
func Screenplay(segments []fountain.Segment) string {
	var b strings.Builder
	seenScene := make(map[int]bool)

	for _, seg := range segments {
		if !seg.Attributed() {
			continue
		}

		if !seenScene[seg.SceneIndex] {
			seenScene[seg.SceneIndex] = true
			fmt.Fprintf(&b, ".SCENE %d - SETUP %s: %s %s\n\n",
				seg.SceneIndex, seg.SetupLetter, seg.SetupDescription, seg.Marker())
		} else {
			fmt.Fprintf(&b, ".SETUP %s: %s %s\n\n",
				seg.SetupLetter, seg.SetupDescription, seg.Marker())
		}

		for _, line := range seg.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
