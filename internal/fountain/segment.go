package fountain

import "fmt"

// Segment is a maximal run of content lines attributed to one scene and one
// camera setup occurrence. Segments are produced by Scan in document order;
// renderers read them and never mutate them.
type Segment struct {
	// SceneIndex is the 1-based sequential scene number, assigned each time
	// a scene heading is encountered. 0 if content precedes the first
	// scene heading.
	SceneIndex int

	// SetupLetter is the single uppercase letter of the active setup, or
	// empty if the content preceded any setup marker (unattributed).
	SetupLetter string

	// SetupDescription is the free-text description of the active setup.
	SetupDescription string

	// Suffix disambiguates repeated (scene, letter) occurrences: empty for
	// the first occurrence, then A, B, .. Z, AA, AB, .. in scan order.
	Suffix string

	// Lines holds the segment's content lines verbatim. Blank separators
	// are stored as single empty strings between content lines. Never
	// empty for an emitted segment.
	Lines []string
}

// Attributed reports whether the segment has an associated setup. Segments
// without one are excluded from the schedule view and dropped from the
// screenplay view.
func (s *Segment) Attributed() bool {
	return s.SetupLetter != ""
}

// Marker renders the scene/setup reference token, e.g. #1A# or #3BA#.
func (s *Segment) Marker() string {
	return fmt.Sprintf("#%d%s%s#", s.SceneIndex, s.SetupLetter, s.Suffix)
}
