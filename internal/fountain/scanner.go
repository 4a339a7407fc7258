package fountain

import "fmt"

// OverflowError reports that one (scene, setup letter) pair repeated more
// times than the suffix scheme can represent.
type OverflowError struct {
	SceneIndex  int
	SetupLetter string
	Occurrences int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("setup %s repeated %d times in scene %d: exceeds the %d-occurrence suffix range",
		e.SetupLetter, e.Occurrences, e.SceneIndex, MaxSuffixRepeats)
}

// pairKey identifies a (scene, setup letter) pair in the disambiguation
// registry. The registry is local to one Scan call.
type pairKey struct {
	scene  int
	letter string
}

// scanner carries the running state of a single forward pass.
type scanner struct {
	sceneIndex int
	letter     string
	desc       string

	open         *Segment
	pendingBlank bool

	seen     map[pairKey]int
	segments []Segment
}

// Scan consumes the document's lines once in order and produces the ordered
// segment sequence. The returned segments are totally ordered by the
// document position of their first content line; every content line of the
// input appears in exactly one segment.
//
// A setup deliberately persists across scene heading boundaries: content
// after a new heading but before the next marker is attributed to the
// previous setup under the new scene index.
func Scan(lines []string) ([]Segment, error) {
	s := &scanner{seen: make(map[pairKey]int)}

	for _, raw := range lines {
		line := Classify(raw)
		switch line.Kind {
		case LineSceneHeading:
			if err := s.close(); err != nil {
				return nil, err
			}
			s.sceneIndex++
		case LineSetupMarker:
			if err := s.close(); err != nil {
				return nil, err
			}
			s.letter = line.SetupLetter
			s.desc = line.SetupDescription
		case LineTransition:
			// Dropped outright: no segment effects, never rendered.
		case LineBlank:
			if s.open != nil {
				s.pendingBlank = true
			}
		case LineContent:
			s.append(raw)
		}
	}

	if err := s.close(); err != nil {
		return nil, err
	}
	return s.segments, nil
}

// append adds a content line to the open segment, opening one attributed to
// the current (scene, setup) state first if necessary. A pending blank run
// materializes as a single empty line between two content lines.
func (s *scanner) append(raw string) {
	if s.open == nil {
		s.open = &Segment{
			SceneIndex:       s.sceneIndex,
			SetupLetter:      s.letter,
			SetupDescription: s.desc,
		}
		s.pendingBlank = false
	}
	if s.pendingBlank {
		s.open.Lines = append(s.open.Lines, "")
		s.pendingBlank = false
	}
	s.open.Lines = append(s.open.Lines, raw)
}

// close finalizes the open segment, assigning its disambiguation suffix and
// emitting it. Segments that accumulated no content are discarded.
func (s *scanner) close() error {
	seg := s.open
	s.open = nil
	s.pendingBlank = false
	if seg == nil || len(seg.Lines) == 0 {
		return nil
	}

	key := pairKey{scene: seg.SceneIndex, letter: seg.SetupLetter}
	index := s.seen[key]
	s.seen[key] = index + 1

	suffix, ok := suffixFor(index)
	if !ok {
		return &OverflowError{
			SceneIndex:  seg.SceneIndex,
			SetupLetter: seg.SetupLetter,
			Occurrences: index + 1,
		}
	}
	seg.Suffix = suffix

	s.segments = append(s.segments, *seg)
	return nil
}
