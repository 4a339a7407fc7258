package fountain

import (
	"regexp"
	"strings"
)

// LineKind classifies one raw line of a Fountain document.
type LineKind int

const (
	LineContent LineKind = iota
	LineSceneHeading
	LineSetupMarker
	LineTransition
	LineBlank
)

// Line is the result of classifying one raw line. SetupLetter and
// SetupDescription are populated only for LineSetupMarker.
type Line struct {
	Raw              string
	Kind             LineKind
	SetupLetter      string
	SetupDescription string
}

// setupPattern matches a camera setup marker: [[SETUP A: wide on the door]].
// The letter must be a single uppercase A-Z and the description must be
// non-empty; the closing ]] must appear on the same line.
var setupPattern = regexp.MustCompile(`^\[\[SETUP\s+([A-Z]):\s*(.+?)\s*\]\]`)

// sceneHeadingPrefixes are the Fountain scene heading openers. Compared
// case-insensitively against the trimmed line.
var sceneHeadingPrefixes = []string{"INT.", "EXT.", "INT/EXT.", "I/E."}

// Classify determines the category of a single raw line and extracts any
// setup marker data. It is a pure function of the line's text; malformed
// setup markers fall through to LineContent rather than failing.
func Classify(raw string) Line {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return Line{Raw: raw, Kind: LineBlank}
	}

	if m := setupPattern.FindStringSubmatch(trimmed); m != nil {
		return Line{
			Raw:              raw,
			Kind:             LineSetupMarker,
			SetupLetter:      m[1],
			SetupDescription: m[2],
		}
	}

	if isSceneHeading(trimmed) {
		return Line{Raw: raw, Kind: LineSceneHeading}
	}

	if isTransition(trimmed) {
		return Line{Raw: raw, Kind: LineTransition}
	}

	return Line{Raw: raw, Kind: LineContent}
}

// isSceneHeading reports whether the trimmed line opens a Fountain scene.
// Any embedded #number# token is ignored; slate numbers scenes itself.
func isSceneHeading(trimmed string) bool {
	upper := strings.ToUpper(trimmed)
	for _, prefix := range sceneHeadingPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// isTransition reports whether the trimmed line is a transition cue.
// Transitions are recognized so they can be dropped; they never appear in
// rendered output.
func isTransition(trimmed string) bool {
	upper := strings.ToUpper(trimmed)
	if strings.HasSuffix(upper, "TO:") {
		return true
	}
	return upper == "FADE IN:" || upper == "FADE OUT."
}
