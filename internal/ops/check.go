package ops

import (
	"strings"

	"github.com/ewinters/slate/internal/fountain"
)

// CheckInput contains parameters for the Check operation.
type CheckInput struct {
	InputPath string
}

// CheckOutput contains the result of the Check operation.
type CheckOutput struct {
	InputPath string `json:"input_path,omitempty"`
	Stats     Stats  `json:"stats"`

	// UnattributedLines counts content lines that precede any setup marker.
	// They belong to no setup group and are dropped from the annotated
	// screenplay view.
	UnattributedLines int `json:"unattributed_lines"`

	// SuspectMarkers lists lines that look like setup markers but failed
	// to parse and were treated as ordinary content.
	SuspectMarkers []SuspectMarker `json:"suspect_markers,omitempty"`

	// Clean is true when nothing above needs attention.
	Clean bool `json:"clean"`
}

// SuspectMarker flags a probable malformed setup marker.
type SuspectMarker struct {
	LineNumber int    `json:"line_number"` // 1-based
	Text       string `json:"text"`
}

// Check scans the input and reports everything the reorganize commands
// would silently tolerate: content that will be dropped from the screenplay
// view and marker-like lines that didn't parse. Read-only.
func Check(input CheckInput) (*CheckOutput, error) {
	lines, err := ReadLines(input.InputPath)
	if err != nil {
		return nil, err
	}

	out, err := Inspect(lines)
	if err != nil {
		return nil, err
	}
	out.InputPath = input.InputPath
	return out, nil
}

// Inspect runs the check over an in-memory line sequence. Shared by the
// file-based operation and the MCP tool.
func Inspect(lines []string) (*CheckOutput, error) {
	segments, err := fountain.Scan(lines)
	if err != nil {
		return nil, scanError(err)
	}

	out := &CheckOutput{
		Stats: Summarize(segments),
	}

	for _, seg := range segments {
		if !seg.Attributed() {
			for _, line := range seg.Lines {
				if line != "" {
					out.UnattributedLines++
				}
			}
		}
	}

	for i, raw := range lines {
		line := fountain.Classify(raw)
		if line.Kind == fountain.LineContent && strings.Contains(raw, "[[SETUP") {
			out.SuspectMarkers = append(out.SuspectMarkers, SuspectMarker{
				LineNumber: i + 1,
				Text:       strings.TrimSpace(raw),
			})
		}
	}

	out.Clean = out.UnattributedLines == 0 && len(out.SuspectMarkers) == 0
	return out, nil
}
