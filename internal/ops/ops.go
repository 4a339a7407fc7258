// Package ops implements slate's operations: the reorganize commands that
// read a Fountain file and write the derived views, plus the read-only
// inspection and history operations. Operations take Input structs and
// return Output structs; all failures are structured *errors.SlateError
// values so callers decide how to report them.
package ops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ewinters/slate/internal/errors"
	"github.com/ewinters/slate/internal/fountain"
)

// Pagination limits
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)

// Pagination contains pagination metadata for list operations.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// ReadLines reads the input file in full and splits it into lines.
// A trailing carriage return is stripped from each line so CRLF input
// classifies the same as LF input.
func ReadLines(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.NewInvalidRequest("input path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewInputNotFound(path, err)
	}

	return SplitLines(string(data)), nil
}

// SplitLines splits document text into lines, stripping any trailing
// carriage returns so CRLF input classifies the same as LF input.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ScanText scans in-memory document text. Used by surfaces that receive
// the screenplay over the wire instead of from a file.
func ScanText(text string) ([]fountain.Segment, error) {
	segments, err := fountain.Scan(SplitLines(text))
	if err != nil {
		return nil, scanError(err)
	}
	return segments, nil
}

// ScanFile reads and scans an input file in one step.
func ScanFile(path string) ([]fountain.Segment, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	segments, err := fountain.Scan(lines)
	if err != nil {
		return nil, scanError(err)
	}
	return segments, nil
}

// scanError maps engine scan failures onto structured errors.
func scanError(err error) error {
	if oerr, ok := err.(*fountain.OverflowError); ok {
		return errors.NewSuffixOverflow(oerr.SceneIndex, oerr.SetupLetter, oerr.Occurrences)
	}
	return errors.NewInternal(err)
}

// DefaultOutputPath derives an output filename by prefixing the input's
// base name, keeping the input's directory: /sp/ep1.fountain with prefix
// SCHEDULE_ becomes /sp/SCHEDULE_ep1.fountain.
func DefaultOutputPath(inputPath, prefix string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	return filepath.Join(dir, prefix+base)
}

// Stats summarizes a scanned segment sequence for run records and command
// output.
type Stats struct {
	Scenes   int `json:"scenes"`
	Setups   int `json:"setups"`
	Segments int `json:"segments"`
}

// Summarize computes scene, distinct-setup-letter, and segment counts.
func Summarize(segments []fountain.Segment) Stats {
	maxScene := 0
	letters := make(map[string]bool)
	for _, seg := range segments {
		if seg.SceneIndex > maxScene {
			maxScene = seg.SceneIndex
		}
		if seg.Attributed() {
			letters[seg.SetupLetter] = true
		}
	}
	return Stats{
		Scenes:   maxScene,
		Setups:   len(letters),
		Segments: len(segments),
	}
}
