package ops

import (
	"database/sql"

	"github.com/ewinters/slate/internal/config"
	"github.com/ewinters/slate/internal/render"
)

// ScreenplayInput contains parameters for the Screenplay operation.
type ScreenplayInput struct {
	InputPath  string
	OutputPath string // optional, default: <dir>/SETUPSCREENPLAY_<base>
}

// ScreenplayOutput contains the result of the Screenplay operation.
type ScreenplayOutput struct {
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path"`
	Stats      Stats  `json:"stats"`
	RunID      string `json:"run_id,omitempty"`
}

// Screenplay reads the input screenplay and writes the chronological
// annotated screenplay view, with a setup header at every transition.
func Screenplay(database *sql.DB, cfg *config.Config, input ScreenplayInput) (*ScreenplayOutput, error) {
	segments, err := ScanFile(input.InputPath)
	if err != nil {
		return nil, err
	}

	outputPath := input.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputPath(input.InputPath, cfg.ScreenplayPrefix)
	}

	if err := WriteFileAtomic(outputPath, render.Screenplay(segments)); err != nil {
		return nil, err
	}

	stats := Summarize(segments)
	runID := recordRun(database, cfg, "screenplay", input.InputPath, []string{outputPath}, stats)

	return &ScreenplayOutput{
		InputPath:  input.InputPath,
		OutputPath: outputPath,
		Stats:      stats,
		RunID:      runID,
	}, nil
}
