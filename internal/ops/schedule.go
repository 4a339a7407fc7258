package ops

import (
	"database/sql"

	"github.com/ewinters/slate/internal/config"
	"github.com/ewinters/slate/internal/render"
)

// ScheduleInput contains parameters for the Schedule operation.
type ScheduleInput struct {
	InputPath  string
	OutputPath string // optional, default: <dir>/SCHEDULE_<base>
}

// ScheduleOutput contains the result of the Schedule operation.
type ScheduleOutput struct {
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path"`
	Stats      Stats  `json:"stats"`
	RunID      string `json:"run_id,omitempty"`
}

// Schedule reads the input screenplay, regroups its segments by camera
// setup, and writes the shooting schedule view. Nothing is written if the
// scan fails. The database may be nil; history is then skipped.
func Schedule(database *sql.DB, cfg *config.Config, input ScheduleInput) (*ScheduleOutput, error) {
	segments, err := ScanFile(input.InputPath)
	if err != nil {
		return nil, err
	}

	outputPath := input.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputPath(input.InputPath, cfg.SchedulePrefix)
	}

	if err := WriteFileAtomic(outputPath, render.Schedule(segments)); err != nil {
		return nil, err
	}

	stats := Summarize(segments)
	runID := recordRun(database, cfg, "schedule", input.InputPath, []string{outputPath}, stats)

	return &ScheduleOutput{
		InputPath:  input.InputPath,
		OutputPath: outputPath,
		Stats:      stats,
		RunID:      runID,
	}, nil
}
