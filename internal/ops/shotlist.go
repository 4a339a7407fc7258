package ops

import (
	"database/sql"

	"github.com/ewinters/slate/internal/config"
	"github.com/ewinters/slate/internal/render"
)

// ShotlistInput contains parameters for the Shotlist operation.
type ShotlistInput struct {
	InputPath      string
	ScheduleOutput string // optional, default: <dir>/SHOTLIST_<base>
	ScreenplayOut  string // optional, default: <dir>/SETUPSCREENPLAY_<base>
}

// ShotlistOutput contains the result of the Shotlist operation.
type ShotlistOutput struct {
	InputPath      string `json:"input_path"`
	SchedulePath   string `json:"schedule_path"`
	ScreenplayPath string `json:"screenplay_path"`
	Stats          Stats  `json:"stats"`
	RunID          string `json:"run_id,omitempty"`
}

// Shotlist produces both views from one scan: the setup-grouped shooting
// schedule under the SHOTLIST_ prefix and the annotated screenplay. Both
// renders complete before either file is written, so a failure leaves no
// partial pair behind.
func Shotlist(database *sql.DB, cfg *config.Config, input ShotlistInput) (*ShotlistOutput, error) {
	segments, err := ScanFile(input.InputPath)
	if err != nil {
		return nil, err
	}

	schedulePath := input.ScheduleOutput
	if schedulePath == "" {
		schedulePath = DefaultOutputPath(input.InputPath, cfg.ShotlistPrefix)
	}
	screenplayPath := input.ScreenplayOut
	if screenplayPath == "" {
		screenplayPath = DefaultOutputPath(input.InputPath, cfg.ScreenplayPrefix)
	}

	scheduleText := render.Schedule(segments)
	screenplayText := render.Screenplay(segments)

	if err := WriteFileAtomic(schedulePath, scheduleText); err != nil {
		return nil, err
	}
	if err := WriteFileAtomic(screenplayPath, screenplayText); err != nil {
		return nil, err
	}

	stats := Summarize(segments)
	runID := recordRun(database, cfg, "shotlist", input.InputPath,
		[]string{schedulePath, screenplayPath}, stats)

	return &ShotlistOutput{
		InputPath:      input.InputPath,
		SchedulePath:   schedulePath,
		ScreenplayPath: screenplayPath,
		Stats:          stats,
		RunID:          runID,
	}, nil
}
