package ops

import (
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ewinters/slate/internal/config"
	"github.com/ewinters/slate/internal/db"
	"github.com/ewinters/slate/internal/errors"
)

// HistoryInput contains parameters for the History operation.
type HistoryInput struct {
	Limit  int
	Offset int
}

// HistoryOutput contains the result of the History operation.
type HistoryOutput struct {
	Runs       []db.Run   `json:"runs"`
	Pagination Pagination `json:"pagination"`
}

// History lists past reorganize runs, newest first.
func History(database *sql.DB, input HistoryInput) (*HistoryOutput, error) {
	if database == nil {
		return nil, errors.NewInvalidRequest("run history is unavailable (no database)")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	runs, err := db.ListRuns(database, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := db.CountRuns(database)
	if err != nil {
		return nil, err
	}

	if runs == nil {
		runs = []db.Run{}
	}

	return &HistoryOutput{
		Runs: runs,
		Pagination: Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+len(runs) < total,
			Total:   total,
		},
	}, nil
}

// recordRun stores a run record after a successful reorganize. History is
// best-effort: a nil database or disabled history skips it, and insert
// failures are ignored rather than failing a run whose outputs are already
// on disk. Returns the run ID, or empty if nothing was recorded.
func recordRun(database *sql.DB, cfg *config.Config, command, inputPath string, outputs []string, stats Stats) string {
	if database == nil || cfg.HistoryDisabled {
		return ""
	}

	id, err := generateULID()
	if err != nil {
		return ""
	}

	run := &db.Run{
		ID:        id,
		Command:   command,
		InputPath: inputPath,
		Outputs:   outputs,
		Scenes:    stats.Scenes,
		Setups:    stats.Setups,
		Segments:  stats.Segments,
		CreatedAt: time.Now().Unix(),
	}
	if err := db.InsertRun(database, run); err != nil {
		return ""
	}
	return id
}

// generateULID creates a new ULID for a run record.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
