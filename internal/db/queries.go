package db

import (
	"database/sql"
	"encoding/json"

	"github.com/ewinters/slate/internal/errors"
)

// Run records one completed reorganize invocation.
type Run struct {
	ID        string   `json:"id"`
	Command   string   `json:"command"`
	InputPath string   `json:"input_path"`
	Outputs   []string `json:"outputs"`
	Scenes    int      `json:"scenes"`
	Setups    int      `json:"setups"`
	Segments  int      `json:"segments"`
	CreatedAt int64    `json:"created_at"`
}

// InsertRun stores a completed run in the history table.
func InsertRun(db *sql.DB, r *Run) error {
	outputs, err := json.Marshal(r.Outputs)
	if err != nil {
		return errors.NewInternal(err)
	}

	query := `
		INSERT INTO runs (id, command, input_path, outputs, scenes, setups, segments, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = db.Exec(query,
		r.ID, r.Command, r.InputPath, string(outputs),
		r.Scenes, r.Setups, r.Segments, r.CreatedAt,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

// ListRuns returns runs newest first, with limit/offset pagination.
func ListRuns(db *sql.DB, limit, offset int) ([]Run, error) {
	query := `
		SELECT id, command, input_path, outputs, scenes, setups, segments, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outputs string
		if err := rows.Scan(&r.ID, &r.Command, &r.InputPath, &outputs,
			&r.Scenes, &r.Setups, &r.Segments, &r.CreatedAt); err != nil {
			return nil, errors.NewInternal(err)
		}
		if err := json.Unmarshal([]byte(outputs), &r.Outputs); err != nil {
			return nil, errors.NewInternal(err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return runs, nil
}

// CountRuns returns the total number of recorded runs.
func CountRuns(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		return 0, errors.NewInternal(err)
	}
	return count, nil
}
