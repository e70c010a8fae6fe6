package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"namestat/domain/core"
	"namestat/domain/run"
	"namestat/internal/errors"
	"namestat/ports"
)

const runsSchema = `
CREATE TABLE IF NOT EXISTS namestat_runs (
	id           TEXT PRIMARY KEY,
	input_file   TEXT NOT NULL,
	total_names  INTEGER NOT NULL,
	unique_names INTEGER NOT NULL,
	mean_length  DOUBLE PRECISION NOT NULL,
	artifacts    TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL
)`

// RunRepositoryImpl implements RunLedgerPort for PostgreSQL
type RunRepositoryImpl struct {
	db *sqlx.DB
}

// runRow is the database representation of a run record
type runRow struct {
	ID          string    `db:"id"`
	InputFile   string    `db:"input_file"`
	TotalNames  int       `db:"total_names"`
	UniqueNames int       `db:"unique_names"`
	MeanLength  float64   `db:"mean_length"`
	Artifacts   string    `db:"artifacts"`
	CreatedAt   time.Time `db:"created_at"`
}

// NewRunRepository creates a PostgreSQL run ledger, creating the backing
// table if it does not exist yet
func NewRunRepository(ctx context.Context, db *sqlx.DB) (ports.RunLedgerPort, error) {
	if _, err := db.ExecContext(ctx, runsSchema); err != nil {
		return nil, errors.WithCode(errors.CodeDatabaseError, errors.Wrap(err, "failed to create namestat_runs table"))
	}
	return &RunRepositoryImpl{db: db}, nil
}

// SaveRun records a completed pipeline run
func (r *RunRepositoryImpl) SaveRun(ctx context.Context, record run.Record) error {
	row := runRow{
		ID:          record.ID.String(),
		InputFile:   record.InputFile,
		TotalNames:  record.TotalNames,
		UniqueNames: record.UniqueNames,
		MeanLength:  record.MeanLength,
		Artifacts:   strings.Join(record.Artifacts, ","),
		CreatedAt:   record.CreatedAt.Time(),
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO namestat_runs (
			id, input_file, total_names, unique_names, mean_length, artifacts, created_at
		) VALUES (
			:id, :input_file, :total_names, :unique_names, :mean_length, :artifacts, :created_at
		)
	`, row)
	if err != nil {
		return errors.Wrapf(err, "failed to save run %s", record.ID)
	}
	return nil
}

// ListRuns retrieves the most recent runs, newest first
func (r *RunRepositoryImpl) ListRuns(ctx context.Context, limit int) ([]run.Record, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []runRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, input_file, total_names, unique_names, mean_length, artifacts, created_at
		FROM namestat_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}

	records := make([]run.Record, 0, len(rows))
	for _, row := range rows {
		var artifacts []string
		if row.Artifacts != "" {
			artifacts = strings.Split(row.Artifacts, ",")
		}
		records = append(records, run.Record{
			ID:          core.RunID(row.ID),
			InputFile:   row.InputFile,
			TotalNames:  row.TotalNames,
			UniqueNames: row.UniqueNames,
			MeanLength:  row.MeanLength,
			Artifacts:   artifacts,
			CreatedAt:   core.NewTimestamp(row.CreatedAt),
		})
	}
	return records, nil
}
