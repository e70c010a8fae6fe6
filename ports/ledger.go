package ports

import (
	"context"

	"namestat/domain/run"
)

// RunLedgerPort records completed pipeline runs for later inspection
type RunLedgerPort interface {
	SaveRun(ctx context.Context, record run.Record) error
	ListRuns(ctx context.Context, limit int) ([]run.Record, error)
}
