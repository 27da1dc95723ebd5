package repository

import (
	"context"

	"log_report/internal/domain/report"
)

// QueryExecutor executes SQL queries in order and returns one result set per query.
type QueryExecutor interface {
	Execute(ctx context.Context, queries []string) ([]report.ResultSet, error)
}
