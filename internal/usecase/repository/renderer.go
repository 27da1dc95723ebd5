package repository

import (
	"context"
	"io"

	"log_report/internal/domain/query"
	"log_report/internal/domain/report"
)

// Renderer turns the catalog and its result sets into the report document.
type Renderer interface {
	Render(catalog []query.Query, results []report.ResultSet) ([]byte, error)
	Format() report.Format
}

// ReportStorage persists the rendered report (local file or S3 object).
type ReportStorage interface {
	Save(ctx context.Context, key string, reader io.Reader) error
}
