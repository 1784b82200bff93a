package report

import (
	"context"
	"io"
)

type ReportService interface {
	// Daily reconstructs one row per employee and civil date.
	Daily(ctx context.Context, filter DailyFilter) (DailyTable, error)
	// ExportDaily writes the filtered daily table as CSV and returns the
	// suggested download filename.
	ExportDaily(ctx context.Context, filter DailyFilter, w io.Writer) (filename string, err error)
	Summary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
	DaySummary(ctx context.Context, date string) (DaySummary, error)
}
