package payroll

import (
	"context"
	"time"
)

// PayrollService is the company-facing settlement API. Reference dates arrive
// already parsed; an unparseable date is rejected at the HTTP edge and never
// reaches the engine.
type PayrollService interface {
	GetSettings(ctx context.Context) (PayrollSettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdatePayrollSettingsRequest) (PayrollSettingsResponse, error)

	// GetPeriod returns the settlement period ref falls into under the
	// company's settings.
	GetPeriod(ctx context.Context, ref time.Time) (PeriodResponse, error)

	// ListPeriods returns the monthsBack most recent selectable periods,
	// newest first.
	ListPeriods(ctx context.Context, monthsBack int) ([]PeriodResponse, error)

	// GetSummaries resolves the period for ref, loads the company's work
	// sessions in that range and aggregates them per worker.
	GetSummaries(ctx context.Context, ref time.Time) (SummariesResponse, error)
}
