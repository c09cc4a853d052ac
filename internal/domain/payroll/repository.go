package payroll

import "context"

// PayrollRepository defines data access methods for payroll settings.
// All methods include companyID to prevent cross-company data access.
type PayrollRepository interface {
	GetSettings(ctx context.Context, companyID string) (PayrollSettings, error)
	UpsertSettings(ctx context.Context, settings PayrollSettings) (PayrollSettings, error)
}
