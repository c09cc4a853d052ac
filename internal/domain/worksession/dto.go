package worksession

import (
	"context"
	"time"

	"github.com/buildsite/worksite-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkSessionRequest struct {
	WorkerID      string          `json:"worker_id"`
	ProjectID     string          `json:"project_id"`
	WorkDate      string          `json:"work_date"`
	TotalHours    float64         `json:"total_hours"`
	OvertimeHours float64         `json:"overtime_hours"`
	DailyWage     decimal.Decimal `json:"daily_wage"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
}

// Validate checks the fields a settlement can't proceed without. Missing
// worker/project linkage is deliberately NOT an error here: such rows are
// accepted and flagged downstream so no financial data is dropped.
func (r *CreateWorkSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.TotalHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "total_hours", Message: "must be non-negative"})
	}
	if r.OvertimeHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.DailyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_wage", Message: "must be non-negative"})
	}
	if r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkSessionResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	WorkerID      string          `json:"worker_id,omitempty"`
	WorkerName    string          `json:"worker_name,omitempty"`
	ProjectID     string          `json:"project_id,omitempty"`
	ProjectName   string          `json:"project_name,omitempty"`
	WorkDate      string          `json:"work_date"`
	TotalHours    float64         `json:"total_hours"`
	OvertimeHours float64         `json:"overtime_hours"`
	DailyWage     decimal.Decimal `json:"daily_wage"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
}

type WorkSessionService interface {
	Create(ctx context.Context, req CreateWorkSessionRequest) (WorkSessionResponse, error)
	Get(ctx context.Context, id string) (WorkSessionResponse, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]WorkSessionResponse, error)
	Delete(ctx context.Context, id string) error
}
