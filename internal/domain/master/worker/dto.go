package worker

import (
	"time"

	"github.com/buildsite/worksite-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Worker struct {
	ID           string
	CompanyID    string
	Name         string
	Phone        *string
	DailyWage    decimal.Decimal
	OvertimeRate decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateWorkerRequest struct {
	Name         string          `json:"name"`
	Phone        *string         `json:"phone,omitempty"`
	DailyWage    decimal.Decimal `json:"daily_wage"`
	OvertimeRate decimal.Decimal `json:"overtime_rate"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
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

type WorkerResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	Name         string          `json:"name"`
	Phone        *string         `json:"phone,omitempty"`
	DailyWage    decimal.Decimal `json:"daily_wage"`
	OvertimeRate decimal.Decimal `json:"overtime_rate"`
	IsActive     bool            `json:"is_active"`
}
