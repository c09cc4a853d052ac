package payroll

import (
	"github.com/buildsite/worksite-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SETTINGS DTOs ==========

type PayrollSettingsResponse struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	ClosingDay int    `json:"closing_day"`
	PayDay     int    `json:"pay_day"`
}

type UpdatePayrollSettingsRequest struct {
	ClosingDay int `json:"closing_day"`
	PayDay     int `json:"pay_day"`
}

// Validate enforces the settings-edit boundary: both values are day-of-month
// selectors in [1,31] and may not be equal. The period calculator re-checks
// the range but the equality rule lives only here.
func (r *UpdatePayrollSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsDayOfMonth(r.ClosingDay) {
		errs = append(errs, validator.ValidationError{Field: "closing_day", Message: "must be between 1 and 31"})
	}
	if !validator.IsDayOfMonth(r.PayDay) {
		errs = append(errs, validator.ValidationError{Field: "pay_day", Message: "must be between 1 and 31"})
	}
	if len(errs) > 0 {
		return errs
	}

	if r.ClosingDay == r.PayDay {
		return ErrClosingDayEqualsPayDay
	}
	return nil
}

// ========== PERIOD DTOs ==========

type PeriodResponse struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	ClosingDate string `json:"closing_date"`
	PayDate     string `json:"pay_date"`
}

// ========== SUMMARY DTOs ==========

type ProjectSummaryResponse struct {
	ProjectID     string          `json:"project_id"`
	ProjectName   string          `json:"project_name"`
	WorkDays      int             `json:"work_days"`
	WorkHours     float64         `json:"work_hours"`
	OvertimeHours float64         `json:"overtime_hours"`
	Wage          decimal.Decimal `json:"wage"`
}

type SummaryResponse struct {
	WorkerID      string                   `json:"worker_id"`
	WorkerName    string                   `json:"worker_name"`
	Period        PeriodResponse           `json:"period"`
	WorkDays      int                      `json:"work_days"`
	WorkHours     float64                  `json:"work_hours"`
	OvertimeHours float64                  `json:"overtime_hours"`
	RegularWage   decimal.Decimal          `json:"regular_wage"`
	OvertimeWage  decimal.Decimal          `json:"overtime_wage"`
	TotalWage     decimal.Decimal          `json:"total_wage"`
	Projects      []ProjectSummaryResponse `json:"projects"`
}

type PartialDataWarningResponse struct {
	SessionID string `json:"session_id"`
	Field     string `json:"field"`
	Message   string `json:"message"`
}

type SummariesResponse struct {
	Period    PeriodResponse               `json:"period"`
	Summaries []SummaryResponse            `json:"summaries"`
	Warnings  []PartialDataWarningResponse `json:"warnings,omitempty"`
}
