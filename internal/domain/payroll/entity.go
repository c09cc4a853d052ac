package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollSettings - per-company settlement convention. ClosingDay is the
// day-of-month a settlement period ends, PayDay is the day-of-month wages are
// disbursed in the month following closing. Both are selectors in [1,31] and
// clamp to shorter months; they must never be equal.
type PayrollSettings struct {
	ID         string
	CompanyID  string
	ClosingDay int
	PayDay     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Period is a computed settlement period. It is a pure value derived from a
// reference date and PayrollSettings, recomputed on demand and never
// persisted. StartDate..EndDate is an inclusive span of work dates,
// ClosingDate equals EndDate, PayDate falls in the month after EndDate.
type Period struct {
	StartDate   time.Time
	EndDate     time.Time
	ClosingDate time.Time
	PayDate     time.Time
}

// Equal reports whether two periods cover the same dates. Periods carry no
// identity beyond their date fields.
func (p Period) Equal(o Period) bool {
	return p.StartDate.Equal(o.StartDate) &&
		p.EndDate.Equal(o.EndDate) &&
		p.ClosingDate.Equal(o.ClosingDate) &&
		p.PayDate.Equal(o.PayDate)
}

// Contains reports whether d falls inside the period's inclusive date span.
func (p Period) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(p.StartDate) && !day.After(p.EndDate)
}

// Summary is the aggregation output for one worker over one period.
// Invariants: TotalWage = RegularWage + OvertimeWage, and the project wages
// sum to TotalWage (every session belongs to exactly one project).
type Summary struct {
	WorkerID      string
	WorkerName    string
	Period        Period
	WorkDays      int
	WorkHours     float64
	OvertimeHours float64
	RegularWage   decimal.Decimal
	OvertimeWage  decimal.Decimal
	TotalWage     decimal.Decimal
	Projects      []ProjectSummary
}

// ProjectSummary is one worker's per-project breakdown within a Summary.
type ProjectSummary struct {
	ProjectID     string
	ProjectName   string
	WorkDays      int
	WorkHours     float64
	OvertimeHours float64
	Wage          decimal.Decimal
}

// PartialDataWarning flags a session whose worker or project linkage was
// incomplete. The session is still aggregated under a fallback identifier;
// dropping financial data silently would be worse than flagging it.
type PartialDataWarning struct {
	SessionID string
	Field     string
	Message   string
}

// Fallback identifiers used when a session arrives without linkage.
const (
	UnassignedWorkerID    = "unassigned"
	UnassignedWorkerName  = "Unassigned"
	UnassignedProjectID   = "unassigned"
	UnassignedProjectName = "Unassigned"
)
