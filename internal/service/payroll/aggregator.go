package payroll

import (
	"github.com/buildsite/worksite-backend-go/internal/domain/payroll"
	"github.com/buildsite/worksite-backend-go/internal/domain/worksession"
	"github.com/shopspring/decimal"
)

// SessionAggregator folds raw work sessions into per-worker wage summaries
// with a nested per-project breakdown. It is a pure grouping/summation pass:
// the caller pre-filters sessions to one company and period, and the
// aggregator performs no date filtering, no I/O and no clock reads, so the
// same input always yields the same output.
type SessionAggregator struct {
}

func NewSessionAggregator() *SessionAggregator {
	return &SessionAggregator{}
}

// Aggregate groups sessions by worker, then by project within each worker.
// Output order is insertion order of first-seen worker. Sessions with missing
// worker or project linkage are aggregated under a fallback identifier and
// reported as warnings; the pass never fails once the input is well-typed.
func (a *SessionAggregator) Aggregate(period payroll.Period, sessions []worksession.WorkSession) ([]payroll.Summary, []payroll.PartialDataWarning) {
	summaries := make([]payroll.Summary, 0)
	workerIdx := make(map[string]int)
	projectIdx := make(map[string]map[string]int)

	var warnings []payroll.PartialDataWarning

	for _, s := range sessions {
		workerID, workerName := s.WorkerID, s.WorkerName
		if workerID == "" {
			workerID = payroll.UnassignedWorkerID
			if workerName == "" {
				workerName = payroll.UnassignedWorkerName
			}
			warnings = append(warnings, payroll.PartialDataWarning{
				SessionID: s.ID,
				Field:     "worker_id",
				Message:   "session has no worker reference, aggregated under fallback worker",
			})
		}

		projectID, projectName := s.ProjectID, s.ProjectName
		if projectID == "" {
			projectID = payroll.UnassignedProjectID
			if projectName == "" {
				projectName = payroll.UnassignedProjectName
			}
			warnings = append(warnings, payroll.PartialDataWarning{
				SessionID: s.ID,
				Field:     "project_id",
				Message:   "session has no project reference, aggregated under fallback project",
			})
		}

		wi, seen := workerIdx[workerID]
		if !seen {
			wi = len(summaries)
			workerIdx[workerID] = wi
			projectIdx[workerID] = make(map[string]int)
			summaries = append(summaries, payroll.Summary{
				WorkerID:     workerID,
				WorkerName:   workerName,
				Period:       period,
				RegularWage:  decimal.Zero,
				OvertimeWage: decimal.Zero,
				TotalWage:    decimal.Zero,
				Projects:     []payroll.ProjectSummary{},
			})
		}

		overtimeWage := s.OvertimeRate.Mul(decimal.NewFromFloat(s.OvertimeHours))

		sum := &summaries[wi]
		sum.WorkDays++
		sum.WorkHours += s.TotalHours
		sum.OvertimeHours += s.OvertimeHours
		sum.RegularWage = sum.RegularWage.Add(s.DailyWage)
		sum.OvertimeWage = sum.OvertimeWage.Add(overtimeWage)

		pi, seen := projectIdx[workerID][projectID]
		if !seen {
			pi = len(sum.Projects)
			projectIdx[workerID][projectID] = pi
			sum.Projects = append(sum.Projects, payroll.ProjectSummary{
				ProjectID:   projectID,
				ProjectName: projectName,
				Wage:        decimal.Zero,
			})
		}

		proj := &sum.Projects[pi]
		proj.WorkDays++
		proj.WorkHours += s.TotalHours
		proj.OvertimeHours += s.OvertimeHours
		proj.Wage = proj.Wage.Add(s.DailyWage).Add(overtimeWage)
	}

	for i := range summaries {
		summaries[i].TotalWage = summaries[i].RegularWage.Add(summaries[i].OvertimeWage)
	}

	return summaries, warnings
}
