package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/buildsite/worksite-backend-go/internal/domain/payroll"
	"github.com/buildsite/worksite-backend-go/internal/domain/worksession"
	"github.com/go-chi/jwtauth/v5"
)

// PayrollServiceImpl reads through repositories only; every operation is a
// single query or pure computation, so it holds no transaction handle.
type PayrollServiceImpl struct {
	payrollRepo payroll.PayrollRepository
	sessionRepo worksession.WorkSessionRepository
	calculator  *PeriodCalculator
	aggregator  *SessionAggregator
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	sessionRepo worksession.WorkSessionRepository,
	calculator *PeriodCalculator,
	aggregator *SessionAggregator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo: payrollRepo,
		sessionRepo: sessionRepo,
		calculator:  calculator,
		aggregator:  aggregator,
	}
}

// Helper to get company_id from JWT context
func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// ========== SETTINGS ==========

func (s *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.PayrollSettingsResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	// Missing settings is a configuration error, not a case for defaults: a
	// defaulted convention would silently change every wage calculation.
	settings, err := s.payrollRepo.GetSettings(ctx, companyID)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	return mapToSettingsResponse(settings), nil
}

func (s *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdatePayrollSettingsRequest) (payroll.PayrollSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	updated, err := s.payrollRepo.UpsertSettings(ctx, payroll.PayrollSettings{
		CompanyID:  companyID,
		ClosingDay: req.ClosingDay,
		PayDay:     req.PayDay,
	})
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	return mapToSettingsResponse(updated), nil
}

// ========== PERIODS ==========

func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, ref time.Time) (payroll.PeriodResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	settings, err := s.payrollRepo.GetSettings(ctx, companyID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	period, err := s.calculator.ComputePeriod(ref, settings.ClosingDay, settings.PayDay)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return mapToPeriodResponse(period), nil
}

func (s *PayrollServiceImpl) ListPeriods(ctx context.Context, monthsBack int) ([]payroll.PeriodResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.payrollRepo.GetSettings(ctx, companyID)
	if err != nil {
		return nil, err
	}

	periods, err := s.calculator.GeneratePeriods(time.Now().UTC(), settings.ClosingDay, settings.PayDay, monthsBack)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, mapToPeriodResponse(p))
	}
	return result, nil
}

// ========== SUMMARIES ==========

func (s *PayrollServiceImpl) GetSummaries(ctx context.Context, ref time.Time) (payroll.SummariesResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.SummariesResponse{}, err
	}

	settings, err := s.payrollRepo.GetSettings(ctx, companyID)
	if err != nil {
		return payroll.SummariesResponse{}, err
	}

	period, err := s.calculator.ComputePeriod(ref, settings.ClosingDay, settings.PayDay)
	if err != nil {
		return payroll.SummariesResponse{}, err
	}

	sessions, err := s.sessionRepo.GetByCompanyAndRange(ctx, companyID, period.StartDate, period.EndDate)
	if err != nil {
		return payroll.SummariesResponse{}, fmt.Errorf("failed to load work sessions: %w", err)
	}

	summaries, warnings := s.aggregator.Aggregate(period, sessions)

	resp := payroll.SummariesResponse{
		Period:    mapToPeriodResponse(period),
		Summaries: make([]payroll.SummaryResponse, 0, len(summaries)),
	}
	for _, sum := range summaries {
		resp.Summaries = append(resp.Summaries, mapToSummaryResponse(sum))
	}
	for _, w := range warnings {
		resp.Warnings = append(resp.Warnings, payroll.PartialDataWarningResponse{
			SessionID: w.SessionID,
			Field:     w.Field,
			Message:   w.Message,
		})
	}

	return resp, nil
}

// ========== HELPERS ==========

func mapToSettingsResponse(s payroll.PayrollSettings) payroll.PayrollSettingsResponse {
	return payroll.PayrollSettingsResponse{
		ID:         s.ID,
		CompanyID:  s.CompanyID,
		ClosingDay: s.ClosingDay,
		PayDay:     s.PayDay,
	}
}

func mapToPeriodResponse(p payroll.Period) payroll.PeriodResponse {
	return payroll.PeriodResponse{
		StartDate:   p.StartDate.Format("2006-01-02"),
		EndDate:     p.EndDate.Format("2006-01-02"),
		ClosingDate: p.ClosingDate.Format("2006-01-02"),
		PayDate:     p.PayDate.Format("2006-01-02"),
	}
}

func mapToSummaryResponse(s payroll.Summary) payroll.SummaryResponse {
	projects := make([]payroll.ProjectSummaryResponse, 0, len(s.Projects))
	for _, p := range s.Projects {
		projects = append(projects, payroll.ProjectSummaryResponse{
			ProjectID:     p.ProjectID,
			ProjectName:   p.ProjectName,
			WorkDays:      p.WorkDays,
			WorkHours:     p.WorkHours,
			OvertimeHours: p.OvertimeHours,
			Wage:          p.Wage,
		})
	}

	return payroll.SummaryResponse{
		WorkerID:      s.WorkerID,
		WorkerName:    s.WorkerName,
		Period:        mapToPeriodResponse(s.Period),
		WorkDays:      s.WorkDays,
		WorkHours:     s.WorkHours,
		OvertimeHours: s.OvertimeHours,
		RegularWage:   s.RegularWage,
		OvertimeWage:  s.OvertimeWage,
		TotalWage:     s.TotalWage,
		Projects:      projects,
	}
}
