package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/buildsite/worksite-backend-go/internal/domain/worksession"
	"github.com/buildsite/worksite-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workSessionRepository struct {
	db *database.DB
}

func NewWorkSessionRepository(db *database.DB) worksession.WorkSessionRepository {
	return &workSessionRepository{db: db}
}

func (r *workSessionRepository) Create(ctx context.Context, session worksession.WorkSession) (worksession.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_sessions (
			id, company_id, worker_id, worker_name, project_id, project_name,
			work_date, total_hours, overtime_hours, daily_wage, overtime_rate
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, company_id, worker_id, worker_name, project_id, project_name,
			work_date, total_hours, overtime_hours, daily_wage, overtime_rate,
			created_at, updated_at
	`

	var s worksession.WorkSession
	err := q.QueryRow(ctx, query,
		session.ID, session.CompanyID, session.WorkerID, session.WorkerName,
		session.ProjectID, session.ProjectName, session.WorkDate,
		session.TotalHours, session.OvertimeHours, session.DailyWage, session.OvertimeRate,
	).Scan(
		&s.ID, &s.CompanyID, &s.WorkerID, &s.WorkerName, &s.ProjectID, &s.ProjectName,
		&s.WorkDate, &s.TotalHours, &s.OvertimeHours, &s.DailyWage, &s.OvertimeRate,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return worksession.WorkSession{}, fmt.Errorf("failed to create work session: %w", err)
	}

	return s, nil
}

func (r *workSessionRepository) GetByID(ctx context.Context, id string, companyID string) (worksession.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, worker_id, worker_name, project_id, project_name,
			work_date, total_hours, overtime_hours, daily_wage, overtime_rate,
			created_at, updated_at
		FROM work_sessions
		WHERE id = $1 AND company_id = $2
	`

	var s worksession.WorkSession
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&s.ID, &s.CompanyID, &s.WorkerID, &s.WorkerName, &s.ProjectID, &s.ProjectName,
		&s.WorkDate, &s.TotalHours, &s.OvertimeHours, &s.DailyWage, &s.OvertimeRate,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worksession.WorkSession{}, worksession.ErrWorkSessionNotFound
		}
		return worksession.WorkSession{}, fmt.Errorf("failed to get work session: %w", err)
	}

	return s, nil
}

func (r *workSessionRepository) GetByCompanyAndRange(ctx context.Context, companyID string, start, end time.Time) ([]worksession.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	// Stable order keeps aggregation output deterministic across calls.
	query := `
		SELECT id, company_id, worker_id, worker_name, project_id, project_name,
			work_date, total_hours, overtime_hours, daily_wage, overtime_rate,
			created_at, updated_at
		FROM work_sessions
		WHERE company_id = $1 AND work_date BETWEEN $2 AND $3
		ORDER BY work_date, id
	`

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sessions: %w", err)
	}
	defer rows.Close()

	var sessions []worksession.WorkSession
	for rows.Next() {
		var s worksession.WorkSession
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.WorkerID, &s.WorkerName, &s.ProjectID, &s.ProjectName,
			&s.WorkDate, &s.TotalHours, &s.OvertimeHours, &s.DailyWage, &s.OvertimeRate,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err = rows.Err(); err != nil {
		// A truncated list would silently understate every summary built
		// from it, so iteration failures must surface.
		return nil, fmt.Errorf("failed to read work sessions: %w", err)
	}

	return sessions, nil
}

func (r *workSessionRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_sessions WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete work session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worksession.ErrWorkSessionNotFound
	}

	return nil
}
