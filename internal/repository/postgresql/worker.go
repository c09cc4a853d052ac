package postgresql

import (
	"context"
	"fmt"

	"github.com/buildsite/worksite-backend-go/internal/domain/master/worker"
	"github.com/buildsite/worksite-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, company_id, name, phone, daily_wage, overtime_rate, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, company_id, name, phone, daily_wage, overtime_rate, is_active, created_at, updated_at
	`

	var created worker.Worker
	err := q.QueryRow(ctx, query,
		w.ID, w.CompanyID, w.Name, w.Phone, w.DailyWage, w.OvertimeRate, w.IsActive,
	).Scan(
		&created.ID, &created.CompanyID, &created.Name, &created.Phone,
		&created.DailyWage, &created.OvertimeRate, &created.IsActive,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return created, nil
}

func (r *workerRepository) GetByID(ctx context.Context, id string, companyID string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, phone, daily_wage, overtime_rate, is_active, created_at, updated_at
		FROM workers
		WHERE id = $1 AND company_id = $2
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&w.ID, &w.CompanyID, &w.Name, &w.Phone,
		&w.DailyWage, &w.OvertimeRate, &w.IsActive,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

func (r *workerRepository) GetByCompanyID(ctx context.Context, companyID string, activeOnly bool) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, phone, daily_wage, overtime_rate, is_active, created_at, updated_at
		FROM workers
		WHERE company_id = $1
	`
	if activeOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(
			&w.ID, &w.CompanyID, &w.Name, &w.Phone,
			&w.DailyWage, &w.OvertimeRate, &w.IsActive,
			&w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workers: %w", err)
	}

	return workers, nil
}

func (r *workerRepository) Deactivate(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE workers SET is_active = false, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to deactivate worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}
