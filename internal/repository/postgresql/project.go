package postgresql

import (
	"context"
	"fmt"

	"github.com/buildsite/worksite-backend-go/internal/domain/master/project"
	"github.com/buildsite/worksite-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, company_id, name, client_name, address, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, company_id, name, client_name, address, is_active, created_at, updated_at
	`

	var created project.Project
	err := q.QueryRow(ctx, query,
		p.ID, p.CompanyID, p.Name, p.ClientName, p.Address, p.IsActive,
	).Scan(
		&created.ID, &created.CompanyID, &created.Name, &created.ClientName,
		&created.Address, &created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return created, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string, companyID string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, client_name, address, is_active, created_at, updated_at
		FROM projects
		WHERE id = $1 AND company_id = $2
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.ClientName,
		&p.Address, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (r *projectRepository) GetByCompanyID(ctx context.Context, companyID string, activeOnly bool) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, client_name, address, is_active, created_at, updated_at
		FROM projects
		WHERE company_id = $1
	`
	if activeOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.Name, &p.ClientName,
			&p.Address, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	return projects, nil
}

func (r *projectRepository) Deactivate(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE projects SET is_active = false, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to deactivate project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}
