package project

import "context"

// ProjectRepository defines data access methods for work-site projects.
// All methods include companyID to prevent cross-company data access.
type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string, companyID string) (Project, error)
	GetByCompanyID(ctx context.Context, companyID string, activeOnly bool) ([]Project, error)
	Deactivate(ctx context.Context, id string, companyID string) error
}
