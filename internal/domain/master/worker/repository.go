package worker

import "context"

// WorkerRepository defines data access methods for workers.
// All methods include companyID to prevent cross-company data access.
type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string, companyID string) (Worker, error)
	GetByCompanyID(ctx context.Context, companyID string, activeOnly bool) ([]Worker, error)
	Deactivate(ctx context.Context, id string, companyID string) error
}
