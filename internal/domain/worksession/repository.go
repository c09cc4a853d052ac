package worksession

import (
	"context"
	"time"
)

// WorkSessionRepository defines data access methods for work sessions.
// All methods include companyID to prevent cross-company data access.
type WorkSessionRepository interface {
	Create(ctx context.Context, session WorkSession) (WorkSession, error)
	GetByID(ctx context.Context, id string, companyID string) (WorkSession, error)
	GetByCompanyAndRange(ctx context.Context, companyID string, start, end time.Time) ([]WorkSession, error)
	Delete(ctx context.Context, id string, companyID string) error
}
