package worksession

import (
	"context"
	"errors"
	"time"

	"github.com/buildsite/worksite-backend-go/internal/domain/master/project"
	"github.com/buildsite/worksite-backend-go/internal/domain/master/worker"
	"github.com/buildsite/worksite-backend-go/internal/domain/worksession"
	"github.com/buildsite/worksite-backend-go/internal/pkg/database"
	"github.com/buildsite/worksite-backend-go/internal/pkg/validator"
	"github.com/buildsite/worksite-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type WorkSessionServiceImpl struct {
	db          database.TxBeginner
	sessionRepo worksession.WorkSessionRepository
	workerRepo  worker.WorkerRepository
	projectRepo project.ProjectRepository
}

func NewWorkSessionService(
	db database.TxBeginner,
	sessionRepo worksession.WorkSessionRepository,
	workerRepo worker.WorkerRepository,
	projectRepo project.ProjectRepository,
) worksession.WorkSessionService {
	return &WorkSessionServiceImpl{
		db:          db,
		sessionRepo: sessionRepo,
		workerRepo:  workerRepo,
		projectRepo: projectRepo,
	}
}

func (s *WorkSessionServiceImpl) companyID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", errors.New("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// Create records one day of work. Worker and project names are denormalized
// onto the row here, and the worker's master wage rates fill in when the
// request leaves them zero. A worker or project id that no longer resolves is
// kept as-is: the row still carries money and must not be rejected for a
// master-data gap. Lookups and insert run in one transaction so the
// denormalized fields match the master rows the insert saw.
func (s *WorkSessionServiceImpl) Create(ctx context.Context, req worksession.CreateWorkSessionRequest) (worksession.WorkSessionResponse, error) {
	if err := req.Validate(); err != nil {
		return worksession.WorkSessionResponse{}, err
	}

	companyID, err := s.companyID(ctx)
	if err != nil {
		return worksession.WorkSessionResponse{}, err
	}

	workDate, err := validator.ParseDate(req.WorkDate)
	if err != nil {
		return worksession.WorkSessionResponse{}, err
	}

	session := worksession.WorkSession{
		ID:            uuid.NewString(),
		CompanyID:     companyID,
		WorkerID:      req.WorkerID,
		ProjectID:     req.ProjectID,
		WorkDate:      workDate,
		TotalHours:    req.TotalHours,
		OvertimeHours: req.OvertimeHours,
		DailyWage:     req.DailyWage,
		OvertimeRate:  req.OvertimeRate,
	}

	var created worksession.WorkSession
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if req.WorkerID != "" {
			w, err := s.workerRepo.GetByID(txCtx, req.WorkerID, companyID)
			switch {
			case err == nil:
				session.WorkerName = w.Name
				if session.DailyWage.IsZero() {
					session.DailyWage = w.DailyWage
				}
				if session.OvertimeRate.IsZero() {
					session.OvertimeRate = w.OvertimeRate
				}
			case errors.Is(err, worker.ErrWorkerNotFound):
				// keep the dangling reference, flagged at aggregation time
			default:
				return err
			}
		}

		if req.ProjectID != "" {
			p, err := s.projectRepo.GetByID(txCtx, req.ProjectID, companyID)
			switch {
			case err == nil:
				session.ProjectName = p.Name
			case errors.Is(err, project.ErrProjectNotFound):
				// keep the dangling reference, flagged at aggregation time
			default:
				return err
			}
		}

		var err error
		created, err = s.sessionRepo.Create(txCtx, session)
		return err
	})
	if err != nil {
		return worksession.WorkSessionResponse{}, err
	}

	return mapToSessionResponse(created), nil
}

func (s *WorkSessionServiceImpl) Get(ctx context.Context, id string) (worksession.WorkSessionResponse, error) {
	companyID, err := s.companyID(ctx)
	if err != nil {
		return worksession.WorkSessionResponse{}, err
	}

	session, err := s.sessionRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return worksession.WorkSessionResponse{}, err
	}

	return mapToSessionResponse(session), nil
}

func (s *WorkSessionServiceImpl) ListByRange(ctx context.Context, start, end time.Time) ([]worksession.WorkSessionResponse, error) {
	companyID, err := s.companyID(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.GetByCompanyAndRange(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]worksession.WorkSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, mapToSessionResponse(session))
	}
	return result, nil
}

func (s *WorkSessionServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := s.companyID(ctx)
	if err != nil {
		return err
	}

	return s.sessionRepo.Delete(ctx, id, companyID)
}

func mapToSessionResponse(s worksession.WorkSession) worksession.WorkSessionResponse {
	return worksession.WorkSessionResponse{
		ID:            s.ID,
		CompanyID:     s.CompanyID,
		WorkerID:      s.WorkerID,
		WorkerName:    s.WorkerName,
		ProjectID:     s.ProjectID,
		ProjectName:   s.ProjectName,
		WorkDate:      s.WorkDate.Format("2006-01-02"),
		TotalHours:    s.TotalHours,
		OvertimeHours: s.OvertimeHours,
		DailyWage:     s.DailyWage,
		OvertimeRate:  s.OvertimeRate,
	}
}
