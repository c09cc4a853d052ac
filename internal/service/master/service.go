package master

import (
	"context"
	"errors"

	"github.com/buildsite/worksite-backend-go/internal/domain/master/project"
	"github.com/buildsite/worksite-backend-go/internal/domain/master/worker"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

// MasterService manages the company's master data: workers (crew members)
// and projects (work sites).
type MasterService interface {
	CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error)
	ListWorkers(ctx context.Context, activeOnly bool) ([]worker.WorkerResponse, error)
	DeactivateWorker(ctx context.Context, id string) error

	CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error)
	ListProjects(ctx context.Context, activeOnly bool) ([]project.ProjectResponse, error)
	DeactivateProject(ctx context.Context, id string) error
}

type MasterServiceImpl struct {
	workerRepo  worker.WorkerRepository
	projectRepo project.ProjectRepository
}

func NewMasterService(workerRepo worker.WorkerRepository, projectRepo project.ProjectRepository) MasterService {
	return &MasterServiceImpl{
		workerRepo:  workerRepo,
		projectRepo: projectRepo,
	}
}

func (s *MasterServiceImpl) companyID(ctx context.Context) (string, error) {
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

// ========== WORKERS ==========

func (s *MasterServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	companyID, err := s.companyID(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		ID:           uuid.NewString(),
		CompanyID:    companyID,
		Name:         req.Name,
		Phone:        req.Phone,
		DailyWage:    req.DailyWage,
		OvertimeRate: req.OvertimeRate,
		IsActive:     true,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return mapToWorkerResponse(created), nil
}

func (s *MasterServiceImpl) ListWorkers(ctx context.Context, activeOnly bool) ([]worker.WorkerResponse, error) {
	companyID, err := s.companyID(ctx)
	if err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.GetByCompanyID(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		result = append(result, mapToWorkerResponse(w))
	}
	return result, nil
}

func (s *MasterServiceImpl) DeactivateWorker(ctx context.Context, id string) error {
	companyID, err := s.companyID(ctx)
	if err != nil {
		return err
	}

	return s.workerRepo.Deactivate(ctx, id, companyID)
}

// ========== PROJECTS ==========

func (s *MasterServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	companyID, err := s.companyID(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.projectRepo.Create(ctx, project.Project{
		ID:         uuid.NewString(),
		CompanyID:  companyID,
		Name:       req.Name,
		ClientName: req.ClientName,
		Address:    req.Address,
		IsActive:   true,
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return mapToProjectResponse(created), nil
}

func (s *MasterServiceImpl) ListProjects(ctx context.Context, activeOnly bool) ([]project.ProjectResponse, error) {
	companyID, err := s.companyID(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.GetByCompanyID(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		result = append(result, mapToProjectResponse(p))
	}
	return result, nil
}

func (s *MasterServiceImpl) DeactivateProject(ctx context.Context, id string) error {
	companyID, err := s.companyID(ctx)
	if err != nil {
		return err
	}

	return s.projectRepo.Deactivate(ctx, id, companyID)
}

// ========== HELPERS ==========

func mapToWorkerResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:           w.ID,
		CompanyID:    w.CompanyID,
		Name:         w.Name,
		Phone:        w.Phone,
		DailyWage:    w.DailyWage,
		OvertimeRate: w.OvertimeRate,
		IsActive:     w.IsActive,
	}
}

func mapToProjectResponse(p project.Project) project.ProjectResponse {
	return project.ProjectResponse{
		ID:         p.ID,
		CompanyID:  p.CompanyID,
		Name:       p.Name,
		ClientName: p.ClientName,
		Address:    p.Address,
		IsActive:   p.IsActive,
	}
}
