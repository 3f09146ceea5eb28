package service

import (
	"context"

	"go.uber.org/zap"

	"task-tracker/internal/dto"
	"task-tracker/internal/model"
	"task-tracker/internal/repository"
)

// ProjectService project use cases.
type ProjectService interface {
	Create(ctx context.Context, req *dto.ProjectRequest) (*dto.ProjectResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProjectResponse, error)
	List(ctx context.Context) ([]dto.ProjectResponse, error)
	ListByStatus(ctx context.Context, status string) ([]dto.ProjectResponse, error)
	Update(ctx context.Context, id int64, req *dto.ProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (*dto.CountResponse, error)
}

type projectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProjectService creates a ProjectService.
func NewProjectService(repo *repository.Repository, logger *zap.Logger) ProjectService {
	return &projectService{repo: repo, logger: logger}
}

func (s *projectService) Create(ctx context.Context, req *dto.ProjectRequest) (*dto.ProjectResponse, error) {
	project := toProjectModel(0, req)
	if err := s.repo.Project.Create(ctx, project); err != nil {
		logStoreError(s.logger, "create project failed", err)
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*dto.ProjectResponse, error) {
	project, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		logStoreError(s.logger, "get project failed", err, zap.Int64("id", id))
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) List(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := s.repo.Project.List(ctx)
	if err != nil {
		logStoreError(s.logger, "list projects failed", err)
		return nil, err
	}
	return toProjectResponses(projects), nil
}

func (s *projectService) ListByStatus(ctx context.Context, status string) ([]dto.ProjectResponse, error) {
	projects, err := s.repo.Project.ListByStatus(ctx, status)
	if err != nil {
		logStoreError(s.logger, "list projects by status failed", err, zap.String("status", status))
		return nil, err
	}
	return toProjectResponses(projects), nil
}

func (s *projectService) Count(ctx context.Context) (*dto.CountResponse, error) {
	n, err := s.repo.Project.Count(ctx)
	if err != nil {
		logStoreError(s.logger, "count projects failed", err)
		return nil, err
	}
	return &dto.CountResponse{Count: n}, nil
}

func (s *projectService) Update(ctx context.Context, id int64, req *dto.ProjectRequest) (*dto.ProjectResponse, error) {
	existing, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		logStoreError(s.logger, "get project failed", err, zap.Int64("id", id))
		return nil, err
	}

	project := toProjectModel(id, req)
	if err := s.repo.Project.Update(ctx, project); err != nil {
		logStoreError(s.logger, "update project failed", err, zap.Int64("id", id))
		return nil, err
	}
	project.Tasks = existing.Tasks
	return toProjectResponse(project), nil
}

// Delete fails with a conflict while the project still has tasks.
func (s *projectService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Project.GetByID(ctx, id); err != nil {
		logStoreError(s.logger, "get project failed", err, zap.Int64("id", id))
		return err
	}
	if err := s.repo.Project.Delete(ctx, id); err != nil {
		logStoreError(s.logger, "delete project failed", err, zap.Int64("id", id))
		return err
	}
	return nil
}

func toProjectModel(id int64, req *dto.ProjectRequest) *model.Project {
	return &model.Project{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
	}
}

func toProjectResponse(p *model.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		StartDate:   p.StartDate,
		DueDate:     p.DueDate,
		TaskCount:   len(p.Tasks),
	}
}

func toProjectResponses(projects []model.Project) []dto.ProjectResponse {
	result := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		result = append(result, *toProjectResponse(&projects[i]))
	}
	return result
}
