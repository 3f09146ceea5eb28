package service

import (
	"context"

	"go.uber.org/zap"

	"task-tracker/internal/dto"
	"task-tracker/internal/model"
	"task-tracker/internal/repository"
)

// ProjectTaskService project task use cases.
type ProjectTaskService interface {
	Create(ctx context.Context, req *dto.ProjectTaskRequest) (*dto.ProjectTaskResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProjectTaskResponse, error)
	List(ctx context.Context) ([]dto.ProjectTaskResponse, error)
	ListByProject(ctx context.Context, projectID int64) ([]dto.ProjectTaskResponse, error)
	ListByStatus(ctx context.Context, status string) ([]dto.ProjectTaskResponse, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]dto.ProjectTaskResponse, error)
	Update(ctx context.Context, id int64, req *dto.ProjectTaskRequest) (*dto.ProjectTaskResponse, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (*dto.CountResponse, error)
}

type projectTaskService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProjectTaskService creates a ProjectTaskService.
func NewProjectTaskService(repo *repository.Repository, logger *zap.Logger) ProjectTaskService {
	return &projectTaskService{repo: repo, logger: logger}
}

func (s *projectTaskService) Create(ctx context.Context, req *dto.ProjectTaskRequest) (*dto.ProjectTaskResponse, error) {
	task := toProjectTaskModel(0, req)
	if err := s.repo.ProjectTask.Create(ctx, task); err != nil {
		logStoreError(s.logger, "create task failed", err)
		return nil, err
	}
	return s.reload(ctx, task), nil
}

func (s *projectTaskService) GetByID(ctx context.Context, id int64) (*dto.ProjectTaskResponse, error) {
	task, err := s.repo.ProjectTask.GetByID(ctx, id)
	if err != nil {
		logStoreError(s.logger, "get task failed", err, zap.Int64("id", id))
		return nil, err
	}
	return toProjectTaskResponse(task), nil
}

func (s *projectTaskService) List(ctx context.Context) ([]dto.ProjectTaskResponse, error) {
	tasks, err := s.repo.ProjectTask.List(ctx)
	if err != nil {
		logStoreError(s.logger, "list tasks failed", err)
		return nil, err
	}
	return toProjectTaskResponses(tasks), nil
}

func (s *projectTaskService) ListByProject(ctx context.Context, projectID int64) ([]dto.ProjectTaskResponse, error) {
	tasks, err := s.repo.ProjectTask.ListByProject(ctx, projectID)
	if err != nil {
		logStoreError(s.logger, "list tasks by project failed", err, zap.Int64("project_id", projectID))
		return nil, err
	}
	return toProjectTaskResponses(tasks), nil
}

func (s *projectTaskService) ListByStatus(ctx context.Context, status string) ([]dto.ProjectTaskResponse, error) {
	tasks, err := s.repo.ProjectTask.ListByStatus(ctx, status)
	if err != nil {
		logStoreError(s.logger, "list tasks by status failed", err, zap.String("status", status))
		return nil, err
	}
	return toProjectTaskResponses(tasks), nil
}

func (s *projectTaskService) ListByEmployee(ctx context.Context, employeeID int64) ([]dto.ProjectTaskResponse, error) {
	tasks, err := s.repo.ProjectTask.ListByEmployee(ctx, employeeID)
	if err != nil {
		logStoreError(s.logger, "list tasks by employee failed", err, zap.Int64("employee_id", employeeID))
		return nil, err
	}
	return toProjectTaskResponses(tasks), nil
}

func (s *projectTaskService) Count(ctx context.Context) (*dto.CountResponse, error) {
	n, err := s.repo.ProjectTask.Count(ctx)
	if err != nil {
		logStoreError(s.logger, "count tasks failed", err)
		return nil, err
	}
	return &dto.CountResponse{Count: n}, nil
}

func (s *projectTaskService) Update(ctx context.Context, id int64, req *dto.ProjectTaskRequest) (*dto.ProjectTaskResponse, error) {
	if _, err := s.repo.ProjectTask.GetByID(ctx, id); err != nil {
		logStoreError(s.logger, "get task failed", err, zap.Int64("id", id))
		return nil, err
	}

	task := toProjectTaskModel(id, req)
	if err := s.repo.ProjectTask.Update(ctx, task); err != nil {
		logStoreError(s.logger, "update task failed", err, zap.Int64("id", id))
		return nil, err
	}
	return s.reload(ctx, task), nil
}

func (s *projectTaskService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.ProjectTask.GetByID(ctx, id); err != nil {
		logStoreError(s.logger, "get task failed", err, zap.Int64("id", id))
		return err
	}
	if err := s.repo.ProjectTask.Delete(ctx, id); err != nil {
		logStoreError(s.logger, "delete task failed", err, zap.Int64("id", id))
		return err
	}
	return nil
}

func (s *projectTaskService) reload(ctx context.Context, written *model.ProjectTask) *dto.ProjectTaskResponse {
	task, err := s.repo.ProjectTask.GetByID(ctx, written.ID)
	if err != nil {
		s.logger.Warn("reload task failed", zap.Int64("id", written.ID), zap.Error(err))
		return toProjectTaskResponse(written)
	}
	return toProjectTaskResponse(task)
}

func toProjectTaskModel(id int64, req *dto.ProjectTaskRequest) *model.ProjectTask {
	return &model.ProjectTask{
		ID:                  id,
		ProjectID:           req.ProjectID,
		Name:                req.Name,
		Description:         req.Description,
		Status:              req.Status,
		StartDate:           req.StartDate,
		DueDate:             req.DueDate,
		AssignedEmployeeIDs: model.EmployeeIDs(req.AssignedEmployeeIDs),
	}
}

func toProjectTaskResponse(t *model.ProjectTask) *dto.ProjectTaskResponse {
	resp := &dto.ProjectTaskResponse{
		ID:                  t.ID,
		ProjectID:           t.ProjectID,
		Name:                t.Name,
		Description:         t.Description,
		Status:              t.Status,
		StartDate:           t.StartDate,
		DueDate:             t.DueDate,
		AssignedEmployeeIDs: []int64(t.AssignedEmployeeIDs.Normalize()),
	}
	if t.Project != nil {
		resp.ProjectName = t.Project.Name
	}
	return resp
}

func toProjectTaskResponses(tasks []model.ProjectTask) []dto.ProjectTaskResponse {
	result := make([]dto.ProjectTaskResponse, 0, len(tasks))
	for i := range tasks {
		result = append(result, *toProjectTaskResponse(&tasks[i]))
	}
	return result
}
