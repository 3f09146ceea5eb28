package service

import (
	"context"

	"go.uber.org/zap"

	"task-tracker/internal/dto"
	"task-tracker/internal/model"
	"task-tracker/internal/repository"
)

// DepartmentService department use cases.
type DepartmentService interface {
	Create(ctx context.Context, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error)
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (*dto.CountResponse, error)
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService creates a DepartmentService.
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *departmentService) Create(ctx context.Context, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	dept := &model.Department{Name: req.Name}
	if err := s.repo.Department.Create(ctx, dept); err != nil {
		logStoreError(s.logger, "create department failed", err)
		return nil, err
	}
	return toDepartmentResponse(dept), nil
}

// ────────────────────── Read ──────────────────────

func (s *departmentService) GetByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		logStoreError(s.logger, "get department failed", err, zap.Int64("id", id))
		return nil, err
	}
	return toDepartmentResponse(dept), nil
}

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		logStoreError(s.logger, "list departments failed", err)
		return nil, err
	}
	result := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		result = append(result, *toDepartmentResponse(&depts[i]))
	}
	return result, nil
}

func (s *departmentService) Count(ctx context.Context) (*dto.CountResponse, error) {
	n, err := s.repo.Department.Count(ctx)
	if err != nil {
		logStoreError(s.logger, "count departments failed", err)
		return nil, err
	}
	return &dto.CountResponse{Count: n}, nil
}

// ────────────────────── Update ──────────────────────

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	if _, err := s.repo.Department.GetByID(ctx, id); err != nil {
		logStoreError(s.logger, "get department failed", err, zap.Int64("id", id))
		return nil, err
	}

	dept := &model.Department{ID: id, Name: req.Name}
	if err := s.repo.Department.Update(ctx, dept); err != nil {
		logStoreError(s.logger, "update department failed", err, zap.Int64("id", id))
		return nil, err
	}
	return toDepartmentResponse(dept), nil
}

// ────────────────────── Delete ──────────────────────

func (s *departmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Department.GetByID(ctx, id); err != nil {
		logStoreError(s.logger, "get department failed", err, zap.Int64("id", id))
		return err
	}
	if err := s.repo.Department.Delete(ctx, id); err != nil {
		logStoreError(s.logger, "delete department failed", err, zap.Int64("id", id))
		return err
	}
	return nil
}

func toDepartmentResponse(d *model.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{ID: d.ID, Name: d.Name}
}
