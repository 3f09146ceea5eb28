package service

import (
	"context"

	"go.uber.org/zap"

	"task-tracker/internal/dto"
	"task-tracker/internal/model"
	"task-tracker/internal/repository"
)

// RoleService role use cases.
type RoleService interface {
	Create(ctx context.Context, req *dto.RoleRequest) (*dto.RoleResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.RoleResponse, error)
	List(ctx context.Context) ([]dto.RoleResponse, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]dto.RoleResponse, error)
	Update(ctx context.Context, id int64, req *dto.RoleRequest) (*dto.RoleResponse, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (*dto.CountResponse, error)
}

type roleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRoleService creates a RoleService.
func NewRoleService(repo *repository.Repository, logger *zap.Logger) RoleService {
	return &roleService{repo: repo, logger: logger}
}

func (s *roleService) Create(ctx context.Context, req *dto.RoleRequest) (*dto.RoleResponse, error) {
	role := &model.Role{Name: req.Name, DepartmentID: req.DepartmentID}
	if err := s.repo.Role.Create(ctx, role); err != nil {
		logStoreError(s.logger, "create role failed", err)
		return nil, err
	}
	return s.reload(ctx, role), nil
}

func (s *roleService) GetByID(ctx context.Context, id int64) (*dto.RoleResponse, error) {
	role, err := s.repo.Role.GetByID(ctx, id)
	if err != nil {
		logStoreError(s.logger, "get role failed", err, zap.Int64("id", id))
		return nil, err
	}
	return toRoleResponse(role), nil
}

func (s *roleService) List(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := s.repo.Role.List(ctx)
	if err != nil {
		logStoreError(s.logger, "list roles failed", err)
		return nil, err
	}
	return toRoleResponses(roles), nil
}

func (s *roleService) ListByDepartment(ctx context.Context, departmentID int64) ([]dto.RoleResponse, error) {
	roles, err := s.repo.Role.ListByDepartment(ctx, departmentID)
	if err != nil {
		logStoreError(s.logger, "list roles by department failed", err, zap.Int64("department_id", departmentID))
		return nil, err
	}
	return toRoleResponses(roles), nil
}

func (s *roleService) Count(ctx context.Context) (*dto.CountResponse, error) {
	n, err := s.repo.Role.Count(ctx)
	if err != nil {
		logStoreError(s.logger, "count roles failed", err)
		return nil, err
	}
	return &dto.CountResponse{Count: n}, nil
}

func (s *roleService) Update(ctx context.Context, id int64, req *dto.RoleRequest) (*dto.RoleResponse, error) {
	if _, err := s.repo.Role.GetByID(ctx, id); err != nil {
		logStoreError(s.logger, "get role failed", err, zap.Int64("id", id))
		return nil, err
	}

	role := &model.Role{ID: id, Name: req.Name, DepartmentID: req.DepartmentID}
	if err := s.repo.Role.Update(ctx, role); err != nil {
		logStoreError(s.logger, "update role failed", err, zap.Int64("id", id))
		return nil, err
	}
	return s.reload(ctx, role), nil
}

func (s *roleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Role.GetByID(ctx, id); err != nil {
		logStoreError(s.logger, "get role failed", err, zap.Int64("id", id))
		return err
	}
	if err := s.repo.Role.Delete(ctx, id); err != nil {
		logStoreError(s.logger, "delete role failed", err, zap.Int64("id", id))
		return err
	}
	return nil
}

// reload fetches the stored row so the response carries the department name;
// on failure it falls back to the written row.
func (s *roleService) reload(ctx context.Context, written *model.Role) *dto.RoleResponse {
	role, err := s.repo.Role.GetByID(ctx, written.ID)
	if err != nil {
		s.logger.Warn("reload role failed", zap.Int64("id", written.ID), zap.Error(err))
		return toRoleResponse(written)
	}
	return toRoleResponse(role)
}

func toRoleResponse(r *model.Role) *dto.RoleResponse {
	resp := &dto.RoleResponse{ID: r.ID, Name: r.Name, DepartmentID: r.DepartmentID}
	if r.Department != nil {
		resp.DepartmentName = r.Department.Name
	}
	return resp
}

func toRoleResponses(roles []model.Role) []dto.RoleResponse {
	result := make([]dto.RoleResponse, 0, len(roles))
	for i := range roles {
		result = append(result, *toRoleResponse(&roles[i]))
	}
	return result
}
