package service

import (
	"context"

	"go.uber.org/zap"

	"task-tracker/internal/dto"
	"task-tracker/internal/model"
	"task-tracker/internal/repository"
)

// EmployeeService employee use cases.
type EmployeeService interface {
	Create(ctx context.Context, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error)
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]dto.EmployeeResponse, error)
	ListByRole(ctx context.Context, roleID int64) ([]dto.EmployeeResponse, error)
	Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (*dto.CountResponse, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService creates an EmployeeService.
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

func (s *employeeService) Create(ctx context.Context, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	emp := toEmployeeModel(0, req)
	if err := s.repo.Employee.Create(ctx, emp); err != nil {
		logStoreError(s.logger, "create employee failed", err)
		return nil, err
	}
	return s.reload(ctx, emp), nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		logStoreError(s.logger, "get employee failed", err, zap.Int64("id", id))
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	emps, err := s.repo.Employee.List(ctx)
	if err != nil {
		logStoreError(s.logger, "list employees failed", err)
		return nil, err
	}
	return toEmployeeResponses(emps), nil
}

func (s *employeeService) ListByDepartment(ctx context.Context, departmentID int64) ([]dto.EmployeeResponse, error) {
	emps, err := s.repo.Employee.ListByDepartment(ctx, departmentID)
	if err != nil {
		logStoreError(s.logger, "list employees by department failed", err, zap.Int64("department_id", departmentID))
		return nil, err
	}
	return toEmployeeResponses(emps), nil
}

func (s *employeeService) ListByRole(ctx context.Context, roleID int64) ([]dto.EmployeeResponse, error) {
	emps, err := s.repo.Employee.ListByRole(ctx, roleID)
	if err != nil {
		logStoreError(s.logger, "list employees by role failed", err, zap.Int64("role_id", roleID))
		return nil, err
	}
	return toEmployeeResponses(emps), nil
}

func (s *employeeService) Count(ctx context.Context) (*dto.CountResponse, error) {
	n, err := s.repo.Employee.Count(ctx)
	if err != nil {
		logStoreError(s.logger, "count employees failed", err)
		return nil, err
	}
	return &dto.CountResponse{Count: n}, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if _, err := s.repo.Employee.GetByID(ctx, id); err != nil {
		logStoreError(s.logger, "get employee failed", err, zap.Int64("id", id))
		return nil, err
	}

	emp := toEmployeeModel(id, req)
	if err := s.repo.Employee.Update(ctx, emp); err != nil {
		logStoreError(s.logger, "update employee failed", err, zap.Int64("id", id))
		return nil, err
	}
	return s.reload(ctx, emp), nil
}

// Delete leaves the employee's id in any task that still lists it.
func (s *employeeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Employee.GetByID(ctx, id); err != nil {
		logStoreError(s.logger, "get employee failed", err, zap.Int64("id", id))
		return err
	}
	if err := s.repo.Employee.Delete(ctx, id); err != nil {
		logStoreError(s.logger, "delete employee failed", err, zap.Int64("id", id))
		return err
	}
	return nil
}

func (s *employeeService) reload(ctx context.Context, written *model.Employee) *dto.EmployeeResponse {
	emp, err := s.repo.Employee.GetByID(ctx, written.ID)
	if err != nil {
		s.logger.Warn("reload employee failed", zap.Int64("id", written.ID), zap.Error(err))
		return toEmployeeResponse(written)
	}
	return toEmployeeResponse(emp)
}

func toEmployeeModel(id int64, req *dto.EmployeeRequest) *model.Employee {
	return &model.Employee{
		ID:           id,
		Name:         req.Name,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
		RoleID:       req.RoleID,
	}
}

func toEmployeeResponse(e *model.Employee) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Salary:       e.Salary,
		DepartmentID: e.DepartmentID,
		RoleID:       e.RoleID,
	}
	if e.Department != nil {
		resp.DepartmentName = e.Department.Name
	}
	if e.Role != nil {
		resp.RoleName = e.Role.Name
	}
	return resp
}

func toEmployeeResponses(emps []model.Employee) []dto.EmployeeResponse {
	result := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		result = append(result, *toEmployeeResponse(&emps[i]))
	}
	return result
}
