package service

import (
	"errors"

	"go.uber.org/zap"

	"task-tracker/internal/repository"
	pkgerrors "task-tracker/pkg/errors"
)

// Service aggregates every service.
type Service struct {
	Department  DepartmentService
	Role        RoleService
	Employee    EmployeeService
	Project     ProjectService
	ProjectTask ProjectTaskService
}

// NewService creates the Service aggregate.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Department:  NewDepartmentService(repo, logger),
		Role:        NewRoleService(repo, logger),
		Employee:    NewEmployeeService(repo, logger),
		Project:     NewProjectService(repo, logger),
		ProjectTask: NewProjectTaskService(repo, logger),
	}
}

// logStoreError logs store failures only; every other category is a client
// error and is reported through the response.
func logStoreError(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	if errors.Is(err, pkgerrors.ErrStore) {
		logger.Error(msg, append(fields, zap.Error(err))...)
	}
}
