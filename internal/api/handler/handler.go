package handler

import "task-tracker/internal/service"

// Handler aggregates every handler.
type Handler struct {
	Department  *DepartmentHandler
	Role        *RoleHandler
	Employee    *EmployeeHandler
	Project     *ProjectHandler
	ProjectTask *ProjectTaskHandler
	Health      *HealthHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service, health *HealthHandler) *Handler {
	return &Handler{
		Department:  NewDepartmentHandler(svc.Department),
		Role:        NewRoleHandler(svc.Role),
		Employee:    NewEmployeeHandler(svc.Employee),
		Project:     NewProjectHandler(svc.Project),
		ProjectTask: NewProjectTaskHandler(svc.ProjectTask),
		Health:      health,
	}
}
