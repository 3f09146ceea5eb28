package repository

import "gorm.io/gorm"

// Repository aggregates every repository.
type Repository struct {
	Department  DepartmentRepository
	Role        RoleRepository
	Employee    EmployeeRepository
	Project     ProjectRepository
	ProjectTask ProjectTaskRepository
}

// NewRepository creates the Repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	employees := NewEmployeeRepo(db)
	return &Repository{
		Department:  NewDepartmentRepo(db),
		Role:        NewRoleRepo(db),
		Employee:    employees,
		Project:     NewProjectRepo(db),
		ProjectTask: NewProjectTaskRepo(db, employees),
	}
}
