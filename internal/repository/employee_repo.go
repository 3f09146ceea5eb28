package repository

import (
	"context"

	"gorm.io/gorm"

	"task-tracker/internal/model"
	pkgerrors "task-tracker/pkg/errors"
)

// EmployeeRepository employee data access.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *model.Employee) error
	Update(ctx context.Context, emp *model.Employee) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]model.Employee, error)
	ListByRole(ctx context.Context, roleID int64) ([]model.Employee, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// ExistingIDs returns the subset of ids that belong to an employee.
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
	Count(ctx context.Context) (int64, error)
}

var employeeKind = entityKind[model.Employee]{
	label: "Employee",
	table: "employees",
	id:    func(e *model.Employee) int64 { return e.ID },
	text:  func(e *model.Employee) []*string { return []*string{&e.Name} },
	check: checkSalary,
	refs: func(e *model.Employee) []reference {
		return []reference{
			{constraint: "fk_employees_department", field: "department_id", entity: "department", id: e.DepartmentID},
			{constraint: "fk_employees_role", field: "role_id", entity: "role", id: e.RoleID},
		}
	},
	preload: []string{"Department", "Role"},
}

type employeeRepo struct {
	*baseRepo[model.Employee]
}

// NewEmployeeRepo creates an EmployeeRepository.
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{baseRepo: newBaseRepo(db, &employeeKind)}
}

func (r *employeeRepo) ListByDepartment(ctx context.Context, departmentID int64) ([]model.Employee, error) {
	return r.list(ctx, whereColumn("department_id", departmentID))
}

func (r *employeeRepo) ListByRole(ctx context.Context, roleID int64) ([]model.Employee, error) {
	return r.list(ctx, whereColumn("role_id", roleID))
}

func (r *employeeRepo) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []int64
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, pkgerrors.Store("lookup employees", err)
	}
	return found, nil
}
