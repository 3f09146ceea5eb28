package repository

import (
	"context"

	"gorm.io/gorm"

	"task-tracker/internal/model"
)

// RoleRepository role data access. Role names are unique per department.
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]model.Role, error)
	Exists(ctx context.Context, id int64) (bool, error)
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	NameExistsInDepartment(ctx context.Context, name string, departmentID, excludeID int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

var roleKind = entityKind[model.Role]{
	label: "Role",
	table: "roles",
	id:    func(r *model.Role) int64 { return r.ID },
	text:  func(r *model.Role) []*string { return []*string{&r.Name} },
	unique: func(r *model.Role) UniqueQuery {
		return UniqueQuery{
			Column: "name",
			Value:  r.Name,
			Scope:  &Scope{Column: "department_id", Value: r.DepartmentID},
		}
	},
	refs: func(r *model.Role) []reference {
		return []reference{
			{constraint: "fk_roles_department", field: "department_id", entity: "department", id: r.DepartmentID},
		}
	},
	conflictSuffix: " in this department",
	preload:        []string{"Department"},
}

type roleRepo struct {
	*baseRepo[model.Role]
}

// NewRoleRepo creates a RoleRepository.
func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{baseRepo: newBaseRepo(db, &roleKind)}
}

func (r *roleRepo) ListByDepartment(ctx context.Context, departmentID int64) ([]model.Role, error) {
	return r.list(ctx, whereColumn("department_id", departmentID))
}

// NameExists checks the name across every department.
func (r *roleRepo) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.nameExists(ctx, UniqueQuery{Column: "name", Value: name, ExcludeID: excludeID})
}

func (r *roleRepo) NameExistsInDepartment(ctx context.Context, name string, departmentID, excludeID int64) (bool, error) {
	return r.nameExists(ctx, UniqueQuery{
		Column:    "name",
		Value:     name,
		Scope:     &Scope{Column: "department_id", Value: departmentID},
		ExcludeID: excludeID,
	})
}
