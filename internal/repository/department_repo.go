package repository

import (
	"context"

	"gorm.io/gorm"

	"task-tracker/internal/model"
)

// DepartmentRepository department data access.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *model.Department) error
	Update(ctx context.Context, dept *model.Department) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
	Exists(ctx context.Context, id int64) (bool, error)
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

var departmentKind = entityKind[model.Department]{
	label: "Department",
	table: "departments",
	id:    func(d *model.Department) int64 { return d.ID },
	text:  func(d *model.Department) []*string { return []*string{&d.Name} },
	unique: func(d *model.Department) UniqueQuery {
		return UniqueQuery{Column: "name", Value: d.Name}
	},
}

// departmentRepo GORM implementation of DepartmentRepository.
type departmentRepo struct {
	*baseRepo[model.Department]
}

// NewDepartmentRepo creates a DepartmentRepository.
func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{baseRepo: newBaseRepo(db, &departmentKind)}
}

func (r *departmentRepo) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.nameExists(ctx, UniqueQuery{Column: "name", Value: name, ExcludeID: excludeID})
}
