package repository

import (
	"context"

	"gorm.io/gorm"

	"task-tracker/internal/model"
	pkgerrors "task-tracker/pkg/errors"
)

// ProjectTaskRepository project task data access. The assigned employees of a
// task live in a single encoded column, see model.EmployeeIDs.
type ProjectTaskRepository interface {
	Create(ctx context.Context, task *model.ProjectTask) error
	Update(ctx context.Context, task *model.ProjectTask) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.ProjectTask, error)
	List(ctx context.Context) ([]model.ProjectTask, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.ProjectTask, error)
	ListByStatus(ctx context.Context, status string) ([]model.ProjectTask, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]model.ProjectTask, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

func newProjectTaskKind(lookup employeeLookup) *entityKind[model.ProjectTask] {
	return &entityKind[model.ProjectTask]{
		label:     "ProjectTask",
		textLabel: "Task",
		table:     "project_tasks",
		id:        func(t *model.ProjectTask) int64 { return t.ID },
		text: func(t *model.ProjectTask) []*string {
			return []*string{&t.Name, &t.Description, &t.Status}
		},
		refs: func(t *model.ProjectTask) []reference {
			return []reference{
				{constraint: "fk_project_tasks_project", field: "project_id", entity: "project", id: t.ProjectID},
			}
		},
		before: func(ctx context.Context, t *model.ProjectTask) error {
			if err := validateExisting(ctx, t.AssignedEmployeeIDs, lookup); err != nil {
				return err
			}
			t.AssignedEmployeeIDs = t.AssignedEmployeeIDs.Normalize()
			return nil
		},
		preload: []string{"Project"},
	}
}

type projectTaskRepo struct {
	*baseRepo[model.ProjectTask]
}

// NewProjectTaskRepo creates a ProjectTaskRepository. employees resolves
// assigned ids on every write.
func NewProjectTaskRepo(db *gorm.DB, employees EmployeeRepository) ProjectTaskRepository {
	return &projectTaskRepo{baseRepo: newBaseRepo(db, newProjectTaskKind(employees.ExistingIDs))}
}

func (r *projectTaskRepo) ListByProject(ctx context.Context, projectID int64) ([]model.ProjectTask, error) {
	return r.list(ctx, whereColumn("project_id", projectID))
}

func (r *projectTaskRepo) ListByStatus(ctx context.Context, status string) ([]model.ProjectTask, error) {
	return r.list(ctx, whereTrimmed("status", status))
}

// ListByEmployee decodes every task and keeps those assigned to employeeID.
// The association column cannot be filtered in SQL, so this is a full scan.
func (r *projectTaskRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]model.ProjectTask, error) {
	var tasks []model.ProjectTask
	if err := r.preloaded(ctx).Find(&tasks).Error; err != nil {
		return nil, pkgerrors.Store("list project_tasks", err)
	}
	return filterByAssignee(tasks, employeeID), nil
}
