package repository

import (
	"context"

	"gorm.io/gorm"

	"task-tracker/internal/model"
)

// ProjectRepository project data access.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	ListByStatus(ctx context.Context, status string) ([]model.Project, error)
	Exists(ctx context.Context, id int64) (bool, error)
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

var projectKind = entityKind[model.Project]{
	label: "Project",
	table: "projects",
	id:    func(p *model.Project) int64 { return p.ID },
	text: func(p *model.Project) []*string {
		return []*string{&p.Name, &p.Description, &p.Status}
	},
	unique: func(p *model.Project) UniqueQuery {
		return UniqueQuery{Column: "name", Value: p.Name}
	},
	preload: []string{"Tasks"},
}

type projectRepo struct {
	*baseRepo[model.Project]
}

// NewProjectRepo creates a ProjectRepository.
func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{baseRepo: newBaseRepo(db, &projectKind)}
}

// ListByStatus compares trimmed status values.
func (r *projectRepo) ListByStatus(ctx context.Context, status string) ([]model.Project, error) {
	return r.list(ctx, whereTrimmed("status", status))
}

func (r *projectRepo) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.nameExists(ctx, UniqueQuery{Column: "name", Value: name, ExcludeID: excludeID})
}
