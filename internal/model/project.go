package model

import "time"

// Project projects table. Names are unique across all projects.
type Project struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"                               json:"id"`
	Name        string     `gorm:"type:varchar(100);not null;uniqueIndex:uq_projects_name" json:"name"        validate:"text=100"`
	Description string     `gorm:"type:varchar(200);not null"                             json:"description" validate:"text=200"`
	Status      string     `gorm:"type:varchar(50);not null;index"                        json:"status"      validate:"text=50"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`

	Tasks []ProjectTask `gorm:"foreignKey:ProjectID" json:"tasks,omitempty" validate:"-"`
}

// TableName sets the table name.
func (Project) TableName() string { return "projects" }
