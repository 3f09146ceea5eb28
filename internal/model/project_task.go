package model

import "time"

// ProjectTask project_tasks table.
//
// AssignedEmployeeIDs is not a foreign key: the repository checks every id
// against employees on write, and deleting an employee leaves stale ids in
// the blob.
type ProjectTask struct {
	ID                  int64       `gorm:"primaryKey;autoIncrement"            json:"id"`
	ProjectID           int64       `gorm:"not null;index"                      json:"project_id"  validate:"gt=0"`
	Name                string      `gorm:"type:varchar(100);not null"          json:"name"        validate:"text=100"`
	Description         string      `gorm:"type:varchar(200);not null"          json:"description" validate:"text=200"`
	Status              string      `gorm:"type:varchar(50);not null;index"     json:"status"      validate:"text=50"`
	StartDate           *time.Time  `json:"start_date,omitempty"`
	DueDate             *time.Time  `json:"due_date,omitempty"`
	AssignedEmployeeIDs EmployeeIDs `gorm:"column:assigned_employee_ids;type:text" json:"assigned_employee_ids"`

	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:RESTRICT" json:"project,omitempty" validate:"-"`
}

// TableName sets the table name.
func (ProjectTask) TableName() string { return "project_tasks" }
