package dto

import "time"

// ── Project task ──

// ProjectTaskRequest create / update body. AssignedEmployeeIDs is a set;
// order and duplicates are not preserved.
type ProjectTaskRequest struct {
	ProjectID           int64      `json:"project_id"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	Status              string     `json:"status"`
	StartDate           *time.Time `json:"start_date"`
	DueDate             *time.Time `json:"due_date"`
	AssignedEmployeeIDs []int64    `json:"assigned_employee_ids"`
}

// ProjectTaskResponse task with its project name. Assigned ids are ascending.
type ProjectTaskResponse struct {
	ID                  int64      `json:"id"`
	ProjectID           int64      `json:"project_id"`
	ProjectName         string     `json:"project_name,omitempty"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	Status              string     `json:"status"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	DueDate             *time.Time `json:"due_date,omitempty"`
	AssignedEmployeeIDs []int64    `json:"assigned_employee_ids"`
}
