package dto

// ── Role ──

// RoleRequest create / update body.
type RoleRequest struct {
	Name         string `json:"name"`
	DepartmentID int64  `json:"department_id"`
}

// RoleResponse role with its department name.
type RoleResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DepartmentID   int64  `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
}
