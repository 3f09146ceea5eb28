package dto

import "github.com/shopspring/decimal"

// ── Employee ──

// EmployeeRequest create / update body. Salary accepts a JSON number or a
// decimal string.
type EmployeeRequest struct {
	Name         string          `json:"name"`
	Salary       decimal.Decimal `json:"salary"`
	DepartmentID int64           `json:"department_id"`
	RoleID       int64           `json:"role_id"`
}

// EmployeeResponse employee with department and role names.
type EmployeeResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Salary         decimal.Decimal `json:"salary"`
	DepartmentID   int64           `json:"department_id"`
	DepartmentName string          `json:"department_name,omitempty"`
	RoleID         int64           `json:"role_id"`
	RoleName       string          `json:"role_name,omitempty"`
}
