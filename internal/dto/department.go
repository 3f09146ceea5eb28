package dto

// ── Department ──

// DepartmentRequest create / update body. Update replaces every field.
type DepartmentRequest struct {
	Name string `json:"name"`
}

// DepartmentResponse department.
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
