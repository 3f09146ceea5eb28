package handler

import (
	"github.com/gin-gonic/gin"

	"task-tracker/internal/dto"
	"task-tracker/internal/service"
	"task-tracker/pkg/response"
)

// DepartmentHandler department HTTP handlers.
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler creates a DepartmentHandler.
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// ListDepartments GET /api/v1/departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	depts, err := h.deptSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, codeDepartmentBase, err)
		return
	}
	response.OK(c, depts)
}

// CountDepartments GET /api/v1/departments/count
func (h *DepartmentHandler) CountDepartments(c *gin.Context) {
	count, err := h.deptSvc.Count(c.Request.Context())
	if err != nil {
		writeError(c, codeDepartmentBase, err)
		return
	}
	response.OK(c, count)
}

// GetDepartment GET /api/v1/departments/:id
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	dept, err := h.deptSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, codeDepartmentBase, err)
		return
	}
	response.OK(c, dept)
}

// CreateDepartment POST /api/v1/departments
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req dto.DepartmentRequest
	if !bindJSON(c, &req) {
		return
	}
	dept, err := h.deptSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, codeDepartmentBase, err)
		return
	}
	response.Created(c, dept)
}

// UpdateDepartment PUT /api/v1/departments/:id
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.DepartmentRequest
	if !bindJSON(c, &req) {
		return
	}
	dept, err := h.deptSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, codeDepartmentBase, err)
		return
	}
	response.OK(c, dept)
}

// DeleteDepartment DELETE /api/v1/departments/:id
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.deptSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, codeDepartmentBase, err)
		return
	}
	response.OK(c, nil)
}
