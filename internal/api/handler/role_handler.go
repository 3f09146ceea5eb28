package handler

import (
	"github.com/gin-gonic/gin"

	"task-tracker/internal/dto"
	"task-tracker/internal/service"
	"task-tracker/pkg/response"
)

// RoleHandler role HTTP handlers.
type RoleHandler struct {
	roleSvc service.RoleService
}

// NewRoleHandler creates a RoleHandler.
func NewRoleHandler(roleSvc service.RoleService) *RoleHandler {
	return &RoleHandler{roleSvc: roleSvc}
}

// ListRoles GET /api/v1/roles
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, codeRoleBase, err)
		return
	}
	response.OK(c, roles)
}

// ListRolesByDepartment GET /api/v1/roles/department/:departmentId
func (h *RoleHandler) ListRolesByDepartment(c *gin.Context) {
	departmentID, ok := parseID(c, "departmentId")
	if !ok {
		return
	}
	roles, err := h.roleSvc.ListByDepartment(c.Request.Context(), departmentID)
	if err != nil {
		writeError(c, codeRoleBase, err)
		return
	}
	response.OK(c, roles)
}

// CountRoles GET /api/v1/roles/count
func (h *RoleHandler) CountRoles(c *gin.Context) {
	count, err := h.roleSvc.Count(c.Request.Context())
	if err != nil {
		writeError(c, codeRoleBase, err)
		return
	}
	response.OK(c, count)
}

// GetRole GET /api/v1/roles/:id
func (h *RoleHandler) GetRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	role, err := h.roleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, codeRoleBase, err)
		return
	}
	response.OK(c, role)
}

// CreateRole POST /api/v1/roles
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req dto.RoleRequest
	if !bindJSON(c, &req) {
		return
	}
	role, err := h.roleSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, codeRoleBase, err)
		return
	}
	response.Created(c, role)
}

// UpdateRole PUT /api/v1/roles/:id
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.RoleRequest
	if !bindJSON(c, &req) {
		return
	}
	role, err := h.roleSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, codeRoleBase, err)
		return
	}
	response.OK(c, role)
}

// DeleteRole DELETE /api/v1/roles/:id
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.roleSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, codeRoleBase, err)
		return
	}
	response.OK(c, nil)
}
