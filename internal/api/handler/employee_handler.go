package handler

import (
	"github.com/gin-gonic/gin"

	"task-tracker/internal/dto"
	"task-tracker/internal/service"
	"task-tracker/pkg/response"
)

// EmployeeHandler employee HTTP handlers.
type EmployeeHandler struct {
	empSvc service.EmployeeService
}

// NewEmployeeHandler creates an EmployeeHandler.
func NewEmployeeHandler(empSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{empSvc: empSvc}
}

// ListEmployees GET /api/v1/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	emps, err := h.empSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, codeEmployeeBase, err)
		return
	}
	response.OK(c, emps)
}

// ListEmployeesByDepartment GET /api/v1/employees/department/:departmentId
func (h *EmployeeHandler) ListEmployeesByDepartment(c *gin.Context) {
	departmentID, ok := parseID(c, "departmentId")
	if !ok {
		return
	}
	emps, err := h.empSvc.ListByDepartment(c.Request.Context(), departmentID)
	if err != nil {
		writeError(c, codeEmployeeBase, err)
		return
	}
	response.OK(c, emps)
}

// ListEmployeesByRole GET /api/v1/employees/role/:roleId
func (h *EmployeeHandler) ListEmployeesByRole(c *gin.Context) {
	roleID, ok := parseID(c, "roleId")
	if !ok {
		return
	}
	emps, err := h.empSvc.ListByRole(c.Request.Context(), roleID)
	if err != nil {
		writeError(c, codeEmployeeBase, err)
		return
	}
	response.OK(c, emps)
}

// CountEmployees GET /api/v1/employees/count
func (h *EmployeeHandler) CountEmployees(c *gin.Context) {
	count, err := h.empSvc.Count(c.Request.Context())
	if err != nil {
		writeError(c, codeEmployeeBase, err)
		return
	}
	response.OK(c, count)
}

// GetEmployee GET /api/v1/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	emp, err := h.empSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, codeEmployeeBase, err)
		return
	}
	response.OK(c, emp)
}

// CreateEmployee POST /api/v1/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.EmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	emp, err := h.empSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, codeEmployeeBase, err)
		return
	}
	response.Created(c, emp)
}

// UpdateEmployee PUT /api/v1/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.EmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	emp, err := h.empSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, codeEmployeeBase, err)
		return
	}
	response.OK(c, emp)
}

// DeleteEmployee DELETE /api/v1/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.empSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, codeEmployeeBase, err)
		return
	}
	response.OK(c, nil)
}
