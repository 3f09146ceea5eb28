package handler

import (
	"github.com/gin-gonic/gin"

	"task-tracker/internal/dto"
	"task-tracker/internal/service"
	"task-tracker/pkg/response"
)

// ProjectTaskHandler project task HTTP handlers.
type ProjectTaskHandler struct {
	taskSvc service.ProjectTaskService
}

// NewProjectTaskHandler creates a ProjectTaskHandler.
func NewProjectTaskHandler(taskSvc service.ProjectTaskService) *ProjectTaskHandler {
	return &ProjectTaskHandler{taskSvc: taskSvc}
}

// ListTasks GET /api/v1/project-tasks
func (h *ProjectTaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, codeProjectTaskBase, err)
		return
	}
	response.OK(c, tasks)
}

// ListTasksByProject GET /api/v1/project-tasks/project/:projectId
func (h *ProjectTaskHandler) ListTasksByProject(c *gin.Context) {
	projectID, ok := parseID(c, "projectId")
	if !ok {
		return
	}
	tasks, err := h.taskSvc.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		writeError(c, codeProjectTaskBase, err)
		return
	}
	response.OK(c, tasks)
}

// ListTasksByStatus GET /api/v1/project-tasks/status/:status
func (h *ProjectTaskHandler) ListTasksByStatus(c *gin.Context) {
	tasks, err := h.taskSvc.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		writeError(c, codeProjectTaskBase, err)
		return
	}
	response.OK(c, tasks)
}

// ListTasksByEmployee GET /api/v1/project-tasks/employee/:employeeId
func (h *ProjectTaskHandler) ListTasksByEmployee(c *gin.Context) {
	employeeID, ok := parseID(c, "employeeId")
	if !ok {
		return
	}
	tasks, err := h.taskSvc.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		writeError(c, codeProjectTaskBase, err)
		return
	}
	response.OK(c, tasks)
}

// CountTasks GET /api/v1/project-tasks/count
func (h *ProjectTaskHandler) CountTasks(c *gin.Context) {
	count, err := h.taskSvc.Count(c.Request.Context())
	if err != nil {
		writeError(c, codeProjectTaskBase, err)
		return
	}
	response.OK(c, count)
}

// GetTask GET /api/v1/project-tasks/:id
func (h *ProjectTaskHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	task, err := h.taskSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, codeProjectTaskBase, err)
		return
	}
	response.OK(c, task)
}

// CreateTask POST /api/v1/project-tasks
func (h *ProjectTaskHandler) CreateTask(c *gin.Context) {
	var req dto.ProjectTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.taskSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, codeProjectTaskBase, err)
		return
	}
	response.Created(c, task)
}

// UpdateTask PUT /api/v1/project-tasks/:id
func (h *ProjectTaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ProjectTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.taskSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, codeProjectTaskBase, err)
		return
	}
	response.OK(c, task)
}

// DeleteTask DELETE /api/v1/project-tasks/:id
func (h *ProjectTaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.taskSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, codeProjectTaskBase, err)
		return
	}
	response.OK(c, nil)
}
