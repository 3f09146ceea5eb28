package handler

import (
	"github.com/gin-gonic/gin"

	"task-tracker/internal/dto"
	"task-tracker/internal/service"
	"task-tracker/pkg/response"
)

// ProjectHandler project HTTP handlers.
type ProjectHandler struct {
	projectSvc service.ProjectService
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projectSvc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// ListProjects GET /api/v1/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, codeProjectBase, err)
		return
	}
	response.OK(c, projects)
}

// ListProjectsByStatus GET /api/v1/projects/status/:status
func (h *ProjectHandler) ListProjectsByStatus(c *gin.Context) {
	projects, err := h.projectSvc.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		writeError(c, codeProjectBase, err)
		return
	}
	response.OK(c, projects)
}

// CountProjects GET /api/v1/projects/count
func (h *ProjectHandler) CountProjects(c *gin.Context) {
	count, err := h.projectSvc.Count(c.Request.Context())
	if err != nil {
		writeError(c, codeProjectBase, err)
		return
	}
	response.OK(c, count)
}

// GetProject GET /api/v1/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	project, err := h.projectSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, codeProjectBase, err)
		return
	}
	response.OK(c, project)
}

// CreateProject POST /api/v1/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.projectSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, codeProjectBase, err)
		return
	}
	response.Created(c, project)
}

// UpdateProject PUT /api/v1/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.projectSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, codeProjectBase, err)
		return
	}
	response.OK(c, project)
}

// DeleteProject DELETE /api/v1/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.projectSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, codeProjectBase, err)
		return
	}
	response.OK(c, nil)
}
