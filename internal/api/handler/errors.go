package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pkgerrors "task-tracker/pkg/errors"
	"task-tracker/pkg/response"
)

// ── Business codes ──
//
// 10xxx are shared request errors. Each module owns a base; the offset names
// the error category.

const (
	codeInvalidParam = 10001
	codeBodyTooLarge = 10005

	codeDepartmentBase  = 21000
	codeRoleBase        = 22000
	codeEmployeeBase    = 23000
	codeProjectBase     = 24000
	codeProjectTaskBase = 25000
)

const (
	offsetValidation = iota + 1
	offsetConflict
	offsetInvalidReference
	offsetNotFound
	offsetOutOfRange
)

// writeError maps the error taxonomy onto HTTP responses for one module.
// Unclassified errors are attached to the context for the request logger and
// never shown to the client.
func writeError(c *gin.Context, base int, err error) {
	var verr *pkgerrors.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationFailed(c, base+offsetValidation, verr.Violations)
	case errors.Is(err, pkgerrors.ErrConflict):
		response.Conflict(c, base+offsetConflict, err.Error())
	case errors.Is(err, pkgerrors.ErrInvalidReference):
		response.BadRequest(c, base+offsetInvalidReference, err.Error())
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.NotFound(c, base+offsetNotFound, err.Error())
	case errors.Is(err, pkgerrors.ErrOutOfRange):
		response.BadRequest(c, base+offsetOutOfRange, err.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

// parseID reads an integer path parameter. Range checks are left to the
// repository so the message names the entity.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, codeInvalidParam, "Invalid "+name+".")
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body into req.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		response.Error(c, http.StatusRequestEntityTooLarge, codeBodyTooLarge, "Request body too large.")
		return false
	}
	response.BadRequest(c, codeInvalidParam, "Invalid request body.")
	return false
}
