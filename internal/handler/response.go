package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/apikit/internal/repository"
	"github.com/maxviazov/apikit/pkg/envelope"
	"github.com/maxviazov/apikit/pkg/failure"
)

// writeSuccess writes a success envelope around data.
func writeSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, envelope.Success(message, data))
}

// writeFailure converts a domain / infrastructure error into a status and an
// error envelope, then aborts the context. Extend here as new domain error
// categories emerge.
func writeFailure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, failure.ErrValidation):
		c.AbortWithStatusJSON(http.StatusBadRequest, envelope.FromFailure[envelope.NoData](err))
	case errors.Is(err, repository.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, envelope.NotFound("resource not found"))
	case errors.Is(err, repository.ErrAlreadyExists):
		c.AbortWithStatusJSON(http.StatusConflict, envelope.Error("already exists", ""))
	case errors.Is(err, repository.ErrConflict):
		c.AbortWithStatusJSON(http.StatusConflict, envelope.Error("conflict", ""))
	default:
		// Never leak internal failure details past their description boundary.
		c.AbortWithStatusJSON(http.StatusInternalServerError, envelope.Error("internal error", failure.ReferenceOf(err)))
	}
}

// writeBadRequest handles malformed request bodies without exposing parser
// internals.
func writeBadRequest(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, envelope.BadRequest(nil))
}
