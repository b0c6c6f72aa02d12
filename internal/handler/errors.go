package handler

import (
	"errors"
	"net/http"

	"backend/internal/repository"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps the storage error taxonomy onto HTTP status codes so
// callers can tell constraint violations from genuine server failures.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateKey):
		status = http.StatusConflict
	case errors.Is(err, repository.ErrForeignKeyViolated):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrInvalidEnum):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrTxAborted):
		status = http.StatusConflict
	}
	c.JSON(status, response.Error(status, err.Error()))
}
