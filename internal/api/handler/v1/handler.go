package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linkslog/scorecard-api/internal/api/handler/v1/response"
	"github.com/linkslog/scorecard-api/internal/domain"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %w", name, err)
	}

	return uint(id), nil
}

// renderDomainErr maps the domain error taxonomy onto HTTP statuses:
// validation 400, not found 404, conflict 409, anything else 500.
func renderDomainErr(ctx *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		conflictErr   *domain.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		response.RenderErr(ctx, response.ErrBadRequest(validationErr))
	case errors.As(err, &notFoundErr):
		response.RenderErr(ctx, response.ErrNotFound(notFoundErr.Resource, "id", notFoundErr.ID))
	case errors.As(err, &conflictErr):
		response.RenderErr(ctx, response.ErrConflict(conflictErr))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
