package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/utils"
)

// writeError maps the error taxonomy onto HTTP statuses: validation
// 400, authorization 403, not found 404, conflict 409, anything else
// is a data-access failure and stays a generic 500.
func writeError(c echo.Context, err error) error {
	switch {
	case utils.IsValidation(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, utils.ErrReadOnly):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, utils.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case utils.IsConflict(err):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// actorFromContext rebuilds the acting principal from what JWTAuth
// stashed into the echo context.
func actorFromContext(c echo.Context) domain.Actor {
	var actor domain.Actor
	if id, ok := c.Get("user_id").(int); ok {
		actor.UserID = id
	}
	if role, ok := c.Get("role").(string); ok {
		actor.Role = role
	}
	return actor
}
