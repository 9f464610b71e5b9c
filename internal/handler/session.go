package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/service"
)

func SetupSessionRoutes(e *echo.Echo, catalog *service.CatalogService, authMiddleware, adminMiddleware echo.MiddlewareFunc) {
	g := e.Group("/api/admin", authMiddleware, adminMiddleware)
	g.GET("/courses/:id/sessions", ListSessions(catalog))
	g.POST("/courses/:id/sessions", CreateSession(catalog))
	g.PUT("/sessions/:id", UpdateSession(catalog))
	g.DELETE("/sessions/:id", DeleteSession(catalog))
}

// ListSessions godoc
// @Summary List sessions for a course
// @Description Get a course's sessions ordered by start time
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {array} domain.CourseSession
// @Failure 500 {object} map[string]string
// @Router /admin/courses/{id}/sessions [get]
func ListSessions(catalog *service.CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		courseID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid course id"})
		}

		sessions, err := catalog.ListSessions(c.Request().Context(), courseID)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, sessions)
	}
}

// CreateSession godoc
// @Summary Create a session
// @Description Schedule a new session for a course from date, time and seat count
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param session body domain.SessionRequest true "Session fields"
// @Success 201 {object} domain.CourseSession
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/courses/{id}/sessions [post]
func CreateSession(catalog *service.CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		courseID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid course id"})
		}

		var req domain.SessionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		session, err := catalog.CreateSession(c.Request().Context(), actorFromContext(c), courseID, &req)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusCreated, session)
	}
}

// UpdateSession godoc
// @Summary Update a session
// @Description Replace a session's start time and seat count
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param session body domain.SessionRequest true "Session fields"
// @Success 200 {object} domain.CourseSession
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/sessions/{id} [put]
func UpdateSession(catalog *service.CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid session id"})
		}

		var req domain.SessionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		session, err := catalog.UpdateSession(c.Request().Context(), actorFromContext(c), id, &req)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, session)
	}
}

// DeleteSession godoc
// @Summary Delete a session
// @Description Delete a session; fails with 409 while bookings exist
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/sessions/{id} [delete]
func DeleteSession(catalog *service.CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid session id"})
		}

		if err := catalog.DeleteSession(c.Request().Context(), actorFromContext(c), id); err != nil {
			return writeError(c, err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
