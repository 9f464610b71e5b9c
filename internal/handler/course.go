package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/service"
)

func SetupCourseRoutes(e *echo.Echo, catalog *service.CatalogService, authMiddleware, adminMiddleware echo.MiddlewareFunc) {
	e.GET("/api/courses", ListCourses(catalog))
	e.GET("/api/sessions/upcoming", ListUpcomingSessions(catalog))

	g := e.Group("/api/admin/courses", authMiddleware, adminMiddleware)
	g.POST("", CreateCourse(catalog))
	g.PUT("/:id", UpdateCourse(catalog))
	g.DELETE("/:id", DeleteCourse(catalog))
}

// ListCourses godoc
// @Summary List all courses
// @Description Get all courses with their sessions and booking counts
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {array} domain.CourseWithSessions
// @Failure 500 {object} map[string]string
// @Router /courses [get]
func ListCourses(catalog *service.CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		courses, err := catalog.ListCourses(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, courses)
	}
}

// ListUpcomingSessions godoc
// @Summary List upcoming sessions
// @Description Get future sessions with course details and availability
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {array} domain.SessionWithCourse
// @Failure 500 {object} map[string]string
// @Router /sessions/upcoming [get]
func ListUpcomingSessions(catalog *service.CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessions, err := catalog.ListUpcomingSessions(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, sessions)
	}
}

// CreateCourse godoc
// @Summary Create a course
// @Description Create a new course; title is required
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body domain.CreateCourseRequest true "Course fields"
// @Success 201 {object} domain.Course
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/courses [post]
func CreateCourse(catalog *service.CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.CreateCourseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		course, err := catalog.CreateCourse(c.Request().Context(), actorFromContext(c), &req)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusCreated, course)
	}
}

// UpdateCourse godoc
// @Summary Update a course
// @Description Partially update a course by id
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param course body domain.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} domain.Course
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/courses/{id} [put]
func UpdateCourse(catalog *service.CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid course id"})
		}

		var req domain.UpdateCourseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		course, err := catalog.UpdateCourse(c.Request().Context(), actorFromContext(c), id, &req)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, course)
	}
}

// DeleteCourse godoc
// @Summary Delete a course
// @Description Delete a course; fails with 409 while sessions exist
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/courses/{id} [delete]
func DeleteCourse(catalog *service.CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid course id"})
		}

		if err := catalog.DeleteCourse(c.Request().Context(), actorFromContext(c), id); err != nil {
			return writeError(c, err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
