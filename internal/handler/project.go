package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/repository/postgres"
)

func SetupProjectRoutes(e *echo.Echo, storage *postgres.Storage, authMiddleware echo.MiddlewareFunc) {
	g := e.Group("/api/projects", authMiddleware)

	g.GET("", GetProjects(storage))
	g.GET("/:id", GetProjectDetail(storage))
	g.POST("/:id/comments", CreateComment(storage))
}

// GetProjects godoc
// @Summary List projects
// @Description Admins get every project with the client name; clients get their own project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /projects [get]
func GetProjects(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := actorFromContext(c)

		if actor.Role == domain.RoleAdmin {
			projects, err := storage.ListProjects(c.Request().Context())
			if err != nil {
				return writeError(c, err)
			}
			return c.JSON(http.StatusOK, map[string]interface{}{
				"view_mode": "admin_list",
				"projects":  projects,
			})
		}

		project, err := storage.GetProjectForUser(c.Request().Context(), actor.UserID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"view_mode": "project_detail",
			"project":   project,
		})
	}
}

// GetProjectDetail godoc
// @Summary Get project detail
// @Description Get a project with its comment thread
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} domain.ProjectDetail
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id} [get]
func GetProjectDetail(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid project id"})
		}

		actor := actorFromContext(c)

		project, err := storage.GetProjectByID(c.Request().Context(), id)
		if err != nil {
			return writeError(c, err)
		}

		// Clients only see their own project.
		if actor.Role != domain.RoleAdmin && project.UserID != actor.UserID {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}

		comments, err := storage.ListProjectComments(c.Request().Context(), project.ID)
		if err != nil {
			return writeError(c, err)
		}
		for i := range comments {
			comments[i].IsMe = comments[i].UserID == actor.UserID
		}

		return c.JSON(http.StatusOK, domain.ProjectDetail{Project: *project, Comments: comments})
	}
}

// CreateComment godoc
// @Summary Add a project comment
// @Description Append a comment to a project's thread
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param comment body domain.CreateCommentRequest true "Comment"
// @Success 201 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/comments [post]
func CreateComment(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid project id"})
		}

		var req domain.CreateCommentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		req.Message = strings.TrimSpace(req.Message)
		if req.Message == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
		}

		actor := actorFromContext(c)

		project, err := storage.GetProjectByID(c.Request().Context(), id)
		if err != nil {
			return writeError(c, err)
		}
		if actor.Role != domain.RoleAdmin && project.UserID != actor.UserID {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}

		if err := storage.CreateProjectComment(c.Request().Context(), project.ID, actor.UserID, req.Message); err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusCreated, map[string]bool{"success": true})
	}
}
