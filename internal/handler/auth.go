package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/repository/postgres"
	"github.com/awesner/wesner-corporate-site/internal/utils"
)

func SetupAuthRoutes(e *echo.Echo, storage *postgres.Storage, jwtSecret string, jwtExpiry time.Duration, authMiddleware echo.MiddlewareFunc) {
	e.POST("/api/auth/register", Register(storage, jwtSecret, jwtExpiry))
	e.POST("/api/auth/login", Login(storage, jwtSecret, jwtExpiry))

	e.GET("/api/users/me", GetCurrentUser(storage), authMiddleware)
}

// Register godoc
// @Summary Register a new account
// @Description Create a new client account and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.RegisterRequest true "Registration details"
// @Success 201 {object} domain.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/register [post]
func Register(storage *postgres.Storage, jwtSecret string, jwtExpiry time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.RegisterRequest

		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "username is required"})
		}

		if len(req.Password) < 6 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "password must be at least 6 characters long"})
		}

		if _, err := storage.GetUserByUsername(c.Request().Context(), req.Username); err == nil {
			return c.JSON(http.StatusConflict, map[string]string{"error": "username already taken"})
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to hash password"})
		}

		user, err := storage.CreateUser(c.Request().Context(), req.Username, string(hashedPassword), domain.RoleClient, req.Username)

		if err != nil {
			return c.JSON(http.StatusConflict, map[string]string{"error": "username already taken"})
		}

		token, err := utils.GenerateToken(jwtSecret, jwtExpiry, user.ID, user.Username, user.Role)

		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate token"})
		}

		return c.JSON(http.StatusCreated, domain.AuthResponse{Token: token, User: *user})
	}
}

// Login godoc
// @Summary Login
// @Description Authenticate and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Login credentials"
// @Success 200 {object} domain.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/login [post]
func Login(storage *postgres.Storage, jwtSecret string, jwtExpiry time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.LoginRequest

		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		user, err := storage.GetUserByUsername(c.Request().Context(), req.Username)

		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}

		err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))

		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}

		token, err := utils.GenerateToken(jwtSecret, jwtExpiry, user.ID, user.Username, user.Role)

		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate token"})
		}

		user.PasswordHash = ""

		return c.JSON(http.StatusOK, domain.AuthResponse{Token: token, User: *user})
	}
}

// GetCurrentUser godoc
// @Summary Get current user profile
// @Description Get the profile of the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/me [get]
func GetCurrentUser(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get("user_id").(int)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": utils.ErrValueConversion.Error()})
		}

		user, err := storage.GetUserByID(c.Request().Context(), userID)

		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, user)
	}
}
