package main

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/awesner/wesner-corporate-site/docs"

	"github.com/awesner/wesner-corporate-site/internal/assistant"
	"github.com/awesner/wesner-corporate-site/internal/config"
	"github.com/awesner/wesner-corporate-site/internal/handler"
	"github.com/awesner/wesner-corporate-site/internal/logger"
	"github.com/awesner/wesner-corporate-site/internal/mail"
	"github.com/awesner/wesner-corporate-site/internal/middleware"
	"github.com/awesner/wesner-corporate-site/internal/repository/postgres"
	"github.com/awesner/wesner-corporate-site/internal/service"
)

const appName = "Wesner Software"

type CustomValidator struct {
	validator *validator.Validate
}

func (customValidator *CustomValidator) Validate(i interface{}) error {
	if err := customValidator.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// @title Wesner Portal API
// @version 1.0
// @description API behind the Wesner Software website and customer portal

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api
// @schemes https http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.PATCH},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	storage, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", "err", err)
	}
	defer storage.Close()

	ctx := context.Background()
	if err := storage.InitSchema(ctx); err != nil {
		log.Fatal("failed to initialize schema", "err", err)
	}
	if !cfg.IsProd() {
		if err := seedDemo(ctx, storage); err != nil {
			log.Fatal("failed to seed demo data", "err", err)
		}
	}

	var assistantClient assistant.Client
	if cfg.AnthropicAPIKey != "" {
		assistantClient = assistant.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	} else {
		log.Warn("no assistant api key configured, chat runs in mock mode")
		assistantClient = assistant.NewMockClient()
	}

	var mailer mail.Mailer
	if cfg.SendgridAPIKey != "" {
		mailer = mail.NewSendgridMailer(cfg.SendgridAPIKey, appName, cfg.FromEmail)
	} else {
		log.Warn("no sendgrid key configured, mail goes to the log")
		mailer = mail.NewConsoleMailer(log)
	}

	catalog := service.NewCatalogService(storage, storage, storage, cfg.Location())
	chat := service.NewChatService(storage, assistantClient, cfg.DataDir, log)
	appointments := service.NewAppointmentService(storage, mailer, cfg.NotifyEmail, log)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authMiddleware := middleware.JWTAuth(cfg.JWTSecret)
	adminMiddleware := middleware.RequireAdmin()

	handler.SetupCourseRoutes(e, catalog, authMiddleware, adminMiddleware)
	handler.SetupSessionRoutes(e, catalog, authMiddleware, adminMiddleware)
	handler.SetupAuthRoutes(e, storage, cfg.JWTSecret, cfg.JWTExpiry, authMiddleware)
	handler.SetupProjectRoutes(e, storage, authMiddleware)
	handler.SetupChatRoutes(e, chat)
	handler.SetupAppointmentRoutes(e, appointments)

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

func seedDemo(ctx context.Context, storage *postgres.Storage) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	clientHash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return storage.SeedDemo(ctx, string(adminHash), string(clientHash))
}
