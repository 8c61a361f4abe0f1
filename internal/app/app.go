package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/config"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/database"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/middleware"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/token"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	issuer *token.Issuer
	logger *zap.Logger
}

// New initializes the application: config → DB → token issuer → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	issuer, err := token.NewIssuer(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	app := &App{cfg: cfg, router: router, db: db, issuer: issuer, logger: logger}
	app.registerRoutes()

	return app, nil
}

func corsConfig(cfg *config.AppConfig) cors.Config {
	out := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		origins := cfg.AllowedOrigins
		out.AllowOriginFunc = func(origin string) bool {
			return originAllowed(origins, origin)
		}
	} else {
		out.AllowOriginFunc = func(string) bool { return true }
	}
	return out
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }
