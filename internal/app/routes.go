package app

import (
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/middleware"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/modules/auth"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/modules/health"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/modules/movie"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() {
	r := a.router
	authMW := middleware.Auth(a.issuer, a.logger)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api")

	health.RegisterRoutes(api, a.db)

	authSvc := auth.NewService(a.db, a.issuer)
	auth.NewHandler(authSvc, a.logger, !a.cfg.IsDev()).RegisterRoutes(api, authMW)

	movieSvc := movie.NewService(a.db)
	movie.NewHandler(movieSvc, a.logger).RegisterRoutes(api, authMW)
}
