// File: internal/handler/http/router.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/overskilled/backend-movie-api/internal/handler/http/middleware"
	"github.com/overskilled/backend-movie-api/internal/service"
)

// RouterDeps carries everything the router needs to wire routes.
type RouterDeps struct {
	Auth    *AuthHandler
	Users   *UserHandler
	Catalog *CatalogHandler
	Guard   *service.AccessGuard
	Logger  *zap.Logger
}

// NewRouter builds the gin engine with the full middleware chain and all
// routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	router.Use(middleware.LoggingMiddleware(deps.Logger))
	router.Use(middleware.CorsMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireFull := RequireAuth(deps.Guard, service.AuthLevelFull, deps.Logger)
	requirePending := RequireAuth(deps.Guard, service.AuthLevelTwoFAPending, deps.Logger)

	users := router.Group("/users")
	{
		users.POST("/register", deps.Auth.Register)
		users.POST("/login/email", deps.Auth.LoginEmail)
		users.POST("/login/phone", deps.Auth.LoginPhone)
		users.POST("/2fa/generate", requireFull, deps.Auth.Generate2FA)
		users.POST("/2fa/verify", requirePending, deps.Auth.Verify2FA)
		users.POST("/logout", requireFull, deps.Auth.Logout)

		users.GET("", requireFull, deps.Users.List)
		users.GET("/:id", requireFull, deps.Users.Get)
		users.PUT("/:id", requireFull, deps.Users.Update)
		users.DELETE("/:id", requireFull, deps.Users.Delete)
	}

	if deps.Catalog != nil {
		movies := router.Group("/movies")
		{
			movies.GET("", deps.Catalog.List)
			movies.GET("/search", deps.Catalog.Search)
			movies.GET("/year/:year", deps.Catalog.ByYear)
			movies.GET("/top-rated", deps.Catalog.TopRated)
		}
	}

	return router
}
