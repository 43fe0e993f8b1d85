package router

import (
	"context"

	"github.com/gin-gonic/gin"

	"replyflow.app/api/internal/http/handler"
	"replyflow.app/api/internal/http/middleware"
	"replyflow.app/api/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
	// Ready backs GET /ready; nil reports ready unconditionally.
	Ready func(ctx context.Context) error
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	health := handler.NewHealthHandler(cfg.Ready)
	router.GET("/health", health.Live)
	router.GET("/ready", health.Ready)

	authService := services.Auth()
	authHandler := handler.NewAuthHandler(authService, cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	v1 := router.Group("/api/v1", middleware.RequireAuth(authService, cfg.IsProduction))
	{
		automation := services.Automation()

		v1.GET("/dashboard", handler.NewDashboardHandler(automation).Get)
		v1.GET("/contract", handler.Contract)

		KeywordRouter(v1.Group("/keywords"), handler.NewKeywordHandler(automation))
		ConfigRouter(v1.Group("/config"), handler.NewConfigHandler(automation))
		ProfileRouter(v1.Group("/profile"), handler.NewProfileHandler(services.Profiles()))
	}
}
