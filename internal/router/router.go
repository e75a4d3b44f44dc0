package router

import (
	"github.com/gin-gonic/gin"

	"datasieve/internal/config"
	"datasieve/internal/handler"
	"datasieve/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	validationH *handler.ValidationHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	v1.POST("/validate", validationH.Validate)
	v1.GET("/validations/:id", validationH.GetRun)
	v1.GET("/validations/:id/report", validationH.ExportReport)
	v1.GET("/schemas", validationH.ListSchemas)

	return r
}
