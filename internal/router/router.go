package router

import (
	"github.com/gin-gonic/gin"

	"ftzops/internal/handler"
	"ftzops/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware. Method and
// auth constraints for the HTS surface are enforced per action inside the
// dispatcher, so the entry point accepts any method.
func Setup(htsH *handler.HTSHandler, healthH *handler.HealthHandler) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Action-dispatched HTS surface
	r.Any("/api/hts", htsH.Dispatch)

	return r
}
