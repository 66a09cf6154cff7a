package api

import (
	"github.com/gin-gonic/gin"

	"github.com/GbrlSouza/API-Times-Brasileiros/internal/metrics"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, m *metrics.Metrics) {
	router.GET("/", handler.Root)
	router.GET("/openapi.json", handler.OpenAPI)

	router.GET("/health", handler.Health)
	router.HEAD("/health", handler.HeadHealth)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	clubs := router.Group("/clubs")
	{
		clubs.GET("", handler.ListClubs)
		clubs.GET("/:slug", handler.GetClub)
	}

	views := router.Group("/views")
	{
		views.GET("/grid", handler.Grid)
		views.GET("/timeline", handler.Timeline)
		views.GET("/states/:uf", handler.ByState)
	}
}
