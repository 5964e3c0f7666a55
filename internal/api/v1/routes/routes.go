package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zpeteman/content-repurposer/internal/api/v1/handlers"
)

// Handlers bundles the v1 route handlers.
type Handlers struct {
	Generation *handlers.GenerationHandler
	Runs       *handlers.RunsHandler
}

// RegisterRoutes wires the v1 endpoints onto the group.
func RegisterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	generations := v1.Group("/generations")
	{
		generations.POST("", h.Generation.Create)
	}

	runs := v1.Group("/runs")
	{
		runs.GET("/recent", h.Runs.Recent)
	}
}
