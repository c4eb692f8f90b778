package router

import (
	"github.com/gin-gonic/gin"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/handler"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	corsOrigins []string,
	analysisH *handler.AnalysisHandler,
	simulationH *handler.SimulationHandler,
	drillH *handler.DrillHandler,
	extractH *handler.ExtractHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// One-shot case analyses
	v1.POST("/analyses", analysisH.Analyze)

	// Case file text extraction
	v1.POST("/extractions", extractH.Extract)

	// Witness examination sessions
	simulations := v1.Group("/simulations")
	simulations.POST("", simulationH.Start)
	simulations.GET("/:id", simulationH.Get)
	simulations.POST("/:id/questions", simulationH.Ask)
	simulations.POST("/:id/feedback", simulationH.Feedback)
	simulations.GET("/:id/export", simulationH.Export)
	simulations.DELETE("/:id", simulationH.End)

	// Objection drill sessions
	drills := v1.Group("/drills")
	drills.POST("", drillH.Start)
	drills.GET("/:id", drillH.Get)
	drills.POST("/:id/questions", drillH.Draw)
	drills.POST("/:id/answers", drillH.Answer)
	drills.GET("/:id/export", drillH.Export)
	drills.DELETE("/:id", drillH.End)

	return r
}
