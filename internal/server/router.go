package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/medcalc/backend/internal/handlers"
)

// RouterConfig wires the handlers into the router
type RouterConfig struct {
	AllowedOrigins     []string
	HealthHandler      *handlers.HealthCheckHandler
	CalculationHandler *handlers.CalculationHandler
	UserHandler        *handlers.UserHandler
	MetricsHandler     *handlers.MetricsHandler
	ActivitiesHandler  *handlers.ActivitiesHandler
}

// NewRouter builds the gin engine with CORS and all routes
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/calculations/imt", cfg.CalculationHandler.SubmitBMI)
		api.POST("/calculations/calories", cfg.CalculationHandler.SubmitCalories)
		api.POST("/calculations/blood-pressure", cfg.CalculationHandler.SubmitBloodPressure)
		api.GET("/calculations/history", cfg.CalculationHandler.GetHistory)
		api.GET("/calculations/stats", cfg.CalculationHandler.GetStats)
		api.PUT("/calculations/:id/interpretation", cfg.CalculationHandler.UpdateInterpretation)
		api.DELETE("/calculations/:id", cfg.CalculationHandler.DeleteCalculation)
		api.DELETE("/calculations", cfg.CalculationHandler.DeleteAll)

		api.GET("/users/:user_id", cfg.UserHandler.GetUser)
		api.PUT("/users/:user_id", cfg.UserHandler.UpdateUser)
		api.DELETE("/users/:user_id", cfg.UserHandler.DeleteUser)

		api.POST("/metrics", cfg.MetricsHandler.AddMetric)
		api.GET("/metrics", cfg.MetricsHandler.GetMetrics)
		api.DELETE("/metrics/:id", cfg.MetricsHandler.DeleteMetric)

		api.GET("/activities", cfg.ActivitiesHandler.GetActivities)
	}

	return router
}
