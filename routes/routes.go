package routes

import (
	"github.com/xiao1992/WellnessTracker/controllers"
	"github.com/xiao1992/WellnessTracker/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(), cors.Default())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected API routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)

		api.GET("/health-entries", controllers.ListHealthEntries)
		api.POST("/health-entries", controllers.SaveHealthEntry)
		api.GET("/health-entries/stats/summary", controllers.GetHealthStats)
		api.GET("/health-entries/:date", controllers.GetHealthEntry)
		api.PUT("/health-entries/:date", controllers.UpdateHealthEntry)
		api.DELETE("/health-entries/:date", controllers.DeleteHealthEntry)

		api.GET("/diary-entries", controllers.ListDiaryEntries)
		api.POST("/diary-entries", controllers.CreateDiaryEntry)
		api.GET("/diary-entries/:id", controllers.GetDiaryEntry)
		api.PUT("/diary-entries/:id", controllers.UpdateDiaryEntry)
		api.DELETE("/diary-entries/:id", controllers.DeleteDiaryEntry)
	}

	return r
}
