package routes

import (
	"github.com/andrewcsmith09/MacrosAndMore-sub000/controllers"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/verify", controllers.Verify)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/name", controllers.UpdateName)
		user.PUT("/goals", controllers.UpdateGoals)
		user.POST("/calculate-goals", controllers.CalculateGoals)
		user.POST("/preview-goals", controllers.PreviewGoals)
		user.DELETE("/", controllers.DeleteAccount)
	}

	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.GET("/", controllers.ListFoods)
		food.POST("/", controllers.CreateFood)
		food.GET("/:id", controllers.GetFood)
		food.PUT("/:id", controllers.UpdateFood)
		food.DELETE("/:id", controllers.DeleteFood)
	}

	recipes := r.Group("/recipes")
	recipes.Use(middlewares.AuthMiddleware())
	{
		recipes.GET("/", controllers.ListRecipes)
		recipes.POST("/", controllers.CreateRecipe)
		recipes.GET("/:id", controllers.GetRecipe)
		recipes.PUT("/:id", controllers.UpdateRecipe)
		recipes.DELETE("/:id", controllers.DeleteRecipe)
		recipes.POST("/:id/items", controllers.AddRecipeItem)
		recipes.DELETE("/:id/items/:itemId", controllers.RemoveRecipeItem)
		recipes.POST("/:id/recalculate", controllers.RecalculateRecipe)
	}

	foodlog := r.Group("/foodlog")
	foodlog.Use(middlewares.AuthMiddleware())
	{
		foodlog.GET("/", controllers.ListFoodLogs)
		foodlog.POST("/", controllers.LogFood)
		foodlog.POST("/water", controllers.LogWater)
		foodlog.GET("/totals", controllers.GetDailyTotals)
		foodlog.DELETE("/:id", controllers.DeleteFoodLog)
	}

	home := r.Group("/home")
	home.Use(middlewares.AuthMiddleware())
	{
		home.GET("/daily-check", controllers.DailyCheck)
	}

	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("/", controllers.RegisterDevice)
		devices.PUT("/notifications", controllers.ToggleNotifications)
	}

	alerts := r.Group("/alerts")
	alerts.Use(middlewares.AuthMiddleware())
	{
		alerts.GET("/", controllers.ListAlerts)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", controllers.AlertsWS)
	}

	return r
}
