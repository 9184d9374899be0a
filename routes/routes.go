package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/controllers"
	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/middlewares"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Food     *controllers.FoodController
	Meal     *controllers.MealController
	Goal     *controllers.GoalController
	Feedback *controllers.FeedbackController
	Realtime *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers, jwtSecret []byte) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/forgot-password", ctrl.Auth.ForgotPassword)
		auth.POST("/reset-password", ctrl.Auth.ResetPassword)
	}

	authed := middlewares.AuthMiddleware(jwtSecret)

	user := r.Group("/user")
	user.Use(authed)
	{
		user.GET("/profile", ctrl.User.GetProfile)
		user.PUT("/profile", ctrl.User.UpdateProfile)
	}

	food := r.Group("/food")
	food.Use(authed)
	{
		food.GET("/search", ctrl.Food.Search)
		food.POST("/custom", ctrl.Food.CreateCustom)
		food.PUT("/custom/:id", ctrl.Food.UpdateCustom)
	}

	meals := r.Group("/meals")
	meals.Use(authed)
	{
		meals.POST("", ctrl.Meal.LogMeal)
		meals.GET("", ctrl.Meal.ListByDay)
		meals.PATCH("/:id", ctrl.Meal.UpdateEntry)
		meals.DELETE("/:id", ctrl.Meal.DeleteEntry)
	}

	summary := r.Group("/summary")
	summary.Use(authed)
	{
		summary.GET("/daily", ctrl.Meal.DailySummary)
		summary.GET("/weekly", ctrl.Meal.WeeklySummary)
	}

	goals := r.Group("/goals")
	goals.Use(authed)
	{
		goals.GET("", ctrl.Goal.GetGoals)
		goals.PUT("", ctrl.Goal.SetGoals)
	}

	feedback := r.Group("/feedback")
	feedback.Use(authed)
	{
		feedback.POST("", ctrl.Feedback.Submit)
	}

	ws := r.Group("/ws")
	ws.Use(authed)
	{
		ws.GET("/summary", ctrl.Realtime.SummaryWS)
	}

	return r
}
