package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/controllers"
	"github.com/srivallinalla12/calories-nutrition-tracker-app/middlewares"
)

type Controllers struct {
	Auth            *controllers.AuthController
	Meals           *controllers.MealController
	Catalog         *controllers.CatalogController
	Recommendations *controllers.RecommendationController
	Goals           *controllers.GoalController
	Analytics       *controllers.AnalyticsController
	Suggestions     *controllers.SuggestionController
}

func SetupRouter(jwtSecret string, ctl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		api.POST("/meals", ctl.Meals.LogMeal)
		api.GET("/meals", ctl.Meals.GetDay)
		api.PUT("/meals/:date/:index", ctl.Meals.UpdateMeal)
		api.DELETE("/meals/:date/:index", ctl.Meals.DeleteMeal)

		api.GET("/catalog", ctl.Catalog.List)
		api.GET("/catalog/search", ctl.Catalog.Search)

		api.GET("/recommendations", ctl.Recommendations.GetPlan)
		api.POST("/recommendations/calorie-plan", ctl.Recommendations.CaloriePlan)

		api.GET("/goal", ctl.Goals.GetGoal)
		api.PUT("/goal", ctl.Goals.SetGoal)
		api.GET("/goal/progress", ctl.Goals.Progress)

		api.GET("/analytics/summary", ctl.Analytics.Summary)
		api.GET("/analytics/trend", ctl.Analytics.Trend)

		api.POST("/assistant/chat", ctl.Suggestions.Chat)
	}

	return r
}
