// bizpulse/internal/routes/api_routes.go
package routes

import (
	"github.com/Bhavinahir07/bizpulse/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes registers every authenticated API route.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		customers := apiGroup.Group("/customers")
		{
			customers.GET("", handlers.ListCustomersHandler)
			customers.POST("", handlers.CreateCustomerHandler)
			customers.GET("/:id", handlers.GetCustomerHandler)
			customers.PUT("/:id", handlers.UpdateCustomerHandler)
			customers.DELETE("/:id", handlers.DeleteCustomerHandler)
		}

		deals := apiGroup.Group("/deals")
		{
			deals.GET("", handlers.ListDealsHandler)
			deals.POST("", handlers.CreateDealHandler)
			deals.GET("/export", handlers.ExportDealsHandler)
			deals.GET("/:id", handlers.GetDealHandler)
			deals.PUT("/:id", handlers.UpdateDealHandler)
			deals.DELETE("/:id", handlers.DeleteDealHandler)
			deals.POST("/:id/send_reminder", handlers.SendReminderHandler)
		}

		dashboard := apiGroup.Group("/dashboard")
		{
			dashboard.GET("", handlers.GetDashboardHandler)
			dashboard.GET("/export", handlers.ExportDashboardHandler)
		}

		profile := apiGroup.Group("/profile")
		{
			profile.GET("", handlers.GetProfileHandler)
			profile.PUT("", handlers.UpdateProfileHandler)
		}

		user := apiGroup.Group("/user")
		{
			user.GET("/profile", handlers.GetUserProfileHandler)
			user.PUT("/profile", handlers.UpdateUserProfileHandler)
		}
	}
}
