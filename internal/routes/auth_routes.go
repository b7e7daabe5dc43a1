// bizpulse/internal/routes/auth_routes.go
package routes

import (
	"github.com/Bhavinahir07/bizpulse/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public authentication routes. These
// do not pass through the token middleware.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/api/register", handlers.RegisterHandler)
	r.POST("/api/login", handlers.LoginHandler)
	r.GET("/api/logout", handlers.LogoutHandler)
}
