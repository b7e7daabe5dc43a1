// bizpulse/internal/routes/router.go
package routes

import (
	"github.com/Bhavinahir07/bizpulse/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires up all application routes.
func SetupRoutes(r *gin.Engine) {
	// Public routes first: auth and the client payment journey.
	RegisterAuthRoutes(r)
	RegisterClientRoutes(r)

	// Everything else requires a valid token.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
