// bizpulse/internal/routes/client_routes.go
package routes

import (
	"github.com/Bhavinahir07/bizpulse/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes registers the public client-journey routes: the
// verification and simulated-payment endpoints reached from reminder
// links, plus the homepage contact form. The deal UUID in the URL acts
// as the access token.
func RegisterClientRoutes(r *gin.Engine) {
	r.POST("/api/verify/:dealId", handlers.VerifyClientHandler)
	r.POST("/api/pay/:dealId", handlers.SimulatedPaymentHandler)
	r.POST("/api/contact", handlers.ContactFormHandler)
}
