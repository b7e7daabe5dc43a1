// bizpulse/internal/handlers/client_handler.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/Bhavinahir07/bizpulse/config"
	"github.com/Bhavinahir07/bizpulse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Public endpoints for the client payment journey. The deal UUID in the
// URL is the only credential; there is no client login.

type VerifyInput struct {
	FullName string `json:"fullName" binding:"required"`
}

// VerifyClientHandler checks the submitted name against the customer on
// the deal before the payment page is shown. Comparison ignores case
// and surrounding whitespace.
func VerifyClientHandler(c *gin.Context) {
	var input VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var deal models.Deal
	err := config.DB.Preload("Customer").Where("id = ?", c.Param("dealId")).First(&deal).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Invalid invoice link."})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}

	if deal.Customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Invalid invoice link."})
		return
	}

	submitted := strings.TrimSpace(input.FullName)
	expected := strings.TrimSpace(deal.Customer.Name)
	if !strings.EqualFold(submitted, expected) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name does not match."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deal": deal})
}

// SimulatedPaymentHandler flips a pending deal to Paid. There is no
// real gateway behind this; the flow exists to exercise the full client
// journey end to end.
func SimulatedPaymentHandler(c *gin.Context) {
	var deal models.Deal
	err := config.DB.Preload("Customer").Where("id = ?", c.Param("dealId")).First(&deal).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Invalid invoice link."})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}

	if deal.Status == models.DealStatusPaid {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "This deal has already been paid."})
		return
	}

	deal.Status = models.DealStatusPaid
	if err := config.DB.Save(&deal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not record payment"})
		return
	}

	if deal.Customer != nil {
		InvalidateDashboardCache(deal.Customer.OwnerID)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment successful! Thank you."})
}
