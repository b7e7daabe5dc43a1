// bizpulse/internal/handlers/customer_handler.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/Bhavinahir07/bizpulse/config"
	"github.com/Bhavinahir07/bizpulse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
}

// ListCustomersHandler returns the owner's customers, paginated unless
// all=true is passed (the deal form needs the full list for its
// dropdown).
func ListCustomersHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	query := config.DB.Where("owner_id = ?", ownerID).Order("created_at desc")
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone_number LIKE ?", pattern, pattern, pattern)
	}

	var customers []models.Customer
	if c.Query("all") == "true" {
		if err := query.Find(&customers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch customers"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": customers})
		return
	}

	var totalRows int64
	query.Model(&models.Customer{}).Count(&totalRows)
	if err := query.Scopes(Paginate(c)).Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch customers"})
		return
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, customers, totalRows))
}

// CreateCustomerHandler creates a customer. At least one contact field
// is required, otherwise reminders could never reach them.
func CreateCustomerHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name is required"})
		return
	}
	if input.Email == "" && strings.TrimSpace(input.PhoneNumber) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide an email address or a phone number"})
		return
	}

	customer := models.Customer{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(input.Name),
		Email:       input.Email,
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create customer"})
		return
	}

	InvalidateDashboardCache(ownerID)
	c.JSON(http.StatusCreated, customer)
}

// GetCustomerHandler returns one customer. Customers of other owners
// are reported as not found, never as forbidden.
func GetCustomerHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	var customer models.Customer
	err := config.DB.Where("owner_id = ?", ownerID).First(&customer, c.Param("id")).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func UpdateCustomerHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Email == "" && strings.TrimSpace(input.PhoneNumber) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide an email address or a phone number"})
		return
	}

	var customer models.Customer
	err := config.DB.Where("owner_id = ?", ownerID).First(&customer, c.Param("id")).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	customer.Name = strings.TrimSpace(input.Name)
	customer.Email = input.Email
	customer.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	if err := config.DB.Save(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update customer"})
		return
	}

	InvalidateDashboardCache(ownerID)
	c.JSON(http.StatusOK, customer)
}

func DeleteCustomerHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	result := config.DB.Where("owner_id = ?", ownerID).Delete(&models.Customer{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete customer"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	InvalidateDashboardCache(ownerID)
	c.JSON(http.StatusOK, gin.H{"success": "Customer deleted"})
}
