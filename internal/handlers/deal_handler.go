// bizpulse/internal/handlers/deal_handler.go
package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Bhavinahir07/bizpulse/config"
	"github.com/Bhavinahir07/bizpulse/models"

	"github.com/gin-gonic/gin"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

type DealInput struct {
	CustomerID  uint    `json:"customerId" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	DueDate     string  `json:"dueDate" binding:"required"` // YYYY-MM-DD
	Status      string  `json:"status" binding:"omitempty,oneof=Pending Paid"`
}

// ownerDeals scopes a deal query to the authenticated owner through the
// customer relation, so one owner can never touch another's deals.
func ownerDeals(ownerID uint) *gorm.DB {
	return config.DB.
		Joins("JOIN customers ON customers.id = deals.customer_id").
		Where("customers.owner_id = ?", ownerID)
}

// ListDealsHandler returns the owner's deals with the customer embedded,
// optionally filtered by status or a search term.
func ListDealsHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	query := ownerDeals(ownerID).Model(&models.Deal{}).Preload("Customer").Order("deals.due_date asc")
	if status := c.Query("status"); status != "" {
		query = query.Where("deals.status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(deals.description) LIKE ? OR LOWER(customers.name) LIKE ?", pattern, pattern)
	}

	var deals []models.Deal
	if c.Query("all") == "true" {
		if err := query.Find(&deals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch deals"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": deals})
		return
	}

	var totalRows int64
	query.Count(&totalRows)
	if err := query.Scopes(Paginate(c)).Find(&deals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch deals"})
		return
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, deals, totalRows))
}

// CreateDealHandler creates a deal for one of the owner's customers.
// The due date must be today or later; overdue status is derived later,
// never written.
func CreateDealHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	var input DealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := time.ParseInLocation("2006-01-02", input.DueDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Due date must be in YYYY-MM-DD format"})
		return
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if dueDate.Before(today) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Due date cannot be in the past"})
		return
	}

	var customer models.Customer
	if err := config.DB.Where("owner_id = ?", ownerID).First(&customer, input.CustomerID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer not found"})
		return
	}

	deal := models.Deal{
		CustomerID:  customer.ID,
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		DueDate:     dueDate,
		Status:      models.DealStatusPending,
	}
	if err := config.DB.Create(&deal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create deal"})
		return
	}

	deal.Customer = &customer
	InvalidateDashboardCache(ownerID)
	c.JSON(http.StatusCreated, deal)
}

func GetDealHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	var deal models.Deal
	err := ownerDeals(ownerID).Preload("Customer").Where("deals.id = ?", c.Param("id")).First(&deal).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, deal)
}

// UpdateDealHandler edits description, amount, due date and status.
// Unlike creation, an existing due date may stay in the past; moving a
// date is only validated when it changes.
func UpdateDealHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	var input DealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var deal models.Deal
	err := ownerDeals(ownerID).Where("deals.id = ?", c.Param("id")).First(&deal).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	dueDate, err := time.ParseInLocation("2006-01-02", input.DueDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Due date must be in YYYY-MM-DD format"})
		return
	}
	if !dueDate.Equal(deal.DueDate) && dueDate.Before(time.Now().UTC().Truncate(24*time.Hour)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Due date cannot be in the past"})
		return
	}

	if input.CustomerID != 0 && input.CustomerID != deal.CustomerID {
		var customer models.Customer
		if err := config.DB.Where("owner_id = ?", ownerID).First(&customer, input.CustomerID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer not found"})
			return
		}
		deal.CustomerID = customer.ID
	}

	deal.Description = strings.TrimSpace(input.Description)
	deal.Amount = input.Amount
	deal.DueDate = dueDate
	if input.Status != "" {
		deal.Status = input.Status
	}
	if err := config.DB.Save(&deal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update deal"})
		return
	}

	InvalidateDashboardCache(ownerID)
	c.JSON(http.StatusOK, deal)
}

func DeleteDealHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	var deal models.Deal
	err := ownerDeals(ownerID).Where("deals.id = ?", c.Param("id")).First(&deal).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := config.DB.Delete(&deal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete deal"})
		return
	}

	InvalidateDashboardCache(ownerID)
	c.JSON(http.StatusOK, gin.H{"success": "Deal deleted"})
}

// SendReminderHandler emails the customer a payment reminder with the
// secure verification link and logs the attempt.
func SendReminderHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	var deal models.Deal
	err := ownerDeals(ownerID).Preload("Customer").Where("deals.id = ?", c.Param("id")).First(&deal).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if deal.Status == models.DealStatusPaid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This deal has already been paid."})
		return
	}
	if deal.Customer == nil || deal.Customer.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This customer does not have an email address saved."})
		return
	}

	verificationLink := fmt.Sprintf("%s/verify/%s/", config.FrontendBaseURL(), deal.ID)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.Mail.From)
	msg.SetHeader("To", deal.Customer.Email)
	msg.SetHeader("Subject", "Payment Reminder: "+deal.Description)
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s, your payment of ₹%.2f is due. Pay here: %s",
		deal.Customer.Name, deal.Amount, verificationLink))
	msg.AddAlternative("text/html", fmt.Sprintf(
		`<h3>Hi %s,</h3><p>This is a friendly reminder that your payment of <strong>₹%.2f</strong> is due.</p>`+
			`<p>Please use the secure link below to verify and complete your payment:</p>`+
			`<p><a href='%s' style='background-color:#4F46E5; color:white; padding:10px 20px; text-decoration:none; border-radius:5px;'><strong>Click Here to Pay</strong></a></p>`,
		deal.Customer.Name, deal.Amount, verificationLink))

	if err := config.NewMailDialer().DialAndSend(msg); err != nil {
		slog.Error("Failed to send reminder email", "deal_id", deal.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reminder email"})
		return
	}

	if err := config.DB.Create(&models.ReminderLog{DealID: deal.ID, Method: "Email"}).Error; err != nil {
		slog.Warn("Reminder sent but logging failed", "deal_id", deal.ID, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": "Reminder email sent successfully!", "link": verificationLink})
}

// ExportDealsHandler streams the owner's deals as a CSV archive.
func ExportDealsHandler(c *gin.Context) {
	ownerID, ok := profileID(c)
	if !ok {
		return
	}

	var deals []models.Deal
	if err := ownerDeals(ownerID).Preload("Customer").Order("deals.created_at desc").Find(&deals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deals from database"})
		return
	}
	if len(deals) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No deals found to export"})
		return
	}

	b := &bytes.Buffer{}
	b.Write([]byte{0xEF, 0xBB, 0xBF}) // BOM for UTF-8

	w := csv.NewWriter(b)
	headers := []string{"ID", "Created", "Customer", "Customer Email", "Description", "Amount", "Due Date", "Status"}
	if err := w.Write(headers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV header"})
		return
	}

	for _, d := range deals {
		customerName, customerEmail := "Unknown Customer", ""
		if d.Customer != nil {
			customerName = d.Customer.Name
			customerEmail = d.Customer.Email
		}
		record := []string{
			d.ID, d.CreatedAt.Format("2006-01-02 15:04:05"),
			customerName, customerEmail, d.Description,
			fmt.Sprintf("%.2f", d.Amount), d.DueDate.Format("2006-01-02"), d.Status,
		}
		if err := w.Write(record); err != nil {
			slog.Warn("Failed to write record to CSV", "deal_id", d.ID, "error", err)
			continue
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV data"})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename=deals_export.csv")
	c.Data(http.StatusOK, "text/csv", b.Bytes())
}
