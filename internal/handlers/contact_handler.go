// bizpulse/internal/handlers/contact_handler.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Bhavinahir07/bizpulse/config"

	"github.com/gin-gonic/gin"
	"gopkg.in/gomail.v2"
)

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactFormHandler relays a homepage contact submission to the admin
// mailbox.
func ContactFormHandler(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required and the email must be valid."})
		return
	}

	if config.Mail.AdminEmail == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Contact form is not configured."})
		return
	}

	body := fmt.Sprintf(
		"New contact form submission received:\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n\n---\nThis message was sent from the BizPulse contact form.",
		strings.TrimSpace(input.Name), input.Email, strings.TrimSpace(input.Subject), strings.TrimSpace(input.Message))

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.Mail.From)
	msg.SetHeader("To", config.Mail.AdminEmail)
	msg.SetHeader("Reply-To", input.Email)
	msg.SetHeader("Subject", "New Contact Form Submission: "+strings.TrimSpace(input.Subject))
	msg.SetBody("text/plain", body)

	if err := config.NewMailDialer().DialAndSend(msg); err != nil {
		slog.Error("Failed to relay contact form", "from", input.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send message. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thank you for your message! We'll get back to you soon."})
}
