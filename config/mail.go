// bizpulse/config/mail.go
package config

import (
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// MailSettings holds the SMTP credentials used for reminder and
// contact-form emails.
type MailSettings struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

var Mail MailSettings

func LoadMailSettings() {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}

	Mail = MailSettings{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USER"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
	}

	if Mail.From == "" {
		Mail.From = Mail.Username
	}
	if Mail.Host == "" {
		slog.Warn("SMTP_HOST is not set, outgoing email is disabled")
	}
}

// NewMailDialer returns a dialer for the configured SMTP server.
func NewMailDialer() *gomail.Dialer {
	return gomail.NewDialer(Mail.Host, Mail.Port, Mail.Username, Mail.Password)
}

// FrontendBaseURL is the public address of the React app, used to build
// client-facing links such as the secure payment page.
func FrontendBaseURL() string {
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		return url
	}
	return "http://localhost:3000"
}
