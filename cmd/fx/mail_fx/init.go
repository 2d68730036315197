package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"github.com/Aryan1591/TravelBuddy-Notification-Service/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}

	cfg := services.SMTPConfig{
		Host:       host,
		Port:       port, // 587 for STARTTLS; use 465 with UseSSL=true for SMTPS
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"), // use app password if 2FA is enabled
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "Travel Buddy",
		UseSSL:     port == 465,
		RequireTLS: true,
	}

	mailService, err := services.NewSMTPMailService(cfg)

	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}
