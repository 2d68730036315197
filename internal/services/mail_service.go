// services/mail_service.go
package services

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"

	dbm "github.com/Aryan1591/TravelBuddy-Notification-Service/internal/models/db_models"
)

type IMailService interface {
	SendTripReminder(to, user string, post *dbm.Post) error
}

// SMTPConfig holds your SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // e.g. 587 (STARTTLS) or 465 (SMTPS)
	Username   string // SMTP username / login
	Password   string // SMTP password / app password
	From       string // envelope from, e.g. "no-reply@yourapp.com"
	FromName   string // display name, e.g. "Travel Buddy"
	UseSSL     bool   // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool   // if true, fail if STARTTLS not available
}

type smtpMailService struct {
	cfg     SMTPConfig
	bodyTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	bodyTpl := template.Must(template.New("tripReminderHTML").Parse(tripReminderHTMLTemplate))

	return &smtpMailService{
		cfg:     cfg,
		bodyTpl: bodyTpl,
	}, nil
}

// ------------------- Public API -------------------

func (s *smtpMailService) SendTripReminder(to, user string, post *dbm.Post) error {
	subject := "New Travel Post Created: " + post.Title

	html, err := renderTripReminderBody(s.bodyTpl, user, post)
	if err != nil {
		return fmt.Errorf("render reminder body: %w", err)
	}

	pdfBytes, err := renderItineraryPDF(user, post)
	if err != nil {
		return fmt.Errorf("render itinerary pdf: %w", err)
	}

	return s.send(to, subject, html, pdfBytes)
}

// ------------------- Rendering -------------------

type reminderData struct {
	User      string
	Post      *dbm.Post
	Events    []timelineRow
	Safety    []string
	Trademark string
}

type timelineRow struct {
	Title   string
	Date    string
	Details string
}

// Fixed copy shared by the HTML body and the PDF attachment.
var safetyGuidelines = []string{
	"Always keep your valuables secure and avoid displaying them publicly.",
	"Be aware of your surroundings and avoid risky areas.",
	"Keep emergency contact numbers handy and know the local emergency services.",
	"Stay hydrated and take regular breaks during your travel.",
	"Follow local health guidelines and stay informed about any travel advisories.",
}

const trademarkNotice = "© 2024 Travel Buddy. All rights reserved. 'Travel Buddy' is a trademark of Travel Buddy Inc."

const tripReminderHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Travel Itinerary Notification</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
h1, h2, h3 { color: #333; }
p { margin: 5px 0; }
table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
th, td { padding: 8px; text-align: left; border: 1px solid #ddd; }
th { background-color: #f4f4f4; }
tr:nth-child(even) { background-color: #f9f9f9; }
.safety { margin-top: 20px; padding: 10px; border: 1px solid #ddd; background-color: #f9f9f9; }
.trademark { margin-top: 20px; font-size: 12px; color: #888; }
</style>
</head>
<body>
<div class="container">
<h1>Hello, {{.User}}!</h1>
<p>We are excited to inform you about your new travel itinerary. Here are the details:</p>
<h2>Travel Itinerary:</h2>
<table>
<tr><th>Field</th><th>Details</th></tr>
<tr><td><strong>Title</strong></td><td>{{.Post.Title}}</td></tr>
<tr><td><strong>Source</strong></td><td>{{.Post.Source}}</td></tr>
<tr><td><strong>Destination</strong></td><td>{{.Post.Destination}}</td></tr>
<tr><td><strong>Start Date</strong></td><td>{{.Post.StartDate}}</td></tr>
<tr><td><strong>End Date</strong></td><td>{{.Post.EndDate}}</td></tr>
<tr><td><strong>Days</strong></td><td>{{.Post.Days}}</td></tr>
<tr><td><strong>Nights</strong></td><td>{{.Post.Nights}}</td></tr>
<tr><td><strong>Amount</strong></td><td>{{.Post.Amount}}</td></tr>
<tr><td><strong>Admin Name</strong></td><td>{{.Post.AdminName}}</td></tr>
</table>
{{if .Events}}
<h2>Events Timeline:</h2>
<table>
<tr><th>Title</th><th>Date</th><th>Details</th></tr>
{{range .Events}}
<tr><td>{{.Title}}</td><td>{{.Date}}</td><td>{{.Details}}</td></tr>
{{end}}
</table>
{{end}}
<div class="safety">
<h2>Safety Rules and Precautions:</h2>
<ul>
{{range .Safety}}<li>{{.}}</li>
{{end}}</ul>
</div>
<p>Thank you for using Travel Buddy! We hope you have a great trip.</p>
</div>
<div class="trademark">
<p>{{.Trademark}}</p>
</div>
</body>
</html>`

func renderTripReminderBody(tpl *template.Template, user string, post *dbm.Post) (string, error) {
	rows := make([]timelineRow, 0, len(post.Events))
	for _, e := range post.Events {
		rows = append(rows, timelineRow{
			Title:   e.Title,
			Date:    e.Date,
			Details: strings.Join(e.Events, ", "),
		})
	}

	var buf bytes.Buffer
	err := tpl.Execute(&buf, reminderData{
		User:      user,
		Post:      post,
		Events:    rows,
		Safety:    safetyGuidelines,
		Trademark: trademarkNotice,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) send(to, subject, htmlBody string, pdfAttachment []byte) error {
	fromHeader := s.formatFromHeader()
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	// Headers
	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	write("\r\n")

	// HTML part
	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	// PDF attachment
	write("--%s\r\n", boundary)
	write("Content-Type: application/pdf; name=%q\r\n", "TravelItinerary.pdf")
	write("Content-Disposition: attachment; filename=%q\r\n", "TravelItinerary.pdf")
	write("Content-Transfer-Encoding: base64\r\n\r\n")
	write("%s\r\n\r\n", wrapBase64(base64.StdEncoding.EncodeToString(pdfAttachment)))

	// End
	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		if err = c.Auth(auth); err != nil {
			return err
		}
		return writeMessage(c, s.cfg.From, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	// Upgrade to TLS if supported
	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	if err = c.Auth(auth); err != nil {
		return err
	}
	return writeMessage(c, s.cfg.From, to, msg.Bytes())
}

func writeMessage(c *smtp.Client, from, to string, msg []byte) error {
	if err := c.Mail(from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

// wrapBase64 folds encoded attachment data to 76-character lines per MIME.
func wrapBase64(s string) string {
	const lineLen = 76
	var b strings.Builder
	for len(s) > lineLen {
		b.WriteString(s[:lineLen])
		b.WriteString("\r\n")
		s = s[lineLen:]
	}
	b.WriteString(s)
	return b.String()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	// Properly quoted display name
	return fmt.Sprintf("%s <%s>", mimeQuote(name), s.cfg.From)
}

// Basic RFC 2047 compliant encoding for non-ASCII display names.
func mimeQuote(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return fmt.Sprintf("=?UTF-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(s)))
		}
	}
	return s
}
