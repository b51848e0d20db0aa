package models

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"globalmart/config"
)

// EmailService sends best-effort notification mail. It is nil when SMTP
// is not configured and callers must skip it in that case.
type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig

	if cfg == nil || cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	return &EmailService{dialer: dialer, from: cfg.SMTPFrom}, nil
}

func (s *EmailService) SendInquiryNotification(toEmail, siteName string, inquiry *Inquiry) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New inquiry from %s - %s", inquiry.Name, siteName))

	company := ""
	if inquiry.Company != nil {
		company = *inquiry.Company
	}

	body := fmt.Sprintf(`
<html>
<body>
    <h2>New buyer inquiry</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Company:</strong> %s</p>
    <p><strong>Message:</strong></p>
    <p>%s</p>
    <p>Log in to the admin console to respond.</p>
</body>
</html>`, html.EscapeString(inquiry.Name), html.EscapeString(inquiry.Email),
		html.EscapeString(company), html.EscapeString(inquiry.Message))

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
