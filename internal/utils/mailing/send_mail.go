package mailing

import (
	"fmt"
	"recipe-app/internal/utils"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// Mailer sends transactional email.
type Mailer interface {
	SendMail(toEmail string, subject string, body string) error
	AppURL() string
}

type smtpMailer struct {
	cfg MailConfig
}

func NewMailer(cfg MailConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) AppURL() string {
	return m.cfg.AppURL
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	from := m.cfg.SMTPEmail
	if m.cfg.SMTPSender != "" {
		from = mailer.FormatAddress(m.cfg.SMTPEmail, m.cfg.SMTPSender)
	}
	mailer.SetHeader("From", from)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(m.cfg.SMTPPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP port %q: %w", m.cfg.SMTPPort, err)
	}
	dialer := gomail.NewDialer(
		m.cfg.SMTPHost,
		port,
		m.cfg.SMTPEmail,
		m.cfg.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

func PasswordResetBody(link string) string {
	return fmt.Sprintf(
		"<p>We received a request to reset your Recipe App password.</p>"+
			"<p><a href=\"%s\">Reset your password</a></p>"+
			"<p>The link expires in 15 minutes. If you did not ask for this, ignore this email.</p>",
		link,
	)
}
