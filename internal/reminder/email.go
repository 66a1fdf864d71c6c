package reminder

import (
	"errors"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the outgoing mail settings.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// SMTPMailer sends reminder emails over SMTP with STARTTLS.
type SMTPMailer struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(config SMTPConfig) (*SMTPMailer, error) {
	if config.User == "" || config.Pass == "" {
		return nil, errors.New("SMTP credentials are required")
	}
	if config.From == "" {
		config.From = config.User
	}

	return &SMTPMailer{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Pass),
	}, nil
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}

// LogMailer stands in when no SMTP credentials are configured; reminders
// still fire local notifications.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	return nil
}
