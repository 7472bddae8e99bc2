package mailer

import (
	"errors"
	"fmt"
	"net/smtp"

	"fintrack-backend/pkg/config"
)

// Sender delivers a plain-text message to a single recipient.
type Sender interface {
	Send(to, subject, message string) error
}

// SMTPSender sends mail through a plain SMTP relay.
type SMTPSender struct {
	host string
	port string
	user string
	pass string
	from string
	name string
}

// NewSMTPSender builds an SMTPSender from the application config.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.FromEmail,
		name: cfg.FromName,
	}
}

// Send delivers a plain-text email. Returns an error when SMTP is not
// configured or the relay rejects the message.
func (s *SMTPSender) Send(to, subject, message string) error {
	if s.host == "" || s.port == "" {
		return errors.New("mailer: smtp not configured")
	}

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n",
		s.name, s.from, to, subject, message)

	addr := s.host + ":" + s.port
	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.pass, s.host)
	}
	return smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg))
}
