package mailer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/katariya/portfolio/internal/config"
)

// ErrNotConfigured is returned when SMTP credentials or a recipient are missing.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Message is a contact form submission.
type Message struct {
	Name    string
	Email   string
	Message string
}

// Sender delivers contact form submissions.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// SMTPSender sends contact messages through an SMTP relay.
type SMTPSender struct {
	cfg  config.SMTP
	dial func(m *gomail.Message) error
}

// NewSMTPSender creates a sender for the given SMTP settings.
func NewSMTPSender(cfg config.SMTP) *SMTPSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return &SMTPSender{
		cfg:  cfg,
		dial: func(m *gomail.Message) error { return d.DialAndSend(m) },
	}
}

// Send composes and delivers m. The visitor's address goes in Reply-To so the
// relay account stays the sender.
func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if s.cfg.User == "" || s.cfg.Password == "" || s.cfg.To == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dial(Compose(s.cfg, m)); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}

	log.Printf("Contact email sent for %s", m.Email)
	return nil
}

// Compose builds the outgoing email for a contact submission.
func Compose(cfg config.SMTP, m Message) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.User)
	msg.SetHeader("To", cfg.To)
	msg.SetHeader("Reply-To", m.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Portfolio Contact: %s", m.Name))
	msg.SetBody("text/plain", Body(m))
	return msg
}

// Body is the plain-text body of a contact email.
func Body(m Message) string {
	return fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Message)
}
