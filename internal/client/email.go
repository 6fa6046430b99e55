package client

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"payfast-store-demo/internal/config"
)

// EmailSender is the outbound mail collaborator. Callers treat failures
// as non-fatal; nothing in the payment path blocks on delivery.
type EmailSender interface {
	Send(recipientName, recipientEmail, subject, htmlBody string) error
}

type smtpEmailSender struct {
	cfg    config.SMTP
	dialer *gomail.Dialer
}

func NewEmailSender(cfg config.SMTP) EmailSender {
	return &smtpEmailSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

func (s *smtpEmailSender) Send(recipientName, recipientEmail, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.User)
	m.SetHeader("To", s.cfg.OrderRecipient)
	m.SetHeader("Reply-To", m.FormatAddress(recipientEmail, recipientName))
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
