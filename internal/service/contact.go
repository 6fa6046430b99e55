package service

import (
	"context"
	"fmt"
	"regexp"

	"payfast-store-demo/internal/client"
	"payfast-store-demo/internal/dto"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) error
}

type contactServiceImpl struct {
	emailSender client.EmailSender
}

func NewContactService(emailSender client.EmailSender) ContactService {
	return &contactServiceImpl{emailSender: emailSender}
}

func (s *contactServiceImpl) Submit(_ context.Context, req *dto.ContactRequest) error {
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return fmt.Errorf("%w: all fields are required", ErrInvalidContact)
	}
	if !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("%w: please enter a valid email address", ErrInvalidContact)
	}

	body := fmt.Sprintf(`
		<h2>New Contact Form Submission</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Subject:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>
		<hr>
		<p><em>Sent from the store contact form</em></p>
	`, req.Name, req.Email, req.Subject, req.Message)

	subject := fmt.Sprintf("Contact Form: %s", req.Subject)
	if err := s.emailSender.Send(req.Name, req.Email, subject, body); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}

	return nil
}
