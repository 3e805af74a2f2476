package services

import (
	"context"
	"fmt"

	"eventboard/internal/domain"
)

type emailService struct {
	mailer domain.Mailer
}

// NewEmailService returns an EmailService that sends through the given Mailer.
func NewEmailService(mailer domain.Mailer) domain.EmailService {
	return &emailService{mailer: mailer}
}

// SendWelcome sends the post-registration welcome email.
func (s *emailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome email data is nil")
	}
	name := data.Name
	if name == "" {
		name = data.Email
	}
	subject := "Welcome to EventBoard"
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your EventBoard account is ready. Log in to browse and publish events.</p>", name)
	text := fmt.Sprintf("Hi %s,\n\nYour EventBoard account is ready. Log in to browse and publish events.\n", name)
	if err := s.mailer.Send(data.Email, subject, html, text); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	return nil
}
