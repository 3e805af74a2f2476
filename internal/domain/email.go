package domain

import "context"

// Mailer sends a single email. Implementations wrap a provider (SES) or are
// no-ops in development.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// WelcomeEmailData carries the fields rendered into the welcome email.
type WelcomeEmailData struct {
	Email string
	Name  string
}

// EmailService sends application emails. Failures are logged by callers and
// never fail the request that triggered them.
type EmailService interface {
	SendWelcome(ctx context.Context, data *WelcomeEmailData) error
}
