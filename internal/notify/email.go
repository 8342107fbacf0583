// Package notify sends operational email (contact-form copies, counseling
// updates). The sendgrid service is used when an API key is configured; the
// console service is the offline fallback.
package notify

import (
	"context"
	"log"
)

type EmailService interface {
	Send(ctx context.Context, to, subject, body string) error
}

type consoleService struct{}

// NewConsoleService logs messages instead of sending them.
func NewConsoleService() EmailService { return consoleService{} }

func (consoleService) Send(_ context.Context, to, subject, body string) error {
	log.Printf("email (console) to=%s subject=%q\n%s", to, subject, body)
	return nil
}
