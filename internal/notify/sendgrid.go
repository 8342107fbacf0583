package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridService struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

// NewSendgridService sends through the SendGrid v3 mail API.
func NewSendgridService(key, appName, fromEmail string) EmailService {
	return &sendgridService{
		client: sendgrid.NewSendClient(key),
		from:   sgmail.NewEmail(appName, fromEmail),
	}
}

func (s *sendgridService) Send(ctx context.Context, to, subject, body string) error {
	msg := sgmail.NewSingleEmail(s.from, subject, sgmail.NewEmail("", to), body, "")
	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid responded %d", resp.StatusCode)
	}
	return nil
}
