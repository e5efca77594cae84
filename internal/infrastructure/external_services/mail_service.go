package external_services

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"counselconnect/internal/domain/contract"
)

// EmailService delivers HTML mail over authenticated SMTP.
type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// EmailService factory
func NewEmailService(host string, port int, username, appPassword, from string) *EmailService {
	return &EmailService{
		dialer: gomail.NewDialer(host, port, username, appPassword),
		from:   from,
	}
}

// make sure EmailService implements contract.IEmailService
var _ contract.IEmailService = (*EmailService)(nil)

func (es *EmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", es.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	done := make(chan error, 1)
	go func() { done <- es.dialer.DialAndSend(m) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email via SMTP: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
