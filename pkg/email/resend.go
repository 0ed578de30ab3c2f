package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

// EmailService sends transactional email through Resend. With no API key
// configured every send is a no-op, so local setups work without an
// account.
type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(apiKey, from, fromName string, logger *zap.Logger) *EmailService {
	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	}
	return &EmailService{
		client:   client,
		from:     from,
		fromName: fromName,
		logger:   logger,
	}
}

func (s *EmailService) SendWelcomeEmail(to, name string) error {
	if s.client == nil {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.from),
		To:      []string{to},
		Subject: "Welcome to EventHub",
		Html: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your account is ready. Create an event or RSVP to one near you.</p>",
			name,
		),
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		s.logger.Warn("welcome email failed", zap.String("to", to), zap.Error(err))
		return err
	}
	return nil
}
