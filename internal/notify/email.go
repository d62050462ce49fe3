package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/wolfman30/ondo-handyman/pkg/logging"
)

// DevModeMessageID is the message id reported when nothing was actually sent.
const DevModeMessageID = "dev-mode"

// EmailSender defines the interface for sending emails.
// Implementations can be swapped (SendGrid, SES, stub) without changing callers.
type EmailSender interface {
	// Send delivers msg and returns the provider's message id.
	Send(ctx context.Context, msg EmailMessage) (string, error)
}

// EmailMessage represents an email to be sent. The sender address belongs
// to the EmailSender.
type EmailMessage struct {
	To      string
	ToName  string
	ReplyTo string
	Subject string
	Body    string // Plain text body
	HTML    string // Optional HTML body
}

// SendGridSender sends emails via SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *logging.Logger
}

// SendGridConfig holds configuration for SendGrid.
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
	// Host overrides the API host, e.g. https://api.eu.sendgrid.com for EU data residency.
	Host string
}

// NewSendGridSender creates a new SendGrid email sender. It returns nil
// without an API key.
func NewSendGridSender(cfg SendGridConfig, logger *logging.Logger) *SendGridSender {
	if cfg.APIKey == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.FromName == "" {
		cfg.FromName = DefaultFromName
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = DefaultFromEmail
	}

	client := sendgrid.NewSendClient(cfg.APIKey)
	if cfg.Host != "" {
		req := sendgrid.GetRequest(cfg.APIKey, "/v3/mail/send", cfg.Host)
		req.Method = "POST"
		client = &sendgrid.Client{Request: req}
	}

	return &SendGridSender{
		client:    client,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

// Send sends an email via SendGrid.
func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) (string, error) {
	if s == nil || s.client == nil {
		return "", fmt.Errorf("%w: sendgrid client missing", ErrSenderNotConfigured)
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	html := msg.HTML
	if html == "" {
		html = msg.Body
	}
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Body, html)
	if msg.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.logger.Error("sendgrid send failed", "error", err, "to", msg.To)
		return "", fmt.Errorf("notify: sendgrid send failed: %w", err)
	}

	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid returned error status", "status", response.StatusCode, "body", response.Body, "to", msg.To)
		return "", fmt.Errorf("notify: sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	var messageID string
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}

	s.logger.Info("email sent via sendgrid", "to", msg.To, "subject", msg.Subject, "status", response.StatusCode, "message_id", messageID)
	return messageID, nil
}

// StubEmailSender is a no-op sender for development or when email is disabled.
type StubEmailSender struct {
	logger *logging.Logger
}

// NewStubEmailSender creates a stub email sender that logs but doesn't send.
func NewStubEmailSender(logger *logging.Logger) *StubEmailSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubEmailSender{logger: logger}
}

// Send logs the email but doesn't actually send it.
func (s *StubEmailSender) Send(ctx context.Context, msg EmailMessage) (string, error) {
	s.logger.Info("stub email sender: would send email",
		"to", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return DevModeMessageID, nil
}

var (
	_ EmailSender = (*SendGridSender)(nil)
	_ EmailSender = (*StubEmailSender)(nil)
)
