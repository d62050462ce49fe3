package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/wolfman30/ondo-handyman/pkg/logging"
)

// SESAPI is the subset of the SES v2 client used by SESSender.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESConfig holds the sender identity for AWS SES. The address must be
// verified in the SES account.
type SESConfig struct {
	FromEmail string
	FromName  string
}

// SESSender delivers lead notifications through AWS SES v2.
type SESSender struct {
	client SESAPI
	from   string
	logger *logging.Logger
}

// NewSESSender returns nil without a client.
func NewSESSender(client SESAPI, cfg SESConfig, logger *logging.Logger) *SESSender {
	if client == nil {
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
	return &SESSender{
		client: client,
		from:   fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail),
		logger: logger,
	}
}

// Send implements EmailSender.
func (s *SESSender) Send(ctx context.Context, msg EmailMessage) (string, error) {
	if s == nil || s.client == nil {
		return "", fmt.Errorf("%w: SES client missing", ErrSenderNotConfigured)
	}

	output, err := s.client.SendEmail(ctx, s.buildInput(msg))
	if err != nil {
		s.logger.Error("SES send failed", "error", err, "to", msg.To)
		return "", fmt.Errorf("notify: SES send failed: %w", err)
	}

	messageID := aws.ToString(output.MessageId)
	s.logger.Info("email sent via SES", "to", msg.To, "subject", msg.Subject, "message_id", messageID)
	return messageID, nil
}

func (s *SESSender) buildInput(msg EmailMessage) *sesv2.SendEmailInput {
	body := &types.Body{
		Text: utf8Content(msg.Body),
		Html: utf8Content(msg.HTML),
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{Subject: utf8Content(msg.Subject), Body: body},
		},
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}
	return input
}

// utf8Content returns nil for empty data so SES omits the part.
func utf8Content(data string) *types.Content {
	if data == "" {
		return nil
	}
	return &types.Content{Data: aws.String(data), Charset: aws.String("UTF-8")}
}

var _ EmailSender = (*SESSender)(nil)
