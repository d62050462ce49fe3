package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("ses-456")}, nil
}

func TestNewSESSender_NilWithoutClient(t *testing.T) {
	assert.Nil(t, NewSESSender(nil, SESConfig{}, nil))
}

func TestSESSender_Send(t *testing.T) {
	client := &fakeSES{}
	sender := NewSESSender(client, SESConfig{FromEmail: "hello@ondo-handyman.com"}, nil)
	require.NotNil(t, sender)

	id, err := sender.Send(context.Background(), EmailMessage{
		To:      "office@example.com",
		ReplyTo: "jordan@example.com",
		Subject: "New project inquiry from Jordan Smith",
		Body:    "plain",
		HTML:    "<p>html</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "ses-456", id)

	in := client.input
	require.NotNil(t, in)
	assert.Equal(t, "Ondo Handyman <hello@ondo-handyman.com>", aws.ToString(in.FromEmailAddress))
	assert.Equal(t, []string{"office@example.com"}, in.Destination.ToAddresses)
	assert.Equal(t, []string{"jordan@example.com"}, in.ReplyToAddresses)
	assert.Equal(t, "New project inquiry from Jordan Smith", aws.ToString(in.Content.Simple.Subject.Data))
	assert.Equal(t, "plain", aws.ToString(in.Content.Simple.Body.Text.Data))
	assert.Equal(t, "<p>html</p>", aws.ToString(in.Content.Simple.Body.Html.Data))
}

func TestSESSender_Send_Error(t *testing.T) {
	sender := NewSESSender(&fakeSES{err: errors.New("MessageRejected: Email address is not verified")}, SESConfig{}, nil)

	_, err := sender.Send(context.Background(), EmailMessage{To: "office@example.com", Subject: "s", Body: "b"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "MessageRejected")
}

func TestSESSender_Send_NilReceiver(t *testing.T) {
	var sender *SESSender
	_, err := sender.Send(context.Background(), EmailMessage{})
	assert.ErrorIs(t, err, ErrSenderNotConfigured)
}

func TestSESSender_Send_TextOnlyOmitsHTMLPart(t *testing.T) {
	client := &fakeSES{}
	sender := NewSESSender(client, SESConfig{FromName: "Ondo Office", FromEmail: "office@ondo-handyman.com"}, nil)

	_, err := sender.Send(context.Background(), EmailMessage{To: "office@example.com", Subject: "s", Body: "b"})
	require.NoError(t, err)

	assert.Equal(t, "Ondo Office <office@ondo-handyman.com>", aws.ToString(client.input.FromEmailAddress))
	assert.Nil(t, client.input.Content.Simple.Body.Html)
	assert.Nil(t, client.input.ReplyToAddresses)
}
