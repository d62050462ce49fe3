package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSendGridSender_NilWithoutAPIKey(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "",
		FromEmail: "test@example.com",
	}, nil)

	if sender != nil {
		t.Error("expected nil sender when API key is empty")
	}
}

func TestNewSendGridSender_Defaults(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{APIKey: "test-key"}, nil)

	require.NotNil(t, sender)
	assert.Equal(t, DefaultFromName, sender.fromName)
	assert.Equal(t, DefaultFromEmail, sender.fromEmail)
}

func TestNewSendGridSender_CustomFromName(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "test-key",
		FromEmail: "office@example.com",
		FromName:  "Custom Name",
	}, nil)

	require.NotNil(t, sender)
	assert.Equal(t, "Custom Name", sender.fromName)
	assert.Equal(t, "office@example.com", sender.fromEmail)
}

func TestSendGridSender_Send_NilClient(t *testing.T) {
	sender := &SendGridSender{client: nil}

	_, err := sender.Send(context.Background(), EmailMessage{
		To:      "recipient@example.com",
		Subject: "Test",
		Body:    "Test body",
	})

	assert.ErrorIs(t, err, ErrSenderNotConfigured)
}

type sendGridPayload struct {
	From struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"from"`
	ReplyTo struct {
		Email string `json:"email"`
	} `json:"reply_to"`
	Subject          string `json:"subject"`
	Personalizations []struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	} `json:"personalizations"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func TestSendGridSender_Send_Accepted(t *testing.T) {
	var got sendGridPayload
	var auth, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("X-Message-Id", "sg-123")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "sg-key",
		FromEmail: "hello@ondo-handyman.com",
		Host:      srv.URL,
	}, nil)
	require.NotNil(t, sender)

	id, err := sender.Send(context.Background(), EmailMessage{
		To:      "office@example.com",
		ReplyTo: "jordan@example.com",
		Subject: "New project inquiry from Jordan Smith",
		Body:    "Name: Jordan Smith",
		HTML:    "<p>Jordan Smith</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "sg-123", id)
	assert.Equal(t, "Bearer sg-key", auth)
	assert.Equal(t, "/v3/mail/send", path)
	assert.Equal(t, "hello@ondo-handyman.com", got.From.Email)
	assert.Equal(t, DefaultFromName, got.From.Name)
	assert.Equal(t, "jordan@example.com", got.ReplyTo.Email)
	assert.Equal(t, "New project inquiry from Jordan Smith", got.Subject)
	require.Len(t, got.Personalizations, 1)
	require.Len(t, got.Personalizations[0].To, 1)
	assert.Equal(t, "office@example.com", got.Personalizations[0].To[0].Email)
	require.Len(t, got.Content, 2)
	assert.Equal(t, "text/plain", got.Content[0].Type)
	assert.Equal(t, "text/html", got.Content[1].Type)
}

func TestSendGridSender_Send_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors":[{"message":"The from address does not match a verified Sender Identity"}]}`))
	}))
	defer srv.Close()

	sender := NewSendGridSender(SendGridConfig{APIKey: "sg-key", Host: srv.URL}, nil)

	_, err := sender.Send(context.Background(), EmailMessage{To: "office@example.com", Subject: "x", Body: "y"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "verified Sender Identity")
}

func TestStubEmailSender_Send(t *testing.T) {
	sender := NewStubEmailSender(nil)

	id, err := sender.Send(context.Background(), EmailMessage{
		To:      "recipient@example.com",
		Subject: "Test Subject",
		Body:    "Test body",
	})

	require.NoError(t, err)
	assert.Equal(t, DevModeMessageID, id)
}
