package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Matias-sh/mi-portafolio/metal/env"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

// ResendNotifier posts the notification to a Resend-compatible e-mail API.
type ResendNotifier struct {
	url    string
	apiKey string
	from   string
	to     string
	client *portal.Client
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

func NewResendNotifier(mail env.MailEnvironment, client *portal.Client) (*ResendNotifier, error) {
	if !mail.IsConfigured() {
		return nil, errors.New("mail api key is not configured")
	}

	if client == nil {
		client = portal.NewDefaultClient(nil)
	}

	apiKey := mail.ApiKey
	client.OnHeaders = func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	return &ResendNotifier{
		url:    mail.ApiURL,
		apiKey: apiKey,
		from:   mail.From,
		to:     mail.To,
		client: client,
	}, nil
}

func (n *ResendNotifier) Notify(ctx context.Context, notification ContactNotification) error {
	payload := resendPayload{
		From:    n.from,
		To:      []string{n.to},
		ReplyTo: notification.Email,
		Subject: notification.Title(),
		Text:    notification.Body(),
	}

	if _, err := n.client.PostJSON(ctx, n.url, payload); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}

	return nil
}
