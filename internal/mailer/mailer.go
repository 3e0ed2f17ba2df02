package mailer

import (
	"context"
	"fmt"

	ses "github.com/sourcegraph/go-ses"
)

// Message is a single outbound email with both a plain-text and an
// HTML body.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Transport abstracts the external mail delivery service. The Amazon
// SES implementation below can be swapped for a fake in tests.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// SESTransport delivers mail through Amazon SES.
type SESTransport struct {
	cfg ses.Config
}

// NewSESTransport creates a Transport using explicit SES credentials.
// endpoint may be empty to use the default SES endpoint.
func NewSESTransport(endpoint, accessKeyID, secretAccessKey string) *SESTransport {
	if endpoint == "" {
		endpoint = "https://email.us-east-1.amazonaws.com"
	}
	return &SESTransport{cfg: ses.Config{
		Endpoint:        endpoint,
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
	}}
}

var _ Transport = (*SESTransport)(nil)

// Send delivers one message. SES does not take a context; cancellation
// falls back to the transport's own HTTP timeout.
func (t *SESTransport) Send(_ context.Context, msg Message) error {
	if _, err := t.cfg.SendEmailHTML(msg.From, msg.To, msg.Subject, msg.Text, msg.HTML); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", msg.To, err)
	}
	return nil
}
