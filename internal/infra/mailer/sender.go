package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"volunteer-hub/internal/pkg/config"
	"volunteer-hub/internal/pkg/errs"
)

// Sender delivers a single email through a transactional mail provider.
type Sender interface {
	Send(ctx context.Context, to, toName, subject, body string) error
}

type HTTPSender struct {
	cfg    config.MailerConfig
	client *http.Client
}

func NewHTTPSender(cfg config.MailerConfig) *HTTPSender {
	return &HTTPSender{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

var _ Sender = (*HTTPSender)(nil)

type sendRequest struct {
	Sender  emailParty   `json:"sender"`
	To      []emailParty `json:"to"`
	Subject string       `json:"subject"`
	Text    string       `json:"textContent"`
}

type emailParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

func (s *HTTPSender) Send(ctx context.Context, to, toName, subject, body string) error {
	payload := sendRequest{
		Sender:  emailParty{Name: s.cfg.SenderName, Email: s.cfg.SenderEmail},
		To:      []emailParty{{Name: toName, Email: to}},
		Subject: s.cfg.SubjectPrefix + subject,
		Text:    body,
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode mail payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(buf))
	if err != nil {
		return errs.Wrap(err, "failed to build mail request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "mail request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.New(fmt.Sprintf("mail provider returned %d: %s", resp.StatusCode, string(detail)))
	}

	slog.Debug("email sent", "to", to, "subject", subject)
	return nil
}

// NopSender drops mail on the floor, used when no provider is configured.
type NopSender struct{}

func (NopSender) Send(_ context.Context, to, _, subject, _ string) error {
	slog.Info("mail delivery disabled, dropping email", "to", to, "subject", subject)
	return nil
}
