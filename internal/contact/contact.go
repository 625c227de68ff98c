// Package contact delivers contact form submissions to an external
// notification service. Delivery is fire-and-forget: one POST per
// submission, no retries; a failure surfaces as an inline form error
// and the visitor resubmits.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned by Send when no webhook URL is set.
var ErrNotConfigured = errors.New("contact: webhook not configured")

// Submission is one contact form entry.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Notifier posts submissions to the configured webhook.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

// NewNotifier creates a Notifier. An empty webhookURL yields a notifier
// whose Send always fails with ErrNotConfigured, so the form can render
// while delivery stays disabled.
func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether a webhook URL is set.
func (n *Notifier) Configured() bool { return n.webhookURL != "" }

// payload is the webhook request body. The reference id lets the
// receiving side and the server logs correlate a submission.
type payload struct {
	Reference string `json:"reference"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// Send delivers one submission and returns its reference id.
func (n *Notifier) Send(ctx context.Context, sub Submission) (string, error) {
	if n.webhookURL == "" {
		return "", ErrNotConfigured
	}

	ref := uuid.NewString()
	body, err := json.Marshal(payload{
		Reference: ref,
		Name:      sub.Name,
		Email:     sub.Email,
		Message:   sub.Message,
	})
	if err != nil {
		return "", fmt.Errorf("contact marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("contact http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("contact webhook error (status %d): %s", resp.StatusCode, string(respBody))
	}
	return ref, nil
}
