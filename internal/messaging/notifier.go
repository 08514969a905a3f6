package messaging

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"lifetracker/internal/models"
	"lifetracker/internal/structures"
)

// Option is one inline response choice attached to a notification
// (the five mood scores, for example).
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Notification is one outbound message. The transport renders Text for
// delivery; TemplateKey and Params travel along for clients that do
// their own rendering.
type Notification struct {
	RecipientID string            `json:"recipient_id"`
	TemplateKey string            `json:"template_key"`
	Params      map[string]string `json:"params,omitempty"`
	Language    string            `json:"language"`
	Text        string            `json:"text"`
	Options     []Option          `json:"options,omitempty"`
}

// NotifierInterface is the delivery capability injected into every job.
// Implementations must treat per-recipient failures as errors to be
// returned, never panics; callers log and continue.
type NotifierInterface interface {
	Send(ctx context.Context, n Notification) error
}

// MoodOptions returns the five score choices attached to a mood prompt.
func MoodOptions() []Option {
	opts := make([]Option, 0, models.MoodScoreMax)
	for score := models.MoodScoreMin; score <= models.MoodScoreMax; score++ {
		opts = append(opts, Option{
			Value: fmt.Sprintf("mood_%d", score),
			Label: models.MoodEmoji(score),
		})
	}
	return opts
}

// WebhookNotifier POSTs rendered notifications to the configured
// delivery endpoint (the bot gateway).
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewNotifier(conf *structures.Config) NotifierInterface {
	if conf.Notifier.URL == "" {
		return &noopNotifier{}
	}
	timeout := conf.Notifier.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookNotifier{
		url:    conf.Notifier.URL,
		client: &http.Client{Timeout: timeout},
	}
}

func (w *WebhookNotifier) Send(ctx context.Context, n Notification) error {
	if n.Text == "" {
		n.Text = Render(n.Language, n.TemplateKey, n.Params)
	}
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver to %s: %w", n.RecipientID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("deliver to %s: unexpected status %d", n.RecipientID, resp.StatusCode)
	}
	return nil
}

// noopNotifier swallows sends when no delivery URL is configured.
type noopNotifier struct{}

func (n *noopNotifier) Send(_ context.Context, _ Notification) error { return nil }
