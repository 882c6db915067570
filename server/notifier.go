package server

import (
	"context"
	"log/slog"

	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/disgo/webhook"
)

func newNotifier(cfg NotificationsConfig) *Notifier {
	n := &Notifier{}
	if !cfg.Enabled || cfg.WebhookURL == "" {
		return n
	}

	client, err := webhook.NewWithURL(cfg.WebhookURL)
	if err != nil {
		slog.Error("Failed to create notification webhook client", slog.Any("err", err))
		return n
	}
	n.client = client

	return n
}

// Notifier posts operational messages to a Discord webhook. With
// notifications disabled it is a no-op.
type Notifier struct {
	client *webhook.Client
}

func (n *Notifier) Send(ctx context.Context, message string) {
	if n.client == nil {
		return
	}

	if _, err := n.client.CreateContent(message, rest.WithCtx(ctx)); err != nil {
		slog.ErrorContext(ctx, "Failed to send notification", slog.Any("err", err))
	}
}
