package mailer

import (
	"context"
	"log/slog"
)

// LogNotifier records the notification in the logs. It is used when no mail
// API is configured.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(_ context.Context, notification ContactNotification) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info(
		"contact notification",
		"subject", notification.Title(),
		"from", notification.Email,
		"body", notification.Body(),
	)

	return nil
}
