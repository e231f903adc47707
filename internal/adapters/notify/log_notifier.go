package notify

import (
	"context"
	"log/slog"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
)

// LogNotifier writes rendered notifications to the log instead of delivering them.
// It stands in for the email and SMS providers until one is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

var _ portssvc.Notifier = (*LogNotifier)(nil)

func (n *LogNotifier) Send(ctx context.Context, msg domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.logger.Info("Notification",
		slog.String("channel", string(msg.Channel)),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body))
	return nil
}
