package notify

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// Log writes messages to the request logger instead of sending them. The log
// line is the delivery channel, so it carries the action link; use it only
// for development and end-to-end runs.
type Log struct{}

func (Log) Notify(ctx context.Context, m Message) error {
	slogx.FromContext(ctx).Info("notification",
		slog.String("to", m.To),
		slog.String("subject", m.Subject),
		slog.String("action_url", m.ActionURL),
	)
	return nil
}
