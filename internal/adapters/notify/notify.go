// Package notify provides notification sinks for the mutation service. The
// browser dashboard rendered these as toasts; headless deployments route
// them to the log or to the admin's inbox.
package notify

import (
	"fmt"
	"log/slog"

	"eventdesk/internal/domain"
)

// LogNotifier writes notifications to the application log. Default sink
// when no presentation layer is attached.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n *LogNotifier) Notify(kind domain.NotificationKind, title, message string) {
	if kind == domain.NotifySuccess {
		n.Logger.Info(title, "kind", kind, "detail", message)
		return
	}
	n.Logger.Warn(title, "kind", kind, "detail", message)
}

// EmailNotifier mails each notification to the admin address. Send failures
// are logged, never propagated; notifications are fire-and-forget.
type EmailNotifier struct {
	Mailer domain.Mailer
	To     string
	Logger *slog.Logger
}

func (n *EmailNotifier) Notify(kind domain.NotificationKind, title, message string) {
	subject := fmt.Sprintf("[eventdesk] %s", title)
	text := fmt.Sprintf("%s\n\nSeverity: %s\n", message, kind)
	if err := n.Mailer.Send(n.To, subject, "", text); err != nil {
		n.Logger.Error("send notification email", "title", title, "error", err)
	}
}

// NoopNotifier discards notifications.
type NoopNotifier struct{}

func (NoopNotifier) Notify(kind domain.NotificationKind, title, message string) {}

// FromConfig selects a notifier by provider name: "email", "noop", or
// anything else for the log notifier.
func FromConfig(provider string, mailer domain.Mailer, adminEmail string, logger *slog.Logger) domain.Notifier {
	switch provider {
	case "email":
		return &EmailNotifier{Mailer: mailer, To: adminEmail, Logger: logger}
	case "noop":
		return NoopNotifier{}
	default:
		return &LogNotifier{Logger: logger}
	}
}
