package domain

// NotificationKind classifies a notification for the presentation layer.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyWarning NotificationKind = "warning"
	NotifyDanger  NotificationKind = "danger"
)

// Notifier receives one human-readable notification per successful
// mutation, never on pure reads. Notify is fire-and-forget; the caller
// never inspects a result.
type Notifier interface {
	Notify(kind NotificationKind, title, message string)
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}
