package shell

import "log/slog"

// Notifier stands in for native notifications; it only records them.
type Notifier struct {
	log *slog.Logger
}

// NewNotifier returns a Notifier that logs to l.
func NewNotifier(l *slog.Logger) *Notifier {
	return &Notifier{log: l}
}

// Notify records the notification. It never fails.
func (n *Notifier) Notify(title, body string) {
	n.log.Info("notification", "title", title, "body", body)
}
