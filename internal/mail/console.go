package mail

import (
	"context"

	"github.com/awesner/wesner-corporate-site/internal/logger"
)

type consoleMailer struct {
	log *logger.Logger
}

var _ Mailer = (*consoleMailer)(nil)

// NewConsoleMailer logs messages instead of sending them. Used when no
// sendgrid key is configured.
func NewConsoleMailer(log *logger.Logger) Mailer {
	return &consoleMailer{log: log}
}

func (m *consoleMailer) Send(ctx context.Context, msg Message) error {
	m.log.Info("outbound mail (console mode)", "to", msg.To, "subject", msg.Subject, "body", msg.Text)
	return nil
}
