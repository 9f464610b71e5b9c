// Package mail sends outbound notification email.
package mail

import "context"

type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer is any service that can send a notification message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
