package service

import (
	"context"
	"time"
)

// Mailer delivers a rendered message.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// MailRenderer turns a mail event into a subject and HTML body.
type MailRenderer interface {
	Render(event *MailEvent, now time.Time) (subject, body string, err error)
}
