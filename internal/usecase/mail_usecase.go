package usecase

import (
	"context"

	"allergo/internal/domain/service"
	"allergo/internal/errors"
)

// ErrUndeliverable marks a mail event that can never be delivered, so
// retrying it is pointless.
var ErrUndeliverable = errors.New("mail event is undeliverable")

// MailUsecase delivers mail events consumed by the mail worker.
type MailUsecase interface {
	// Deliver renders and sends the event. Errors wrapping ErrUndeliverable are
	// permanent; any other error is transient.
	Deliver(ctx context.Context, event *service.MailEvent) error
}
