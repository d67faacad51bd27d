package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "allergo/internal/delivery/context"
	"allergo/internal/domain/service"
	"allergo/internal/errors"
	"allergo/internal/usecase"

	"go.uber.org/fx"
)

type mailService struct {
	renderer service.MailRenderer
	mailer   service.Mailer
	now      func() time.Time
	logger   *slog.Logger
}

// MailServiceParams holds dependencies for MailService, injected by Fx.
type MailServiceParams struct {
	fx.In

	Renderer service.MailRenderer
	Mailer   service.Mailer
	Logger   *slog.Logger
}

// NewMailService creates the mail delivery service used by the mail worker.
func NewMailService(params MailServiceParams) usecase.MailUsecase {
	return &mailService{
		renderer: params.Renderer,
		mailer:   params.Mailer,
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (srv *mailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *mailService) Deliver(ctx context.Context, event *service.MailEvent) error {
	if event.Email == "" {
		return errors.Wrap(usecase.ErrUndeliverable, "missing recipient")
	}

	subject, body, err := srv.renderer.Render(event, srv.now())
	if err != nil {
		srv.log(ctx).Warn("Dropping unrenderable mail event", slog.String("kind", event.Kind), slog.Any("error", err))

		return errors.Wrap(usecase.ErrUndeliverable, err.Error())
	}

	if err := srv.mailer.Send(ctx, event.Email, subject, body); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	srv.log(ctx).Info("Mail delivered", slog.String("kind", event.Kind), slog.String("purpose", event.Purpose))

	return nil
}
