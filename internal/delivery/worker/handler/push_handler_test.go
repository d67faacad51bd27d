package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"allergo/config"
	deliverycontext "allergo/internal/delivery/context"
	"allergo/internal/domain/constants"
	"allergo/internal/domain/entity"
	"allergo/internal/domain/service"
	"allergo/internal/infra/pubsub"
	mockUsecase "allergo/internal/mocks/usecase"
	"allergo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockMailUsecase) {
	mailUC := mockUsecase.NewMockMailUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		MailUC: mailUC,
	}), mailUC
}

func otpEvent() *service.MailEvent {
	return &service.MailEvent{
		RequestID: "req-from-event",
		Kind:      constants.MailKindOTP,
		Purpose:   string(entity.OTPPurposeActivation),
		Email:     "ann@example.com",
		Code:      123456,
		ExpiresAt: time.Now().Add(5 * time.Minute).UTC(),
	}
}

func push(t *testing.T, h *PushHandler, body []byte, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func encodePush(t *testing.T, event *service.MailEvent) []byte {
	t.Helper()

	msg, err := pubsub.NewMailPushMessage(event, "projects/test/subscriptions/mail")
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func TestPushHandler_Delivered(t *testing.T) {
	h, mailUC := createTestPushHandler(t)
	event := otpEvent()

	mailUC.EXPECT().Deliver(mock.Anything, mock.MatchedBy(func(got *service.MailEvent) bool {
		return got.Email == event.Email && got.Code == event.Code && got.Kind == event.Kind
	})).RunAndReturn(func(ctx context.Context, _ *service.MailEvent) error {
		assert.Equal(t, "req-from-event", deliverycontext.GetRequestIDFromContext(ctx))

		return nil
	})

	rec := push(t, h, encodePush(t, event), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_AcknowledgesPoisonMessages(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "not json", body: []byte("{")},
		{name: "data not base64", body: []byte(`{"message":{"data":"***","messageId":"1"}}`)},
		{name: "event without email", body: func() []byte {
			event := otpEvent()
			event.Email = ""
			msg, _ := pubsub.NewMailPushMessage(event, "sub")
			body, _ := json.Marshal(msg)

			return body
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestPushHandler(t)

			rec := push(t, h, tt.body, "")

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_DeliveryFailures(t *testing.T) {
	t.Run("undeliverable is acknowledged", func(t *testing.T) {
		h, mailUC := createTestPushHandler(t)
		mailUC.EXPECT().Deliver(mock.Anything, mock.Anything).
			Return(errors.Wrap(usecase.ErrUndeliverable, "unknown kind"))

		rec := push(t, h, encodePush(t, otpEvent()), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("transient failure asks for redelivery", func(t *testing.T) {
		h, mailUC := createTestPushHandler(t)
		mailUC.EXPECT().Deliver(mock.Anything, mock.Anything).Return(errors.New("smtp: connection refused"))

		rec := push(t, h, encodePush(t, otpEvent()), "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestPushHandler_RequestIDFromAttributes(t *testing.T) {
	h, mailUC := createTestPushHandler(t)

	msg, err := pubsub.NewMailPushMessage(otpEvent(), "sub")
	require.NoError(t, err)
	msg.Message.Attributes["request_id"] = "req-from-attributes"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	mailUC.EXPECT().Deliver(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.MailEvent) error {
			assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	assert.Equal(t, http.StatusOK, push(t, h, body, "").Code)
}

func TestPushHandler_VerifiesPushAuth(t *testing.T) {
	newHandler := func(t *testing.T, validate tokenValidator) (*PushHandler, *mockUsecase.MockMailUsecase) {
		h, mailUC := createTestPushHandler(t)
		h.verifyPushAuth = true
		h.validateToken = validate

		return h, mailUC
	}

	t.Run("missing header", func(t *testing.T) {
		h, _ := newHandler(t, nil)

		assert.Equal(t, http.StatusUnauthorized, push(t, h, encodePush(t, otpEvent()), "").Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		h, _ := newHandler(t, func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("bad signature")
		})

		assert.Equal(t, http.StatusUnauthorized, push(t, h, encodePush(t, otpEvent()), "Bearer forged").Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newHandler(t, func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		})

		assert.Equal(t, http.StatusUnauthorized, push(t, h, encodePush(t, otpEvent()), "Bearer tok").Code)
	})

	t.Run("valid token", func(t *testing.T) {
		var audience string
		h, mailUC := newHandler(t, func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
			audience = aud

			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		})
		mailUC.EXPECT().Deliver(mock.Anything, mock.Anything).Return(nil)

		rec := push(t, h, encodePush(t, otpEvent()), "Bearer tok")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", audience)
	})
}
