package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"allergo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PushMessage is the body Google Pub/Sub POSTs to push subscriptions.
// The local publisher produces the same shape.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// mailAttributes are copied to message attributes for subscription filtering and tracing.
func mailAttributes(event *service.MailEvent) map[string]string {
	attributes := map[string]string{
		"kind": event.Kind,
	}
	if event.Purpose != "" {
		attributes["purpose"] = event.Purpose
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// NewMailPushMessage wraps event the way a push subscription would deliver it.
func NewMailPushMessage(event *service.MailEvent, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = mailAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeMailEvent extracts the mail event carried by a push message.
func (m *PushMessage) DecodeMailEvent() (*service.MailEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.MailEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse mail event")
	}
	if event.Email == "" || event.Kind == "" {
		return nil, errors.New("mail event is missing email or kind")
	}

	return &event, nil
}
