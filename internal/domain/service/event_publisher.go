package service

import (
	"context"
	"time"
)

// MailEvent asks the mail worker to deliver one templated message.
type MailEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	Kind      string    `json:"kind"`
	Purpose   string    `json:"purpose,omitempty"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Code      int       `json:"code,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMailEvent publishes a mail event for async delivery
	PublishMailEvent(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
