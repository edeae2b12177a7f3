package ports

import "context"

// AccountEvent describes a provisioning event handed to the notification
// pipeline.
type AccountEvent struct {
	UserID string
	Email  string
	Name   string
}

// NotificationService processes a single account event, e.g. issuing an
// email-verification token.
type NotificationService interface {
	Notify(ctx context.Context, event AccountEvent) error
}

// Notifier enqueues account events for asynchronous processing. It must not
// block the registration request path.
type Notifier interface {
	Enqueue(event AccountEvent)
}
