package service

import (
	"context"

	"github.com/alexanderramin/ideefase/internal/contract"
)

type EvaluationService interface {
	Evaluate(ctx context.Context, req contract.EvaluateRequest) (*contract.EvaluateResponse, error)
}

type ExportService interface {
	Export(ctx context.Context, text string) error
}

// Clipboard is the system clipboard as seen by the export service.
type Clipboard interface {
	WriteAll(text string) error
}

type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
)

// Notification is a transient message for the reviewer.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// Notifier shows notifications. Implementations must not block.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NoopNotifier drops every notification.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, Notification) {}
