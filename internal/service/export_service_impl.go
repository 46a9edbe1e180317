package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Messages shown after a copy attempt.
const (
	MsgCopied     = "Template copied to clipboard!"
	MsgCopyFailed = "Failed to copy template"
)

type exportService struct {
	clipboard Clipboard
	notifier  Notifier
	observer  UseCaseObserver
}

// NewExportService copies feedback text to clipboard and reports the
// outcome through notifier. Either collaborator may be nil.
func NewExportService(clipboard Clipboard, notifier Notifier, observers ...UseCaseObserver) ExportService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &exportService{
		clipboard: clipboard,
		notifier:  notifier,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *exportService) Export(ctx context.Context, text string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"chars": utf8.RuneCountInString(text)}
	defer observe(ctx, s.observer, "export", startedAt, fields, &err)

	defer func() {
		if err != nil {
			s.notifier.Notify(ctx, Notification{Level: NotifyError, Message: MsgCopyFailed})
			return
		}
		s.notifier.Notify(ctx, Notification{Level: NotifySuccess, Message: MsgCopied})
	}()

	if strings.TrimSpace(text) == "" {
		return ErrNothingToExport
	}
	if s.clipboard == nil {
		return ErrClipboardUnavailable
	}
	if err = s.clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying feedback: %w", err)
	}
	return nil
}
