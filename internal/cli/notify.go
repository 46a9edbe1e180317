package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/ideefase/internal/cli/formatter"
	"github.com/alexanderramin/ideefase/internal/service"
)

// writerNotifier prints notifications as single lines, for non-interactive
// commands.
type writerNotifier struct {
	w io.Writer
}

func newWriterNotifier(w io.Writer) service.Notifier {
	return writerNotifier{w: w}
}

func (n writerNotifier) Notify(_ context.Context, note service.Notification) {
	fmt.Fprintln(n.w, formatter.FormatToast(note))
}

// captureNotifier keeps the last notification so a TUI command can turn it
// into a toast message.
type captureNotifier struct {
	last *service.Notification
}

func (c *captureNotifier) Notify(_ context.Context, note service.Notification) {
	c.last = &note
}
