package cli

import (
	"github.com/alexanderramin/ideefase/internal/service"
	"github.com/atotto/clipboard"
)

type systemClipboard struct{}

// NewSystemClipboard returns the OS clipboard, or nil when the platform has
// no supported clipboard utility.
func NewSystemClipboard() service.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
