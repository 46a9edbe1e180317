package service

import "errors"

var (
	// ErrClipboardUnavailable indicates no clipboard is wired or the
	// platform has no clipboard utility.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// ErrNothingToExport indicates an export of an empty feedback text.
	ErrNothingToExport = errors.New("no feedback text to copy")
)
