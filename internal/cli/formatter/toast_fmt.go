package formatter

import "github.com/alexanderramin/ideefase/internal/service"

// FormatToast renders a notification line.
func FormatToast(n service.Notification) string {
	if n.Level == service.NotifyError {
		return StyleRed.Render("✖ " + n.Message)
	}
	return StyleGreen.Render("✔ " + n.Message)
}
