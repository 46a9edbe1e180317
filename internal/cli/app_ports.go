package cli

import (
	"github.com/alexanderramin/ideefase/internal/app"
	"github.com/alexanderramin/ideefase/internal/service"
)

func (a *App) exportUseCase(notifier service.Notifier) app.ExportUseCase {
	if a.Export != nil {
		return a.Export
	}
	return service.NewExportService(a.Clipboard, notifier, a.Observer)
}
