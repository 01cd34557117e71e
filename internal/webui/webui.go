package webui

import (
	"wattmap.openenergy.dev/internal/app"
)

// WebUI serves the server-rendered dashboard and debug pages.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}
