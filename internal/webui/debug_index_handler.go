package webui

import (
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	manager := webUI.EnergyManager

	switch dataType {
	case "summary":
		data = manager.Summary()
		title = "Dataset - Summary"
	case "sources":
		data = manager.Sources()
		title = "Dataset - Energy Sources"
	case "countries":
		data = manager.Countries()
		title = "Dataset - Countries"
	case "years":
		data = manager.Years()
		title = "Dataset - Years"
	case "observations":
		data = manager.Observations()
		title = "Dataset - Observations"
	default:
		data = map[string]string{
			"error": "Please use one of the following: summary, sources, countries, years, observations.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
