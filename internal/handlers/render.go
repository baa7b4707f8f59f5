package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/tamisweitzer/Our-Wonderful-App/internal/logger"
	"github.com/tamisweitzer/Our-Wonderful-App/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageData is what every page template receives: the authenticated identity
// (nil for anonymous visitors), validation messages to show the user, and the
// submitted username so the form can keep it on re-render.
type PageData struct {
	User     *models.Identity
	Errors   []string
	Username string
}

// Renderer renders the embedded HTML page templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named page with the given data.
func (rnd *Renderer) Render(w http.ResponseWriter, name string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rnd.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Log.Errorw("failed to render template", "template", name, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
