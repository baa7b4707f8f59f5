package handlers

import (
	"net/http"

	"github.com/tamisweitzer/Our-Wonderful-App/internal/middlewares"
)

// NewHomepageHandler returns the handler for the public landing page.
func NewHomepageHandler(rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, "homepage.html", PageData{
			User: middlewares.GetIdentityFromContext(r.Context()),
		})
	}
}
