package handlers

import (
	"net/http"

	"github.com/tamisweitzer/Our-Wonderful-App/internal/middlewares"
)

// NewProfileHandler returns the handler for the protected profile page.
// It is mounted behind RequireAuth, so the identity is always present.
func NewProfileHandler(rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, "profile.html", PageData{
			User: middlewares.GetIdentityFromContext(r.Context()),
		})
	}
}
