package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tamisweitzer/Our-Wonderful-App/internal/logger"
	"github.com/tamisweitzer/Our-Wonderful-App/internal/middlewares"
	"github.com/tamisweitzer/Our-Wonderful-App/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) (string, error)
}

// NewRegisterPageHandler renders the registration form. Signed-in users are
// sent to their profile instead.
func NewRegisterPageHandler(rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if middlewares.GetIdentityFromContext(r.Context()) != nil {
			http.Redirect(w, r, "/profile", http.StatusSeeOther)
			return
		}
		rnd.Render(w, "register.html", PageData{})
	}
}

// NewRegisterHandler handles the registration form submission. On success it
// sets the session cookie and redirects to the profile page; on validation
// failure it re-renders the form with every violated rule. sessionTTL is the
// configured token lifetime.
func NewRegisterHandler(svc Registerer, rnd *Renderer, sessionTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rnd.Render(w, "register.html", PageData{Errors: []string{"Invalid form data"}})
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		token, err := svc.Register(r.Context(), username, password)
		if err != nil {
			var vErr *services.ValidationError
			if errors.As(err, &vErr) {
				rnd.Render(w, "register.html", PageData{
					Errors:   vErr.Messages,
					Username: username,
				})
				return
			}
			logger.Log.Errorw("registration failed", "err", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		setSessionCookie(w, token, sessionTTL)
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
	}
}
