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

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginPageHandler renders the login form. Signed-in users are sent to
// their profile instead.
func NewLoginPageHandler(rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if middlewares.GetIdentityFromContext(r.Context()) != nil {
			http.Redirect(w, r, "/profile", http.StatusSeeOther)
			return
		}
		rnd.Render(w, "login.html", PageData{})
	}
}

// NewLoginHandler handles the login form submission. Every credential
// failure shows the same generic message and never sets a cookie. sessionTTL
// is the configured token lifetime.
func NewLoginHandler(svc Loginer, rnd *Renderer, sessionTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rnd.Render(w, "login.html", PageData{Errors: []string{"Invalid form data"}})
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		token, err := svc.Login(r.Context(), username, password)
		if err != nil {
			var vErr *services.ValidationError
			switch {
			case errors.Is(err, services.ErrInvalidCredentials), errors.As(err, &vErr):
				rnd.Render(w, "login.html", PageData{
					Errors:   []string{services.MsgInvalidCredentials},
					Username: username,
				})
			default:
				logger.Log.Errorw("login failed", "err", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		setSessionCookie(w, token, sessionTTL)
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
	}
}
