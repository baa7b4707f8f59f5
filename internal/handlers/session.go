package handlers

import (
	"net/http"
	"time"

	"github.com/tamisweitzer/Our-Wonderful-App/internal/middlewares"
)

// setSessionCookie delivers the session token to the client. The cookie is
// unreadable from script, sent only over TLS, and never on cross-site
// requests. ttl must match the token validity window so the cookie and the
// token expire together.
func setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie removes the session cookie. Tokens already copied
// elsewhere stay valid until they expire; clearing the cookie is the only
// revocation there is.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
