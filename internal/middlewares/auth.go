package middlewares

import (
	"context"
	"net/http"

	"github.com/tamisweitzer/Our-Wonderful-App/internal/jwt"
	"github.com/tamisweitzer/Our-Wonderful-App/internal/logger"
	"github.com/tamisweitzer/Our-Wonderful-App/internal/models"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

// ClaimsGetter defines the minimal token codec interface needed by the middleware
type ClaimsGetter interface {
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type identityKey struct{}

// GetIdentityFromContext returns the authenticated identity for the request,
// or nil when the request is anonymous.
func GetIdentityFromContext(ctx context.Context) *models.Identity {
	identity, _ := ctx.Value(identityKey{}).(*models.Identity)
	return identity
}

// setIdentityToContext stores an identity in the context; used by tests too.
func setIdentityToContext(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// Identity returns a middleware that derives the request identity from the
// session cookie. It never rejects a request: a missing, malformed, expired,
// or tampered token just leaves the request anonymous.
func Identity(codec ClaimsGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := codec.GetClaims(ctx, cookie.Value)
			if err != nil {
				logger.Log.Debugw("session token rejected", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			identity := &models.Identity{
				UserID:   claims.UserID,
				Username: claims.Username,
			}
			next.ServeHTTP(w, r.WithContext(setIdentityToContext(ctx, identity)))
		})
	}
}

// RequireAuth returns a middleware that redirects anonymous requests to the
// landing page without invoking the wrapped handler.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetIdentityFromContext(r.Context()) == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
