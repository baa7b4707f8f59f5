package handlers

import "net/http"

// NewLogoutHandler clears the session cookie and sends the user back to the
// landing page.
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearSessionCookie(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
