package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionCookieName identifies the visitor session the rate limiter keys on.
const SessionCookieName = "chat_session"

type sessionKey struct{}

// Session ensures every request carries a session identifier: an existing
// cookie is reused, otherwise a fresh one is minted and set. The identifier
// is opaque and carries no account meaning; it only scopes the rate window.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID extracts the visitor session identifier set by Session.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
