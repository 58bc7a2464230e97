// internal/adapters/in/http/middleware/cart_session.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// CartCookieName identifies the shopper's cart session.
const CartCookieName = "cart_session"

type ctxKey string

const cartSessionKey ctxKey = "cartSession"

// CartSession ensures every request carries an opaque cart session id.
// A missing or malformed cookie gets a fresh uuid, set on the response so
// the cart survives the next visit.
func CartSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(CartCookieName); err == nil {
			if parsed, perr := uuid.Parse(strings.TrimSpace(c.Value)); perr == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     CartCookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   60 * 60 * 24 * 365,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), cartSessionKey, id)))
	})
}

// CartSessionID returns the session id the middleware attached ("" if the
// middleware did not run).
func CartSessionID(r *http.Request) string {
	if v, ok := r.Context().Value(cartSessionKey).(string); ok {
		return v
	}
	return ""
}
