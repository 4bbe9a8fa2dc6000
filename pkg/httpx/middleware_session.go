package httpx

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/tynanfleet/fleetcheck/pkg/jwtx"
	"github.com/tynanfleet/fleetcheck/pkg/slogx"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "fc_session"

// SessionMiddleware verifies the session token from the request (cookie first,
// then Authorization bearer header) and attaches the claims to the request
// context. It never rejects by itself; the gates below decide whether an
// unauthenticated request may proceed.
func SessionMiddleware(signer *jwtx.Signer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFromRequest(r)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := signer.Verify(raw)
			if err != nil {
				// Expired or tampered cookie: treat as signed out.
				slogx.FromContext(r.Context()).Debug("session token rejected", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithSession(r.Context(), claims)))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	}
	return ""
}

// Deny is a gate's failure behaviour. The status code is
// http.StatusUnauthorized when no session is present and
// http.StatusForbidden when a session is present but lacks the required
// role.
type Deny func(w http.ResponseWriter, r *http.Request, code int)

// DenyWithJSON writes the API-context failure response.
func DenyWithJSON() Deny {
	return func(w http.ResponseWriter, r *http.Request, code int) {
		msg := "unauthorized"
		if code == http.StatusForbidden {
			msg = "forbidden"
		}
		WriteJSON(w, code, map[string]any{"ok": false, "error": msg})
	}
}

// DenyWithRedirect sends interactive contexts to the sign-in page, carrying
// the original path so the client can return after authenticating.
func DenyWithRedirect(location string) Deny {
	return func(w http.ResponseWriter, r *http.Request, _ int) {
		http.Redirect(w, r, location+"?next="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
	}
}

// RequireSession permits requests with either a regular-user or an
// administrator session.
func RequireSession(deny Deny) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SessionFromContext(r.Context()); !ok {
				deny(w, r, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin permits only administrator sessions.
func RequireAdmin(deny Deny) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := SessionFromContext(r.Context())
			if !ok {
				deny(w, r, http.StatusUnauthorized)
				return
			}
			if !claims.Admin {
				deny(w, r, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
