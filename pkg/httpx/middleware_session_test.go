package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tynanfleet/fleetcheck/pkg/jwtx"
)

func testSigner() *jwtx.Signer {
	return jwtx.NewSigner([]byte("test-secret-test-secret-test-sec"), "test", time.Hour)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func claimsEcho(t *testing.T, found *jwtx.SessionClaims) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := SessionFromContext(r.Context()); ok {
			*found = claims
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionMiddleware(t *testing.T) {
	signer := testSigner()

	t.Run("valid cookie attaches claims", func(t *testing.T) {
		token, err := signer.Sign("user-1", "Jordan", false)
		require.NoError(t, err)

		var got jwtx.SessionClaims
		h := Chain(claimsEcho(t, &got), SessionMiddleware(signer))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		h.ServeHTTP(httptest.NewRecorder(), req)

		require.Equal(t, "user-1", got.Subject)
		require.Equal(t, "Jordan", got.Name)
		require.False(t, got.Admin)
	})

	t.Run("bearer header works without a cookie", func(t *testing.T) {
		token, err := signer.Sign("", "Administrator", true)
		require.NoError(t, err)

		var got jwtx.SessionClaims
		h := Chain(claimsEcho(t, &got), SessionMiddleware(signer))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		h.ServeHTTP(httptest.NewRecorder(), req)

		require.True(t, got.Admin)
	})

	t.Run("tampered token is treated as signed out", func(t *testing.T) {
		other := jwtx.NewSigner([]byte("other-secret-other-secret-other-"), "test", time.Hour)
		token, err := other.Sign("user-1", "Jordan", false)
		require.NoError(t, err)

		var got jwtx.SessionClaims
		h := Chain(claimsEcho(t, &got), SessionMiddleware(signer))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		// Request still reaches the handler, just without claims.
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, got.Subject)
	})
}

func TestGates(t *testing.T) {
	signer := testSigner()

	serve := func(t *testing.T, gate Middleware, token string) *httptest.ResponseRecorder {
		t.Helper()
		h := Chain(okHandler(), SessionMiddleware(signer), gate)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	userToken, err := signer.Sign("user-1", "Jordan", false)
	require.NoError(t, err)
	adminToken, err := signer.Sign("", "Administrator", true)
	require.NoError(t, err)

	t.Run("RequireSession", func(t *testing.T) {
		gate := RequireSession(DenyWithJSON())

		require.Equal(t, http.StatusUnauthorized, serve(t, gate, "").Code)
		require.Equal(t, http.StatusOK, serve(t, gate, userToken).Code)
		require.Equal(t, http.StatusOK, serve(t, gate, adminToken).Code)
	})

	t.Run("RequireAdmin", func(t *testing.T) {
		gate := RequireAdmin(DenyWithJSON())

		require.Equal(t, http.StatusUnauthorized, serve(t, gate, "").Code)
		require.Equal(t, http.StatusForbidden, serve(t, gate, userToken).Code)
		require.Equal(t, http.StatusOK, serve(t, gate, adminToken).Code)
	})

	t.Run("DenyWithJSON bodies", func(t *testing.T) {
		gate := RequireAdmin(DenyWithJSON())

		rec := serve(t, gate, "")
		require.JSONEq(t, `{"ok": false, "error": "unauthorized"}`, rec.Body.String())

		rec = serve(t, gate, userToken)
		require.JSONEq(t, `{"ok": false, "error": "forbidden"}`, rec.Body.String())
	})

	t.Run("DenyWithRedirect carries the original path", func(t *testing.T) {
		gate := RequireSession(DenyWithRedirect("/auth"))
		h := Chain(okHandler(), SessionMiddleware(signer), gate)

		req := httptest.NewRequest(http.MethodGet, "/some/page", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/auth?next=%2Fsome%2Fpage", rec.Header().Get("Location"))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	h := Chain(okHandler(), RateLimitByIP(cfg))

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, do("10.0.0.1").Code)
	require.Equal(t, http.StatusOK, do("10.0.0.1").Code)

	rec := do("10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Other clients are unaffected.
	require.Equal(t, http.StatusOK, do("10.0.0.2").Code)
}

func TestIPKeyExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	require.Equal(t, "10.0.0.1", IPKeyExtractor(req))

	req.Header.Set("X-Real-IP", "203.0.113.9")
	require.Equal(t, "203.0.113.9", IPKeyExtractor(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.7, 203.0.113.9")
	require.Equal(t, "198.51.100.7", IPKeyExtractor(req))
}
