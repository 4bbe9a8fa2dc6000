package http_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	checklisthttp "github.com/tynanfleet/fleetcheck/internal/checklist/http"
	"github.com/tynanfleet/fleetcheck/internal/checklist/service"
	"github.com/tynanfleet/fleetcheck/internal/checklist/store/drivers/sqlite"
	"github.com/tynanfleet/fleetcheck/pkg/cryptox"
	"github.com/tynanfleet/fleetcheck/pkg/fleetsdk"
	"github.com/tynanfleet/fleetcheck/pkg/httpx"
	"github.com/tynanfleet/fleetcheck/pkg/jwtx"
)

var testVans = []string{"131", "179", "180"}

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "fleetcheck-http-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)
	cryptox.SetPepperPath(filepath.Join(dir, "pepper.key"))
	m.Run()
}

// newTestServer wires a full router over an in-memory store. Rate limits are
// relaxed so functional tests never trip them; the dedicated rate limit test
// tightens them back down.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newTestServerWithLimits(t, httpx.RateLimitConfig{
		RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000,
	})
}

func newTestServerWithLimits(t *testing.T, strict httpx.RateLimitConfig) *httptest.Server {
	t.Helper()

	prevStrict := httpx.StrictLimit
	httpx.StrictLimit = strict
	t.Cleanup(func() { httpx.StrictLimit = prevStrict })

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.ApplyMigrations())
	st.EnsureEntryColumns(context.Background(), slog.Default())

	signer := jwtx.NewSigner([]byte("test-secret-test-secret-test-sec"), "fleetcheck", time.Hour)

	router := checklisthttp.NewRouter(signer, "test", testVans, st, slog.Default())
	router.SessionService = &service.SessionService{
		Store:         st,
		AdminUsername: "admin",
		AdminPassword: "sekrit",
	}
	router.AccountService = &service.AccountService{Store: st, AdminUsername: "admin"}
	router.SubmissionService = &service.SubmissionService{Store: st}
	router.AuditService = &service.AuditService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	c := fleetsdk.NewClient(srv.URL)

	t.Run("signup establishes a session", func(t *testing.T) {
		resp, err := c.Signup(ctx, "Jordan Lee", "jordan", "hunter22")
		require.NoError(t, err)
		require.True(t, resp.Ok)
		require.Equal(t, "user", resp.Actor.Kind)
		require.Equal(t, "Jordan Lee", resp.Actor.Name)
		require.NotEmpty(t, resp.Actor.UserID)
		require.NotEmpty(t, resp.Token)

		sess, err := c.Session(ctx)
		require.NoError(t, err)
		require.Equal(t, resp.Actor.UserID, sess.Actor.UserID)
	})

	t.Run("logout clears the session", func(t *testing.T) {
		require.NoError(t, c.Logout(ctx))

		_, err := c.Session(ctx)
		var apiErr *fleetsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, "unauthorized", apiErr.Message)
	})

	t.Run("login with the new account", func(t *testing.T) {
		resp, err := c.Login(ctx, "jordan", "hunter22")
		require.NoError(t, err)
		require.Equal(t, "user", resp.Actor.Kind)
	})

	t.Run("login rejects bad credentials", func(t *testing.T) {
		bad := fleetsdk.NewClient(srv.URL)
		_, err := bad.Login(ctx, "jordan", "wrong")
		var apiErr *fleetsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, "invalid_credentials", apiErr.Message)
	})

	t.Run("signup rejects the reserved username", func(t *testing.T) {
		other := fleetsdk.NewClient(srv.URL)
		_, err := other.Signup(ctx, "Sneaky", "Admin", "pass")
		var apiErr *fleetsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.StatusCode)
		require.Equal(t, "username_unavailable", apiErr.Message)
	})

	t.Run("admin login", func(t *testing.T) {
		adm := fleetsdk.NewClient(srv.URL)
		resp, err := adm.Login(ctx, "admin", "sekrit")
		require.NoError(t, err)
		require.Equal(t, "admin", resp.Actor.Kind)
		require.Empty(t, resp.Actor.UserID)
	})
}

func TestSubmitAndAudit(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	user := fleetsdk.NewClient(srv.URL)
	_, err := user.Signup(ctx, "Jordan Lee", "jordan", "hunter22")
	require.NoError(t, err)

	admin := fleetsdk.NewClient(srv.URL)
	_, err = admin.Login(ctx, "admin", "sekrit")
	require.NoError(t, err)

	t.Run("submission requires a session", func(t *testing.T) {
		anon := fleetsdk.NewClient(srv.URL)
		_, err := anon.SubmitEntry(ctx, map[string]any{
			"shift": "Start", "mechanic": "J", "van_id": "179",
		})
		var apiErr *fleetsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})

	t.Run("missing field reports the exact message", func(t *testing.T) {
		_, err := user.SubmitEntry(ctx, map[string]any{"mechanic": "J", "van_id": "179"})
		var apiErr *fleetsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, "Missing field: shift", apiErr.Message)
	})

	t.Run("submit normalizes and persists", func(t *testing.T) {
		resp, err := user.SubmitEntry(ctx, map[string]any{
			"shift":      "Start",
			"mechanic":   "Jordan",
			"van_id":     "179",
			"odometer":   "",
			"fuel_level": "55",
			"tires_ok":   "on",
			"notes":      " brakes feel soft ",
		})
		require.NoError(t, err)
		require.True(t, resp.Ok)
		require.Positive(t, resp.ID)

		entries, err := admin.ListEntries(ctx, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		e := entries[0]
		require.Equal(t, resp.ID, e.ID)
		require.Equal(t, "Start", e.Shift)
		require.Equal(t, "Jordan", e.Mechanic)
		require.Equal(t, "179", e.VanID)
		require.Nil(t, e.Odometer)
		require.NotNil(t, e.FuelLevel)
		require.EqualValues(t, 55, *e.FuelLevel)
		require.True(t, e.TiresOK)
		require.False(t, e.HornOK)
		require.Equal(t, "brakes feel soft", e.Notes)

		parsed, err := time.Parse(time.RFC3339, e.CreatedAt)
		require.NoError(t, err)
		require.WithinDuration(t, time.Now(), parsed, time.Minute)
	})

	t.Run("listing is admin only", func(t *testing.T) {
		_, err := user.ListEntries(ctx, 0)
		var apiErr *fleetsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		require.Equal(t, "forbidden", apiErr.Message)
	})

	t.Run("listing newest first with limit", func(t *testing.T) {
		second, err := user.SubmitEntry(ctx, map[string]any{
			"shift": "End", "mechanic": "Jordan", "van_id": "131",
		})
		require.NoError(t, err)

		entries, err := admin.ListEntries(ctx, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, second.ID, entries[0].ID)
	})
}

func TestVansAndFormBootstrap(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	c := fleetsdk.NewClient(srv.URL)
	_, err := c.Signup(ctx, "Jordan Lee", "jordan", "hunter22")
	require.NoError(t, err)

	t.Run("van roster", func(t *testing.T) {
		resp, err := c.Vans(ctx)
		require.NoError(t, err)
		require.Equal(t, testVans, resp.Vans)
	})

	t.Run("root serves the form bootstrap", func(t *testing.T) {
		httpResp, err := c.HTTPClient.Get(srv.URL + "/")
		require.NoError(t, err)
		defer httpResp.Body.Close()
		require.Equal(t, http.StatusOK, httpResp.StatusCode)
	})

	t.Run("anonymous root visit redirects to sign-in", func(t *testing.T) {
		anon := &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
		resp, err := anon.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/auth?next=%2F", resp.Header.Get("Location"))
	})

	t.Run("vans endpoint rejects anonymous callers with json", func(t *testing.T) {
		anon := fleetsdk.NewClient(srv.URL)
		_, err := anon.Vans(ctx)
		var apiErr *fleetsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})
}

func TestHealthProbes(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	c := fleetsdk.NewClient(srv.URL)

	resp, err := c.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", resp.Status)
	require.Equal(t, "test", resp.Version)

	httpResp, err := c.HTTPClient.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	defer httpResp.Body.Close()
	require.Equal(t, http.StatusOK, httpResp.StatusCode)
}

func TestLoginRateLimit(t *testing.T) {
	srv := newTestServerWithLimits(t, httpx.RateLimitConfig{
		RequestsPerWindow: 2, Window: time.Minute, Burst: 2,
	})
	ctx := context.Background()

	c := fleetsdk.NewClient(srv.URL)

	var apiErr *fleetsdk.APIError
	for i := 0; i < 2; i++ {
		_, err := c.Login(ctx, "nobody", "wrong")
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	}

	_, err := c.Login(ctx, "nobody", "wrong")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	require.Equal(t, "rate_limit_exceeded", apiErr.Message)
}

func TestBearerTokenAuth(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	c := fleetsdk.NewClient(srv.URL)
	resp, err := c.Signup(ctx, "Jordan Lee", "jordan", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	// A cookie-less client presenting the token as a bearer credential.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/v1/session", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+resp.Token)

	httpResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer httpResp.Body.Close()
	require.Equal(t, http.StatusOK, httpResp.StatusCode)
}
