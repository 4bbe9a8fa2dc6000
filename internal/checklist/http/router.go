package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tynanfleet/fleetcheck/internal/checklist/service"
	"github.com/tynanfleet/fleetcheck/internal/checklist/store"
	"github.com/tynanfleet/fleetcheck/pkg/httpx"
	"github.com/tynanfleet/fleetcheck/pkg/jwtx"
	"github.com/tynanfleet/fleetcheck/pkg/slogx"

	_ "github.com/tynanfleet/fleetcheck/api/checklist" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	vans         []string

	store             store.Store
	SessionService    *service.SessionService
	AccountService    *service.AccountService
	SubmissionService *service.SubmissionService
	AuditService      *service.AuditService
}

func NewRouter(
	signer *jwtx.Signer,
	buildVersion string,
	vans []string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		vans:         vans,
		store:        st,
		logger:       logger,
	}

	// Global chain: request logging, then session extraction. Gates run
	// per-route below.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.SessionMiddleware(r.signer),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerEntries()
	r.registerIndex()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			FleetCheck API
//	@version		0.1.0
//	@description	Fleet vehicle pre/post-shift checklist tracker. Users submit
//	@description	structured inspection reports for numbered vans; the
//	@description	administrator audits recent submissions.
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		SessionService: r.SessionService,
		AccountService: r.AccountService,
		Signer:         r.signer,
	}

	// Credential endpoints get the strict per-IP limit to slow brute force.
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Logout needs no gate: clearing an absent session is harmless.
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/session",
		httpx.Chain(SessionHandler(),
			httpx.RequireSession(httpx.DenyWithJSON()),
			httpx.RateLimitByActor(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerEntries() {
	submit := &SubmitHandler{SubmissionService: r.SubmissionService}
	r.Mux.Handle("POST /v1/entries",
		httpx.Chain(submit,
			httpx.RequireSession(httpx.DenyWithJSON()),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		),
	)

	list := &EntriesListHandler{AuditService: r.AuditService}
	r.Mux.Handle("GET /v1/entries",
		httpx.Chain(list,
			httpx.RequireAdmin(httpx.DenyWithJSON()),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/vans",
		httpx.Chain(VansHandler(r.vans),
			httpx.RequireSession(httpx.DenyWithJSON()),
			httpx.RateLimitByActor(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerIndex() {
	// Interactive context: unauthenticated visitors are redirected to the
	// sign-in page instead of getting a JSON 401.
	r.Mux.Handle("GET /{$}",
		httpx.Chain(FormBootstrapHandler(r.vans),
			httpx.RequireSession(httpx.DenyWithRedirect("/auth")),
			httpx.RateLimitByActor(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
