package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aussiebroadwan/accounts/internal/accounts/metrics"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"

	_ "github.com/aussiebroadwan/accounts/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	guard        *service.Guard
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      metrics.Recorder
	gatherer     prometheus.Gatherer

	store             store.Store
	InviteService     *service.InviteService
	CredentialService *service.CredentialService
	AccountService    *service.AccountService
	BootstrapService  *service.BootstrapService
}

// NewRouter creates a router. A nil gatherer leaves /metrics unregistered.
func NewRouter(
	guard *service.Guard,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	rec metrics.Recorder,
	gatherer prometheus.Gatherer,
) *Router {
	if rec == nil {
		rec = metrics.Nop{}
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		guard:        guard,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		metrics:      rec,
		gatherer:     gatherer,
	}

	// Set default middleware chain, observe must stay innermost
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		observe(r.metrics),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvites()
	r.registerUsers()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Accounts Service API
//	@version		0.1.0
//	@description	Invitation-based user management: invites, registration, login with HS256 bearer tokens, password reset and role management.
//	@description
//	@description				Every response is JSON with a boolean success field.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/accounts
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{InviteService: r.InviteService}
	admin := RequireAdmin(r.guard)

	r.Mux.Handle("POST /api/v1/invites", httpx.Chain(http.HandlerFunc(h.HandleCreate), admin))
	r.Mux.Handle("GET /api/v1/invites", httpx.Chain(http.HandlerFunc(h.HandleList), admin))
	r.Mux.Handle("DELETE /api/v1/invites/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), admin))

	// Public: the registration page checks its link before rendering
	r.Mux.HandleFunc("GET /api/v1/invites/check-token/{token}", h.HandleCheckToken)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		InviteService:     r.InviteService,
		CredentialService: r.CredentialService,
		AccountService:    r.AccountService,
	}
	authed := RequireAuthenticated(r.guard)
	admin := RequireAdmin(r.guard)

	// Public endpoints
	r.Mux.HandleFunc("POST /api/v1/users/signup/{token}", h.HandleSignup)
	r.Mux.HandleFunc("GET /api/v1/users/check-token/{token}", h.HandleCheckResetToken)
	r.Mux.HandleFunc("POST /api/v1/users/reset-password/{token}", h.HandleResetPassword)
	r.Mux.HandleFunc("POST /api/v1/users/login", h.HandleLogin)
	r.Mux.HandleFunc("POST /api/v1/users/forgot-password", h.HandleForgotPassword)

	// Any authenticated account; the guard runs before the body is validated
	r.Mux.Handle("POST /api/v1/users/change-password/", httpx.Chain(http.HandlerFunc(h.HandleChangePassword), authed))
	r.Mux.Handle("POST /api/v1/users/change-email", httpx.Chain(http.HandlerFunc(h.HandleChangeEmail), authed))

	// Admin only
	r.Mux.Handle("PUT /api/v1/users/change-role/{id}", httpx.Chain(http.HandlerFunc(h.HandleChangeRole), admin))
	r.Mux.Handle("GET /api/v1/users", httpx.Chain(http.HandlerFunc(h.HandleList), admin))
	r.Mux.Handle("DELETE /api/v1/users/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), admin))
}

func (r *Router) registerBootstrap() {
	r.Mux.Handle("POST /api/v1/bootstrap", &BootstrapHandler{BootstrapService: r.BootstrapService})
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))

	if r.gatherer != nil {
		r.Mux.Handle("GET /metrics", metrics.Handler(r.gatherer))
	}
}
