// Package httptransport wires the middleware chain and mounts the module
// handlers. Transport stays thin; business rules live in the services.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	alerthandler "farmguard/internal/alert/handler"
	assessmenthandler "farmguard/internal/assessment/handler"
	compliancehandler "farmguard/internal/compliance/handler"
	dashboardhandler "farmguard/internal/dashboard/handler"
	identityhandler "farmguard/internal/identity/handler"
	"farmguard/internal/platform/metrics"
	"farmguard/internal/platform/middleware"
	profilehandler "farmguard/internal/profile/handler"
)

// Handlers groups the per-module handlers mounted by the router.
type Handlers struct {
	Identity   *identityhandler.Handler
	Profile    *profilehandler.Handler
	Assessment *assessmenthandler.Handler
	Compliance *compliancehandler.Handler
	Alert      *alerthandler.Handler
	Dashboard  *dashboardhandler.Handler
}

// NewRouter builds the full route tree. Identity of the caller is resolved
// once, by RequireAuth; handlers downstream trust the subject id in the
// request context.
func NewRouter(
	h Handlers,
	validator middleware.JWTValidator,
	revocation middleware.RevocationChecker,
	m *metrics.Metrics,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.LatencyMiddleware(m))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		h.Identity.RegisterPublic(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(validator, revocation, logger))
		h.Identity.RegisterProtected(r)
		h.Profile.Register(r)
		h.Assessment.Register(r)
		h.Compliance.Register(r)
		h.Alert.Register(r)
		h.Dashboard.Register(r)
	})

	return r
}
