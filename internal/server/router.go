// Package server assembles the HTTP surface: the shared middleware chain,
// the /api route groups, and the operational endpoints.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	issuerhandler "tamga/internal/issuer/handler"
	"tamga/internal/platform/metrics"
	"tamga/internal/platform/middleware"
	propertyhandler "tamga/internal/property/handler"
	userhandler "tamga/internal/user/handler"
	dErrors "tamga/pkg/domain-errors"
	"tamga/pkg/platform/httputil"
)

const requestTimeout = 60 * time.Second

// Dependencies carries everything the router mounts.
type Dependencies struct {
	Issuer   *issuerhandler.Handler
	User     *userhandler.Handler
	Property *propertyhandler.Handler
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// NewRouter builds the application router.
func NewRouter(deps Dependencies) chi.Router {
	started := time.Now()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.Latency(deps.Metrics))

	r.Route("/api/issuer", deps.Issuer.Register)
	r.Route("/api/user", deps.User.Register)
	r.Route("/api/property", deps.Property.Register)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"service":   "tamga-api",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(started).Round(time.Second).String(),
		})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "method not allowed"))
	})

	return r
}
