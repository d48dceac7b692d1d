package http

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/caredash/frontend"
	"github.com/secmon-lab/caredash/pkg/domain/interfaces"
	"github.com/secmon-lab/caredash/pkg/domain/model"
)

// Config holds HTTP server configuration
type Config struct {
	Addr string
	// FrontendFS overrides the embedded frontend. Nil means the embedded build.
	FrontendFS http.FileSystem
}

// NewConfig creates a new server configuration
func NewConfig(addr string, frontendFS http.FileSystem) *Config {
	return &Config{
		Addr:       addr,
		FrontendFS: frontendFS,
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router    chi.Router
	dashboard *DashboardHandler
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	config *Config,
	dashboardUC interfaces.Dashboard,
	renderer interfaces.ChartRenderer,
) (*Server, error) {
	if dashboardUC == nil {
		return nil, goerr.New("dashboard use case is required")
	}
	if renderer == nil {
		return nil, goerr.New("chart renderer is required")
	}

	router := chi.NewRouter()
	dashboardHandler := NewDashboardHandler(dashboardUC, renderer)
	dataset := dashboardUC.Dataset()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth(dataset))

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Use(CORS)
		r.Use(DatasetHeader(dataset.ID))

		r.Get(trimAPI(model.EndpointOptions), dashboardHandler.HandleOptions)
		r.Get(trimAPI(model.EndpointLayout), dashboardHandler.HandleLayout)
		r.Get(trimAPI(model.EndpointRegionalTable), dashboardHandler.HandleRegionalTable)
		r.Get(trimAPI(model.EndpointComparison), dashboardHandler.HandleComparison)
		r.Get(trimAPI(model.EndpointComparisonChart), dashboardHandler.HandleComparisonChart)
		r.Get(trimAPI(model.EndpointRegionalAnalysis), dashboardHandler.HandleRegionalAnalysis)
		r.Get(trimAPI(model.EndpointRegionalAnalysisChart), dashboardHandler.HandleRegionalAnalysisChart)
	})

	// Frontend routes. Every non-asset path gets index.html so client-side navigation survives reloads.
	fs := config.FrontendFS
	if fs == nil {
		embedded, err := frontend.GetHTTPFS()
		if err != nil {
			ctxlog.From(ctx).Warn("Failed to get embedded frontend, using fallback",
				"error", err,
			)
		} else {
			fs = embedded
		}
	}

	var spaHandler *SPAHandler
	if fs != nil {
		h, err := NewSPAHandler(fs)
		if err != nil {
			ctxlog.From(ctx).Warn("Frontend has no index.html, using fallback", "error", err)
		} else {
			spaHandler = h
		}
	}

	if spaHandler != nil {
		ctxlog.From(ctx).Info("Serving frontend")
		router.Handle("/*", spaHandler)
	} else {
		router.Get("/*", handleFallbackHome(dashboardUC))
	}

	server := &Server{
		Server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:    router,
		dashboard: dashboardHandler,
	}

	return server, nil
}

// trimAPI strips the /api prefix for routes mounted under the /api group
func trimAPI(endpoint string) string {
	return endpoint[len("/api"):]
}

// handleHealth handles health check requests
func handleHealth(dataset *model.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"status":  "healthy",
			"service": "caredash",
			"dataset": dataset.ID,
			"rows":    dataset.Rows(),
		}); err != nil {
			ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
		}
	}
}

// handleFallbackHome serves a plain page with the navigation links when the frontend is not available
func handleFallbackHome(dashboardUC interfaces.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := html.EscapeString(dashboardUC.Layout(r.Context(), "").Title)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
    <title>%s</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            margin: 2rem;
        }
        a {
            display: block;
            margin: 0.25rem 0;
        }
    </style>
</head>
<body>
    <h1>%s</h1>
    <p>The frontend is not built. The JSON API is available:</p>
    <a href="%s">Dropdown options</a>
    <a href="%s?%s=/">Regional Data layout</a>
    <a href="%s?%s=/local-authority">Local Authority Lookup layout</a>
    <a href="%s?%s=/regional-analysis">Regional Analysis layout</a>
</body>
</html>`,
			title, title,
			model.EndpointOptions,
			model.EndpointLayout, model.ParamPath,
			model.EndpointLayout, model.ParamPath,
			model.EndpointLayout, model.ParamPath,
		); err != nil {
			ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
		}
	}
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
	}); err != nil {
		// Can't get context here, so use background context
		ctxlog.From(context.Background()).Error("Failed to encode error response", "error", err)
	}
}
