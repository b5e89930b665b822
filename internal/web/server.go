// Package web is the browser host: it serves the calculator as a
// server-rendered page and exposes the same calculation over Connect.
// Requests carry all inputs; the server keeps nothing between them.
package web

import (
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/tipsplit/internal/boundary"
	"github.com/mmynk/tipsplit/internal/diag"
	"github.com/mmynk/tipsplit/internal/middleware"
)

// Config configures a Server. Zero values select the defaults.
type Config struct {
	// Reporter receives rendering faults. Defaults to a diag.LogReporter
	// on slog.Default.
	Reporter diag.Reporter
	// Registry collects the server's metrics. Defaults to a new registry.
	Registry *prometheus.Registry
	// Templates overrides the embedded page templates.
	Templates fs.FS
}

// Server serves the calculator page, the Connect API, health and metrics.
type Server struct {
	tmpl     *template.Template
	sections []staticSection
	boundary boundary.HTTP
	metrics  *metrics
	registry *prometheus.Registry
	handler  http.Handler
}

// New parses the templates, renders the static pages and builds the
// handler chain.
func New(cfg Config) (*Server, error) {
	tmpl, err := parseTemplates(cfg.Templates)
	if err != nil {
		return nil, err
	}
	fallback, err := renderRecovery(tmpl)
	if err != nil {
		return nil, err
	}
	sections, err := renderStaticSections()
	if err != nil {
		return nil, err
	}

	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = diag.NewLogReporter(nil)
	}

	s := &Server{
		tmpl:     tmpl,
		sections: sections,
		metrics:  newMetrics(reg),
		registry: reg,
	}
	s.boundary = boundary.HTTP{
		Reporter: countingReporter{Reporter: reporter, faults: s.metrics.faults},
		Fallback: fallback,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	calcPath, calcHandler := NewCalculatorServiceHandler(
		&CalculatorService{metrics: s.metrics},
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	mux.Handle(calcPath, middleware.CORS(calcHandler))

	s.handler = middleware.RequestID(middleware.Logging(s.countRequests(s.boundary.Wrap(mux))))
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.metrics.requests.WithLabelValues(route(r.URL.Path)).Inc()
		next.ServeHTTP(w, r)
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
