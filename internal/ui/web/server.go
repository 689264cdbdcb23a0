// Package web serves the analyzer as an HTML form.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"jsanalyzer/internal/core/app"
	"jsanalyzer/internal/core/config"
	"jsanalyzer/internal/shared/util"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/index.html
var templateFS embed.FS

// Analyzer is the pair of request handlers the form drives.
type Analyzer interface {
	Analyze(ctx context.Context, source string) app.AnalysisReport
	Ask(ctx context.Context, source, question string) app.QuestionReport
}

const limiterTTL = 10 * time.Minute

type Server struct {
	cfg           *config.Config
	analyzer      Analyzer
	healthService *app.HealthService
	tmpl          *template.Template
	limiter       *util.LimiterRegistry
	clientIP      *util.ClientIPResolver
	server        *http.Server
	listener      net.Listener
}

func NewServer(cfg *config.Config, analyzer Analyzer, healthService *app.HealthService) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:           cfg,
		analyzer:      analyzer,
		healthService: healthService,
		tmpl:          tmpl,
	}
	s.clientIP, err = util.NewClientIPResolver(cfg.Server.TrustedProxies)
	if err != nil {
		return nil, err
	}
	if cfg.Server.RateLimit.Enabled {
		s.limiter = util.NewLimiterRegistry(cfg.Server.RateLimit.RequestsPerMinute, cfg.Server.RateLimit.Burst, limiterTTL)
	}
	return s, nil
}

// Handler returns the routed, instrumented handler tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /{$}", s.instrument("index", http.HandlerFunc(s.handleIndex)))
	mux.Handle("POST /analyze", s.instrument("analyze", s.rateLimit(http.HandlerFunc(s.handleAnalyze))))
	mux.Handle("POST /ask", s.instrument("ask", s.rateLimit(http.HandlerFunc(s.handleAsk))))
	mux.Handle("GET /healthz", s.instrument("healthz", http.HandlerFunc(s.handleHealth)))

	if s.cfg.Observability.Enabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	return s.requestID(mux)
}

// Start binds the listener and serves in the background. Bind errors are
// returned; serve errors after that are logged.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Address)
	if err != nil {
		return err
	}
	s.listener = ln

	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	slog.Info("web server starting", "addr", ln.Addr().String())

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error("web server failed", "error", err)
		}
	}()

	return nil
}

// Addr is the bound address once Start has returned.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.cfg.Server.Address
	}
	return s.listener.Addr().String()
}

func (s *Server) Stop(ctx context.Context) error {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := s.healthService.Check(r.Context())
	w.Header().Set("Content-Type", "application/json")
	if status.Status != "up" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(status); err != nil {
		slog.Warn("encode health status", "error", err)
	}
}
