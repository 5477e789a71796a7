// Package server exposes conversions, searches and preferences over a JSON
// HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/apimgr/searchconv/src/bangs"
	"github.com/apimgr/searchconv/src/config"
	"github.com/apimgr/searchconv/src/convert"
	"github.com/apimgr/searchconv/src/history"
	"github.com/apimgr/searchconv/src/model"
	"github.com/apimgr/searchconv/src/preferences"
)

// Checker is anything whose connectivity /healthz reports.
type Checker interface {
	Ping(ctx context.Context) error
}

// Deps are the services behind the handlers. History and Bangs may be nil.
type Deps struct {
	Service *convert.Service
	Prefs   *preferences.Manager
	Bangs   *bangs.Manager
	History *history.Store
	Checks  map[string]Checker
	Version string
}

// Server is the HTTP API server.
type Server struct {
	cfg     config.ServerConfig
	deps    Deps
	logger  *slog.Logger
	metrics *Metrics

	httpServer *http.Server
	startTime  time.Time
}

// New creates a server. A nil logger discards log output.
func New(cfg config.ServerConfig, deps Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		cfg:       cfg,
		deps:      deps,
		logger:    logger,
		startTime: time.Now(),
	}
	if cfg.Metrics {
		s.metrics = NewMetrics()
	}
	return s
}

// Handler returns the routed handler wrapped in middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.registerRoutes(mux)
	return Chain(mux,
		RequestID,
		Logger(s.logger, s.metrics),
		Recovery(s.logger),
	)
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.handleHealthz)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	mux.HandleFunc(APIPrefix+"/engines", s.handleEngines)
	mux.HandleFunc(APIPrefix+"/engines/{id}", s.handleEngine)
	mux.HandleFunc(APIPrefix+"/convert", s.handleConvert)
	mux.HandleFunc(APIPrefix+"/search", s.handleSearch)
	mux.HandleFunc(APIPrefix+"/inspect", s.handleInspect)
	mux.HandleFunc(APIPrefix+"/preferences", s.handlePreferences)
	mux.HandleFunc(APIPrefix+"/menu", s.handleMenu)
	mux.HandleFunc(APIPrefix+"/bangs", s.handleBangs)
	mux.HandleFunc(APIPrefix+"/history", s.handleHistory)
}

// ListenAndServe serves until ctx is cancelled, then shuts down within
// the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	s.logger.Info("shutting down", "timeout", timeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	<-errCh
	return nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := model.CodeFor(err)
	if s.metrics != nil {
		s.metrics.ObserveFailure(code)
	}
	if code == model.ErrCodeInternal {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	failErr(w, r, err)
}
