package tools

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Server hosts the tool registry over HTTP.
type Server struct {
	registry *Registry
	log      *slog.Logger
	http     *http.Server
}

// NewServer creates a server bound to addr.
func NewServer(addr string, registry *Registry, log *slog.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/tools/", registry)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		writeJSON(w, map[string]any{"status": "ok", "tools": registry.Names()})
	})

	return &Server{
		registry: registry,
		log:      log,
		http: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("tool server listening", "addr", s.http.Addr, "tools", len(s.registry.Names()))
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}
