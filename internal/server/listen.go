package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/katalvlaran/pathtrace/internal/config"
)

// ListenAndServe serves Handler on cfg.Addr until ctx is done, then shuts
// down gracefully within cfg.ShutdownTimeout. ready, when non-nil, receives
// the bound address once the listener is open.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.HTTPConfig, ready func(addr string)) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}

	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", ln.Addr().String())
		serveErr <- srv.Serve(ln)
	}()
	if ready != nil {
		ready(ln.Addr().String())
	}

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutCtx); err != nil {
		s.log.Warn("graceful shutdown did not complete", "error", err)
		_ = srv.Close()
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server stopped")

	return nil
}
