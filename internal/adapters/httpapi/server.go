// Package httpapi exposes the dictionary over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"sanakirja/internal/ports/input"
	"sanakirja/internal/ports/output"
)

const (
	// DefaultPort is the port the API listens on unless configured otherwise.
	DefaultPort = 3000

	// DefaultLocale is the language of API messages unless configured otherwise.
	DefaultLocale = "en"
)

// Server is the HTTP adapter.
type Server struct {
	handlers *Handlers
	port     int
	logger   *slog.Logger
}

// Config holds configuration for the HTTP server.
type Config struct {
	Dictionary input.DictionaryUseCase
	Translator output.T
	Locale     string
	Port       int
	Logger     *slog.Logger
}

// NewServer creates a new Server.
func NewServer(cfg Config) *Server {
	port := cfg.Port
	if port == 0 {
		port = DefaultPort
	}
	return &Server{
		handlers: NewHandlers(cfg.Dictionary, cfg.Translator, cfg.Locale, cfg.Logger),
		port:     port,
		logger:   cfg.Logger,
	}
}

// Handler returns the routed handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return NewRouter(s.handlers, s.logger)
}

// Serve starts the HTTP server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting dictionary API", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	// Request contexts are not derived from ctx: Shutdown lets in-flight
	// requests finish instead of cancelling them.
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down dictionary API")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
