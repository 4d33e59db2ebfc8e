// Package server exposes the query resolver over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Resolver renders redirect targets for raw queries.
type Resolver interface {
	SearchURL(ctx context.Context, query string) string
	SuggestURL(ctx context.Context, query string) string
}

// Options configures the HTTP listener.
type Options struct {
	ListenAddr      string
	StaticDir       string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// RequestsPerSecond of 0 disables rate limiting.
	RequestsPerSecond float64
	Burst             int
}

type resolverRef struct {
	Resolver
}

// Server serves /search, /suggest and the static pages.
type Server struct {
	opts     Options
	logger   zerolog.Logger
	resolver atomic.Pointer[resolverRef]
	handler  http.Handler

	mu        sync.Mutex
	boundAddr string
}

// New creates a server around resolver.
func New(resolver Resolver, opts Options, logger zerolog.Logger) *Server {
	s := &Server{
		opts:   opts,
		logger: logger.With().Str("component", "server").Logger(),
	}
	s.resolver.Store(&resolverRef{resolver})
	s.handler = s.routes()
	return s
}

// SetResolver swaps the resolver used by subsequent requests.
// Requests already in flight finish with the one they started with.
func (s *Server) SetResolver(resolver Resolver) {
	s.resolver.Store(&resolverRef{resolver})
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// BoundAddr returns the address the listener bound to. Only valid after Run started listening.
func (s *Server) BoundAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boundAddr
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.opts.ListenAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on an existing listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.mu.Lock()
	s.boundAddr = listener.Addr().String()
	s.mu.Unlock()

	httpSrv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.opts.ReadTimeout,
		ReadHeaderTimeout: s.opts.ReadTimeout,
		WriteTimeout:      s.opts.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("addr", listener.Addr().String()).Msg("listening")
		if err := httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		timeout := s.opts.ShutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		s.logger.Info().Dur("timeout", timeout).Msg("shutting down")
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func (s *Server) currentResolver() Resolver {
	return s.resolver.Load().Resolver
}
