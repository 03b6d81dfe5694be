// Package bridge exposes the active wallet session over HTTP so a UI shell or
// an end-to-end test driver can trigger session operations, observe the
// session state and follow navigation.
package bridge

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gabapcia/walletdesk/internal/activewallet"
	"github.com/gabapcia/walletdesk/internal/navigation"
	"github.com/gabapcia/walletdesk/internal/pkg/logger"
)

// ErrServerAlreadyStarted is returned if Start is called more than once.
var ErrServerAlreadyStarted = errors.New("bridge server already started")

// shutdownTimeout bounds how long Close waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Server is the automation bridge lifecycle.
type Server interface {
	// Start binds the listen address and serves requests in the background.
	//
	// Returns ErrServerAlreadyStarted if Start is called more than once.
	Start(ctx context.Context) error

	// Close stops accepting requests and waits for in-flight ones to finish.
	// It is safe to call Close even if the server was never started.
	Close()

	// Handler returns the HTTP handler serving the bridge routes.
	Handler() http.Handler
}

type server struct {
	mu         sync.Mutex
	isStarted  bool
	listener   net.Listener
	httpServer *http.Server

	addr           string
	allowedOrigins []string
	session        activewallet.Service
	navigation     navigation.Service
}

var _ Server = (*server)(nil)

// Option configures the bridge server.
type Option func(*server)

// WithAllowedOrigins sets the origins allowed by the CORS policy. Default: "*".
func WithAllowedOrigins(origins []string) Option {
	return func(s *server) {
		if len(origins) > 0 {
			s.allowedOrigins = origins
		}
	}
}

// New creates a bridge server listening on addr.
func New(addr string, session activewallet.Service, nav navigation.Service, opts ...Option) *server {
	s := &server{
		addr:           addr,
		allowedOrigins: []string{"*"},
		session:        session,
		navigation:     nav,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServerAlreadyStarted
	}

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return err
	}

	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "bridge server stopped", "error", err)
		}
	}()

	logger.Info(ctx, "bridge server started", "bridge.addr", listener.Addr().String())

	s.isStarted = true
	return nil
}

func (s *server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "bridge server shutdown interrupted", "error", err)
		}
	}

	s.httpServer = nil
	s.listener = nil
	s.isStarted = false
}

// Addr returns the address the server listens on, or the configured address
// before Start.
func (s *server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}
