package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dtroode/sociable-server/internal/model"
)

var _ model.Server = (*HTTPServer)(nil)

// HTTPServer wraps http.Server with listener-based startup and graceful
// shutdown.
type HTTPServer struct {
	server *http.Server
	addr   string
}

// NewHTTPServer creates an HTTP server serving the handler on addr.
func NewHTTPServer(handler http.Handler, addr string) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{Addr: addr, Handler: handler},
		addr:   addr,
	}
}

// Start listens through the security layer and serves until Stop is
// called. A closed-server error is not reported as a failure.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop shuts the server down gracefully, waiting for in-flight requests
// up to the context deadline.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Address returns the configured listen address.
func (s *HTTPServer) Address() string {
	return s.addr
}
