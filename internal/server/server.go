package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"
)

// Server wraps an *http.Server to provide listen/serve/shutdown lifecycle.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
}

const (
	maxHeaderBytes    = 1 << 20 // 1 MB
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

var errNotListening = errors.New("server: Serve called before Listen")

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}

// Addr joins host and port. Port may be given as "8000" or ":8000";
// an empty host listens on all interfaces.
func Addr(host, port string) string {
	return net.JoinHostPort(host, strings.TrimPrefix(port, ":"))
}

// Listen binds host:port. Bind errors (port in use) surface here, before Serve.
func (s *Server) Listen(host, port string, handler http.Handler) error {
	addr := Addr(host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.httpServer = newHTTPServer(addr, handler)
	return nil
}

// ListenAddr is the bound address, with the real port when "0" was requested.
func (s *Server) ListenAddr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve blocks until the server stops. A graceful Shutdown makes it return nil.
func (s *Server) Serve() error {
	if s.httpServer == nil {
		return errNotListening
	}
	if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, allowing in-flight requests to complete.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
