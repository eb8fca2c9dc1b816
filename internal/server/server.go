// Package server serves one fixed HTML body for every request.
package server

import (
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"sync"
	"time"
)

const (
	// Host is the hostname the server binds to
	Host = "localhost"
	// Port is the TCP port the server binds to
	Port = "8080"
)

var (
	// Address is the listen address for Host and Port
	Address = net.JoinHostPort(Host, Port)
	// URL is where the page can be reached
	URL = "http://" + Address
)

// Server answers every request with the same body
type Server struct {
	body       []byte
	listener   net.Listener
	httpServer *http.Server
	accessLog  io.Writer
	now        func() time.Time
}

// Option is a function that configures a Server
type Option func(*Server)

// WithAccessLog sets where the per-request log lines are written.
// A nil writer discards them.
func WithAccessLog(w io.Writer) Option {
	return func(s *Server) {
		if w == nil {
			w = io.Discard
		}
		s.accessLog = w
	}
}

// Listen binds addr and returns a Server ready to serve body.
// A failed bind is reported as a *BindError.
func Listen(addr string, body []byte, options ...Option) (*Server, error) {
	s := &Server{
		body:      body,
		accessLog: os.Stderr,
		now:       time.Now,
	}

	// Apply options
	for _, option := range options {
		option(s)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}
	s.listener = ln

	s.httpServer = &http.Server{
		Handler: serialize(logRequests(s.accessLog, s.now, http.HandlerFunc(s.servePage))),
	}

	return s, nil
}

// Addr returns the bound listener address
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve accepts requests until the server is closed.
// It returns http.ErrServerClosed after Close.
func (s *Server) Serve() error {
	return s.httpServer.Serve(s.listener)
}

// Close stops the listener and drops open connections
func (s *Server) Close() error {
	err := s.httpServer.Close()
	if lerr := s.listener.Close(); lerr != nil && !errors.Is(lerr, net.ErrClosed) && err == nil {
		err = lerr
	}
	return err
}

// servePage ignores method, path and headers
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.body)
}

// serialize lets only one request run through h at a time
func serialize(h http.Handler) http.Handler {
	var mu sync.Mutex
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		h.ServeHTTP(w, r)
	})
}
