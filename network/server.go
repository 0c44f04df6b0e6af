package network

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Server serves the evaluator API on a listener supplied by the caller.
type Server struct {
	server    *http.Server
	logger    *slog.Logger
	tlsConfig *tls.Config
	errs      chan error
}

type ServerOption func(*Server)

// NewServer creates a server. It does not listen until Start is called.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		errs:   make(chan error, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.server = &http.Server{
		Handler:           NewRouter(s.logger),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}
	return s
}

func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger.With(slog.String("component", "server"))
	}
}

// WithCertificate makes the server speak HTTPS with cert.
func WithCertificate(cert tls.Certificate) ServerOption {
	return func(s *Server) {
		if s.tlsConfig == nil {
			s.tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		s.tlsConfig.Certificates = append(s.tlsConfig.Certificates, cert)
	}
}

// Start serves on l in the background. A failure other than a shutdown is
// reported on Errors.
func (s *Server) Start(l net.Listener) {
	if s.tlsConfig != nil {
		l = tls.NewListener(l, s.tlsConfig)
	}
	s.logger.Info("listening", "address", l.Addr().String(), "tls", s.tlsConfig != nil)
	go func() {
		err := s.server.Serve(l)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server stopped", "error", err)
			s.errs <- err
		}
		close(s.errs)
	}()
}

// Errors is closed once the server has stopped.
func (s *Server) Errors() <-chan error {
	return s.errs
}

// Close gracefully shuts the server down, waiting for in-flight requests
// until ctx expires.
func (s *Server) Close(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// CreateListener listens on a free localhost port.
func CreateListener() (net.Listener, error) {
	return net.Listen("tcp", "localhost:0")
}
