package httpd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
)

// Server owns the listening socket and runs each accepted connection to
// completion before the next accept.
type Server struct {
	Addr     string
	Resolver *Resolver
	Logger   *slog.Logger
}

// ListenAndServe binds Addr and serves until ctx is canceled or the listener
// fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts from ln strictly sequentially; a slow or stalled client
// blocks all others. Cancellation of ctx closes the listener and returns
// nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	s.Logger.Info("serving",
		slog.String("addr", ln.Addr().String()),
		slog.String("webroot", s.Resolver.Root),
	)
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.Logger.Info("listener closed")
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		s.handle(conn)
	}
}

// handle contains a single connection's failures so one misbehaving client
// cannot take down the listener.
func (s *Server) handle(conn net.Conn) {
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("connection handler panicked", slog.Any("panic", r))
			conn.Close()
		}
	}()
	NewWorker(s.Resolver, s.Logger).Start(conn)
}
