package protocol

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minicoin/internal/clock"
)

const acceptRetryDelay = 50 * time.Millisecond

// Server accepts gossip connections. Each connection carries one request
// envelope and at most one reply.
type Server struct {
	logger   *zap.Logger
	listener net.Listener
	handler  Handler
	timeout  time.Duration
	metrics  ServerMetrics

	wg sync.WaitGroup
}

// Listen binds addr. Binding happens before any other network activity so a
// port conflict surfaces at startup.
func Listen(logger *zap.Logger, addr string, handler Handler, timeout time.Duration, metrics ServerMetrics) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	return &Server{
		logger:   logger.Named("gossip_server").With(zap.String("addr", l.Addr().String())),
		listener: l,
		handler:  handler,
		timeout:  timeout,
		metrics:  metrics,
	}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve accepts connections until ctx is cancelled, then waits for in-flight
// connections to finish.
func (s *Server) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.listener.Close()
	})
	defer stop()
	defer s.wg.Wait()

	s.logger.Info("gossip server listening")
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Warn("accept failed", zap.Error(err))
			if err := clock.SleepWithContext(ctx, acceptRetryDelay); err != nil {
				return nil
			}
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(ctx, conn)
		}()
	}
}

// Close stops accepting connections.
func (s *Server) Close() error {
	return s.listener.Close()
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	start := time.Now()

	if err := conn.SetDeadline(start.Add(s.timeout)); err != nil {
		s.logger.Debug("set deadline failed", zap.Error(err))
		return
	}

	env, err := ReadEnvelope(conn)
	if err != nil {
		// Malformed input is dropped without a reply.
		s.metrics.ObserveMessage("malformed", err, start)
		s.logger.Debug("dropping envelope", zap.Stringer("remote", conn.RemoteAddr()), zap.Error(err))
		return
	}

	reply, err := s.handler.HandleMessage(ctx, env)
	s.metrics.ObserveMessage(string(env.Kind), err, start)
	if err != nil {
		s.logger.Debug("message rejected",
			zap.String("kind", string(env.Kind)),
			zap.String("sender", env.Sender),
			zap.Error(err),
		)
		return
	}
	if reply == nil {
		return
	}
	if err := WriteEnvelope(conn, *reply); err != nil {
		s.logger.Debug("reply failed", zap.String("kind", string(reply.Kind)), zap.Error(err))
	}
}
