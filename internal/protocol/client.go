package protocol

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/goodnatureofminers/minicoin/internal/peer"
)

// Client performs single-envelope exchanges with peers. Every exchange opens
// its own connection and is bounded by the client timeout.
type Client struct {
	timeout time.Duration
	dialer  net.Dialer
	metrics ClientMetrics
}

// NewClient constructs a Client with a per-exchange timeout.
func NewClient(timeout time.Duration, metrics ClientMetrics) *Client {
	return &Client{
		timeout: timeout,
		metrics: metrics,
	}
}

// Send delivers env to addr without waiting for a reply.
func (c *Client) Send(ctx context.Context, addr peer.Address, env Envelope) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveExchange(string(env.Kind), err, start)
	}()

	_, err = c.exchange(ctx, addr, env, false)
	return err
}

// Request delivers env to addr and returns the single envelope sent back.
func (c *Client) Request(ctx context.Context, addr peer.Address, env Envelope) (reply Envelope, err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveExchange(string(env.Kind), err, start)
	}()

	return c.exchange(ctx, addr, env, true)
}

func (c *Client) exchange(ctx context.Context, addr peer.Address, env Envelope, wantReply bool) (Envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dialer.DialContext(ctx, "tcp", string(addr))
	if err != nil {
		return Envelope{}, fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return Envelope{}, fmt.Errorf("set deadline %s: %w", addr, err)
		}
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	if err := WriteEnvelope(conn, env); err != nil {
		return Envelope{}, fmt.Errorf("send to %s: %w", addr, err)
	}
	if !wantReply {
		return Envelope{}, nil
	}
	if tcp, ok := conn.(*net.TCPConn); ok {
		_ = tcp.CloseWrite()
	}

	reply, err := ReadEnvelope(conn)
	if err != nil {
		return Envelope{}, fmt.Errorf("read reply from %s: %w", addr, err)
	}
	return reply, nil
}
