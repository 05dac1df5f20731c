package protocol

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/minicoin/internal/peer"
)

type (
	// Handler processes one inbound envelope and optionally returns the reply
	// written back on the same connection.
	Handler interface {
		HandleMessage(ctx context.Context, env Envelope) (*Envelope, error)
	}

	// Sender delivers an envelope without waiting for a reply.
	Sender interface {
		Send(ctx context.Context, addr peer.Address, env Envelope) error
	}

	ClientMetrics interface {
		ObserveExchange(kind string, err error, started time.Time)
	}

	ServerMetrics interface {
		ObserveMessage(kind string, err error, started time.Time)
	}
)

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, env Envelope) (*Envelope, error)

// HandleMessage calls f.
func (f HandlerFunc) HandleMessage(ctx context.Context, env Envelope) (*Envelope, error) {
	return f(ctx, env)
}
