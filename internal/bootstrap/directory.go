// Package bootstrap implements the directory new nodes register with to
// discover their first peers. It holds no chain and never mines.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minicoin/internal/peer"
	"github.com/goodnatureofminers/minicoin/internal/protocol"
)

// Directory remembers every node that registered and hands the list out.
type Directory struct {
	logger   *zap.Logger
	self     peer.Address
	registry *peer.Registry
}

// New returns a directory advertised at self.
func New(logger *zap.Logger, self peer.Address) *Directory {
	return &Directory{
		logger:   logger.Named("bootstrap").With(zap.String("self", string(self))),
		self:     self,
		registry: peer.NewRegistry(self, self),
	}
}

// Peers returns the registered nodes.
func (d *Directory) Peers() []peer.Address {
	return d.registry.All()
}

// HandleMessage answers registrations with the known peers, excluding the
// registrant, and pings with a pong. Anything else is ignored.
func (d *Directory) HandleMessage(_ context.Context, env protocol.Envelope) (*protocol.Envelope, error) {
	switch env.Kind {
	case protocol.KindRegistration:
		addr, err := peer.ParseAddress(env.Sender)
		if err != nil {
			return nil, fmt.Errorf("registration: %w", err)
		}
		if d.registry.Register(addr) {
			d.logger.Info("node registered", zap.String("peer", string(addr)), zap.Int("peers", d.registry.Len()))
		}
		reply := protocol.NewEnvelope(protocol.KindPeerList, string(d.self), protocol.PeerListPayload{
			Peers: peer.Strings(d.registry.Except(addr)),
		})
		return &reply, nil
	case protocol.KindPing:
		reply := protocol.NewEnvelope(protocol.KindPong, string(d.self), nil)
		return &reply, nil
	default:
		return nil, nil
	}
}

// Run serves the directory on listen until ctx is cancelled.
func (d *Directory) Run(ctx context.Context, listen string, timeout time.Duration, metrics protocol.ServerMetrics) error {
	srv, err := protocol.Listen(d.logger, listen, d, timeout, metrics)
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}
