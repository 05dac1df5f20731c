package protocol

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/minicoin/internal/peer"
	"github.com/goodnatureofminers/minicoin/pkg/workerpool"
)

// DefaultBroadcastWorkers bounds concurrent deliveries of one broadcast.
const DefaultBroadcastWorkers = 8

// Broadcast sends env to every target. Deliveries are independent: a slow or
// dead peer delays only its own delivery. The returned error joins the
// per-peer failures.
func Broadcast(ctx context.Context, s Sender, targets []peer.Address, env Envelope, workers int) error {
	if workers <= 0 {
		workers = DefaultBroadcastWorkers
	}
	return workerpool.Each(ctx, workers, targets, func(ctx context.Context, addr peer.Address) error {
		if err := s.Send(ctx, addr, env); err != nil {
			return fmt.Errorf("broadcast %s to %s: %w", env.Kind, addr, err)
		}
		return nil
	})
}
