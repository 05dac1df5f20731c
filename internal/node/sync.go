package node

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minicoin/internal/ledger"
	"github.com/goodnatureofminers/minicoin/internal/peer"
	"github.com/goodnatureofminers/minicoin/internal/protocol"
	"github.com/goodnatureofminers/minicoin/pkg/workerpool"
)

// join registers with the bootstrap directory, introduces the node to every
// peer reachable from the returned list and adopts the longest chain among
// them.
func (n *Node) join(ctx context.Context) {
	n.register(ctx)
	if err := n.sync(ctx); err != nil {
		n.logger.Warn("initial sync failed", zap.Error(err))
	}
}

func (n *Node) register(ctx context.Context) {
	bootstrap := n.peers.Bootstrap()
	reply, err := n.transport.Request(ctx, bootstrap, n.envelope(protocol.KindRegistration, nil))
	if err != nil {
		n.logger.Warn("bootstrap registration failed", zap.String("bootstrap", string(bootstrap)), zap.Error(err))
		return
	}
	if reply.Kind != protocol.KindPeerList {
		n.logger.Warn("unexpected bootstrap reply", zap.String("kind", string(reply.Kind)))
		return
	}

	learned, err := n.mergePeerList(reply)
	if err != nil {
		n.logger.Warn("bad bootstrap peer list", zap.Error(err))
		return
	}
	n.logger.Info("registered with bootstrap", zap.Int("peers", len(learned)))
	n.introduce(ctx, learned)
}

// introduce sends a registration to each address and merges the peer lists
// they answer with, repeating for newly learned addresses until the set stops
// growing.
func (n *Node) introduce(ctx context.Context, addrs []peer.Address) {
	for len(addrs) > 0 && ctx.Err() == nil {
		var (
			mu   sync.Mutex
			next []peer.Address
		)
		err := workerpool.Each(ctx, n.cfg.BroadcastWorkers, addrs, func(ctx context.Context, addr peer.Address) error {
			reply, err := n.transport.Request(ctx, addr, n.envelope(protocol.KindRegistration, nil))
			if err != nil {
				return err
			}
			learned, err := n.mergePeerList(reply)
			if err != nil {
				return err
			}
			mu.Lock()
			next = append(next, learned...)
			mu.Unlock()
			return nil
		})
		if err != nil {
			n.logger.Debug("some peers did not answer the handshake", zap.Error(err))
		}
		addrs = next
	}
}

// sync polls every peer for its chain summary and adopts the chain of the
// longest one that shares our genesis block.
func (n *Node) sync(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		n.metrics.ObserveSync(err, start)
	}()

	ours := n.chain.Summary()
	var (
		mu       sync.Mutex
		best     peer.Address
		bestLen  = ours.Length
		genesis  = ours.Genesis.String()
		answered int
	)
	peers := n.peers.All()
	pollErr := workerpool.Each(ctx, n.cfg.BroadcastWorkers, peers, func(ctx context.Context, addr peer.Address) error {
		reply, err := n.transport.Request(ctx, addr, n.envelope(protocol.KindSummaryRequest, nil))
		if err != nil {
			return err
		}
		var s protocol.SummaryPayload
		if err := reply.Decode(&s); err != nil {
			return err
		}

		mu.Lock()
		defer mu.Unlock()
		answered++
		if s.Genesis == genesis && s.Length > bestLen {
			best, bestLen = addr, s.Length
		}
		return nil
	})
	if pollErr != nil {
		n.logger.Debug("summary poll incomplete", zap.Error(pollErr))
	}
	if answered == 0 && len(peers) > 0 {
		return fmt.Errorf("no peer answered the summary poll: %w", pollErr)
	}
	if best == "" {
		return nil
	}
	return n.requestChain(ctx, best)
}

// requestChain asks addr for its full chain and offers it to the ledger.
func (n *Node) requestChain(ctx context.Context, addr peer.Address) error {
	reply, err := n.transport.Request(ctx, addr, n.envelope(protocol.KindChainRequest, nil))
	if err != nil {
		return err
	}
	if reply.Kind != protocol.KindChainResponse {
		return fmt.Errorf("unexpected %s reply to chain request from %s", reply.Kind, addr)
	}
	_, err = n.adoptChain(ctx, addr, reply)
	return err
}

// adoptChain applies the longest-valid-chain rule to a chain response. Ties
// keep the current chain.
func (n *Node) adoptChain(ctx context.Context, from peer.Address, env protocol.Envelope) (bool, error) {
	var p protocol.ChainResponsePayload
	if err := env.Decode(&p); err != nil {
		return false, err
	}
	candidate, err := ledger.BlocksFromRecords(p.Blocks)
	if err != nil {
		return false, err
	}

	replaced, err := n.chain.Replace(candidate)
	n.metrics.ObserveChainReplace(replaced, err)
	if err != nil {
		return false, fmt.Errorf("chain from %s: %w", from, err)
	}
	if !replaced {
		return false, nil
	}

	n.logger.Info("adopted longer chain",
		zap.String("from", string(from)),
		zap.Int("length", len(candidate)),
		zap.Stringer("tip", candidate[len(candidate)-1].Hash),
	)
	n.afterReplace(ctx, n.chain.Snapshot(), from)
	return true, nil
}
