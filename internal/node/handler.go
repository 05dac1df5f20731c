package node

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minicoin/internal/ledger"
	"github.com/goodnatureofminers/minicoin/internal/mempool"
	"github.com/goodnatureofminers/minicoin/internal/peer"
	"github.com/goodnatureofminers/minicoin/internal/protocol"
)

// HandleMessage dispatches one inbound envelope. Rejections are returned as
// errors and never change local state.
func (n *Node) HandleMessage(ctx context.Context, env protocol.Envelope) (*protocol.Envelope, error) {
	sender, err := peer.ParseAddress(env.Sender)
	if err != nil {
		return nil, fmt.Errorf("%s from %q: %w", env.Kind, env.Sender, err)
	}

	switch env.Kind {
	case protocol.KindRegistration:
		return n.handleRegistration(sender), nil
	case protocol.KindPeerList:
		return nil, n.handlePeerList(env)
	case protocol.KindNewBlock:
		return nil, n.handleNewBlock(ctx, sender, env)
	case protocol.KindChainRequest:
		reply := n.envelope(protocol.KindChainResponse, protocol.ChainResponsePayload{
			Blocks: ledger.NewRecords(n.chain.Snapshot()),
		})
		return &reply, nil
	case protocol.KindChainResponse:
		_, err := n.adoptChain(ctx, sender, env)
		return nil, err
	case protocol.KindNewTransaction:
		return nil, n.handleTransaction(sender, env)
	case protocol.KindSummaryRequest:
		reply := n.envelope(protocol.KindSummaryResponse, summaryPayload(n.chain.Summary()))
		return &reply, nil
	case protocol.KindPing:
		reply := n.envelope(protocol.KindPong, nil)
		return &reply, nil
	case protocol.KindPrintRequest:
		n.printLocally(sender)
		return nil, nil
	case protocol.KindSummaryResponse, protocol.KindPong:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported kind %q", env.Kind)
	}
}

func (n *Node) printLocally(sender peer.Address) {
	n.printMu.Lock()
	defer n.printMu.Unlock()
	if n.printer == nil {
		return
	}
	if err := n.printer.Print(); err != nil {
		n.logger.Warn("print requested by peer failed", zap.String("peer", string(sender)), zap.Error(err))
	}
}

func (n *Node) handleRegistration(sender peer.Address) *protocol.Envelope {
	if n.peers.Register(sender) {
		n.logger.Info("peer registered", zap.String("peer", string(sender)))
		n.peersChanged()
	}
	reply := n.envelope(protocol.KindPeerList, protocol.PeerListPayload{
		Peers: peer.Strings(n.peers.Except(sender)),
	})
	return &reply
}

func (n *Node) handlePeerList(env protocol.Envelope) error {
	learned, err := n.mergePeerList(env)
	if err != nil {
		return err
	}
	if len(learned) > 0 {
		n.async(func(ctx context.Context) {
			n.introduce(ctx, learned)
		})
	}
	return nil
}

func (n *Node) mergePeerList(env protocol.Envelope) ([]peer.Address, error) {
	var p protocol.PeerListPayload
	if err := env.Decode(&p); err != nil {
		return nil, err
	}
	learned := n.peers.Merge(peer.ParseAddresses(p.Peers))
	if len(learned) > 0 {
		n.logger.Info("peers learned", zap.Strings("peers", peer.Strings(learned)))
		n.peersChanged()
	}
	return learned, nil
}

func (n *Node) peersChanged() {
	n.metrics.SetPeers(n.peers.Len())
	if n.store != nil {
		if err := n.store.SavePeers(n.peers.All()); err != nil {
			n.logger.Warn("persist peers failed", zap.Error(err))
		}
	}
}

func (n *Node) handleNewBlock(ctx context.Context, sender peer.Address, env protocol.Envelope) error {
	var p protocol.NewBlockPayload
	if err := env.Decode(&p); err != nil {
		return err
	}
	b, err := p.Block.Block()
	if err != nil {
		return err
	}

	err = n.chain.Append(b)
	switch {
	case err == nil:
		n.metrics.ObserveBlock("peer", nil)
		n.logger.Info("block accepted",
			zap.Uint64("index", b.Index),
			zap.Stringer("hash", b.Hash),
			zap.String("from", string(sender)),
		)
		n.afterAppend(ctx, b, sender)
		return nil
	case errors.Is(err, ledger.ErrKnownBlock):
		return nil
	}

	n.metrics.ObserveBlock("peer", err)
	if p.ChainLength > uint64(n.chain.Len()) {
		n.logger.Info("peer is ahead, requesting its chain",
			zap.String("peer", string(sender)),
			zap.Uint64("their_length", p.ChainLength),
			zap.Int("our_length", n.chain.Len()),
		)
		n.async(func(ctx context.Context) {
			if err := n.requestChain(ctx, sender); err != nil {
				n.logger.Warn("chain request failed", zap.String("peer", string(sender)), zap.Error(err))
			}
		})
		return nil
	}
	return fmt.Errorf("block %d from %s: %w", b.Index, sender, err)
}

func (n *Node) handleTransaction(sender peer.Address, env protocol.Envelope) error {
	var p protocol.TransactionPayload
	if err := env.Decode(&p); err != nil {
		return err
	}
	added, err := n.pool.Add(mempool.Transaction{ID: p.ID, Data: p.Data})
	if err != nil || !added {
		return err
	}
	n.async(func(ctx context.Context) {
		n.broadcast(ctx, protocol.KindNewTransaction, p, sender)
	})
	return nil
}

func summaryPayload(s ledger.Summary) protocol.SummaryPayload {
	return protocol.SummaryPayload{
		Length:  s.Length,
		Tip:     s.Tip.String(),
		Genesis: s.Genesis.String(),
	}
}
