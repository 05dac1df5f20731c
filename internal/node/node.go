package node

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/minicoin/internal/clock"
	"github.com/goodnatureofminers/minicoin/internal/ledger"
	"github.com/goodnatureofminers/minicoin/internal/mempool"
	"github.com/goodnatureofminers/minicoin/internal/peer"
	"github.com/goodnatureofminers/minicoin/internal/pow"
	"github.com/goodnatureofminers/minicoin/internal/protocol"
)

// Deps are the collaborators a node talks to. Archive, Store and Observers
// are optional.
type Deps struct {
	Transport     Transport
	Metrics       Metrics
	MinerMetrics  pow.Metrics
	ServerMetrics protocol.ServerMetrics
	Archive       Archive
	Store         Store
	Observers     []StateObserver
}

// Node owns one ledger, one peer registry and one mempool. All chain
// mutations go through the ledger's lock; no lock is held across network I/O.
type Node struct {
	cfg    Config
	logger *zap.Logger

	chain     *ledger.Ledger
	peers     *peer.Registry
	pool      *mempool.Pool
	miner     *pow.Miner
	transport Transport
	metrics   Metrics
	archive   Archive
	store     Store
	persistMu sync.Mutex

	printMu sync.Mutex
	printer LocalPrinter

	serverMetrics protocol.ServerMetrics
	observers     []StateObserver
	state         atomic.Int32

	// bg scopes work started on behalf of inbound messages.
	bg       context.Context
	cancelBg context.CancelFunc
	asyncMu  sync.Mutex
	closed   bool
	wg       sync.WaitGroup
}

// New validates cfg and assembles a node. Nothing touches the network until
// Run.
func New(logger *zap.Logger, cfg Config, deps Deps) (*Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid node config: %w", err)
	}
	if deps.Transport == nil || deps.Metrics == nil || deps.MinerMetrics == nil || deps.ServerMetrics == nil {
		return nil, errors.New("transport and metrics are required")
	}
	if cfg.BroadcastWorkers <= 0 {
		cfg.BroadcastWorkers = protocol.DefaultBroadcastWorkers
	}

	bg, cancel := context.WithCancel(context.Background())
	n := &Node{
		cfg:           cfg,
		logger:        logger.Named("node").With(zap.String("self", string(cfg.Advertise)), zap.String("role", string(cfg.Role()))),
		chain:         ledger.New(cfg.Params),
		peers:         peer.NewRegistry(cfg.Advertise, cfg.Bootstrap),
		pool:          mempool.New(cfg.TxPerBlock),
		transport:     deps.Transport,
		metrics:       deps.Metrics,
		archive:       deps.Archive,
		store:         deps.Store,
		serverMetrics: deps.ServerMetrics,
		observers:     deps.Observers,
		bg:            bg,
		cancelBg:      cancel,
	}
	n.miner = pow.NewMiner(logger, n.chain, cfg.Params, n.pool, n.submitMined, deps.MinerMetrics, cfg.MineCheckInterval)
	n.state.Store(int32(StateJoining))
	n.metrics.SetState(StateJoining.String())
	n.metrics.SetChainLength(n.chain.Len())
	return n, nil
}

// Restore offers a previously stored chain and peer set. The chain is
// validated like any chain received from a peer.
func (n *Node) Restore(blocks []ledger.Block, addrs []peer.Address) error {
	n.peers.Merge(addrs)
	n.metrics.SetPeers(n.peers.Len())
	if len(blocks) == 0 {
		return nil
	}

	replaced, err := n.chain.Replace(blocks)
	if err != nil {
		return fmt.Errorf("restore chain: %w", err)
	}
	if replaced {
		n.metrics.SetChainLength(n.chain.Len())
		n.logger.Info("chain restored", zap.Int("length", n.chain.Len()))
	}
	return nil
}

// Run binds the gossip listener, joins the network and serves until ctx is
// cancelled. A bind failure is returned before any other network activity.
func (n *Node) Run(ctx context.Context) error {
	srv, err := protocol.Listen(n.logger, n.cfg.Listen, n, n.cfg.RequestTimeout, n.serverMetrics)
	if err != nil {
		return err
	}
	defer n.Close()

	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(ctx)
	}()

	n.join(ctx)
	if ctx.Err() == nil {
		n.setState(StateSynced)
		if n.cfg.Mine {
			n.miner.Start(ctx)
		}
		n.syncLoop(ctx)
	}

	n.setState(StateShuttingDown)
	n.miner.Stop()
	return <-served
}

// Close stops background work started by inbound messages and waits for it.
func (n *Node) Close() {
	n.asyncMu.Lock()
	n.closed = true
	n.asyncMu.Unlock()

	n.cancelBg()
	n.wg.Wait()
}

func (n *Node) syncLoop(ctx context.Context) {
	if n.cfg.SyncInterval <= 0 {
		<-ctx.Done()
		return
	}
	for clock.SleepWithContext(ctx, n.cfg.SyncInterval) == nil {
		if n.peers.Len() == 0 {
			n.register(ctx)
		}
		if err := n.sync(ctx); err != nil {
			n.logger.Warn("periodic sync failed", zap.Error(err))
		}
	}
}

func (n *Node) setState(s State) {
	if State(n.state.Swap(int32(s))) == s {
		return
	}
	n.logger.Info("state changed", zap.Stringer("state", s))
	n.metrics.SetState(s.String())
	for _, o := range n.observers {
		o.OnStateChange(s)
	}
}

// State returns the lifecycle state.
func (n *Node) State() State {
	return State(n.state.Load())
}

// Self returns the advertised address.
func (n *Node) Self() peer.Address {
	return n.cfg.Advertise
}

// Role returns the configured role.
func (n *Node) Role() Role {
	return n.cfg.Role()
}

// ChainSnapshot returns a copy of the chain from genesis to tip.
func (n *Node) ChainSnapshot() []ledger.Block {
	return n.chain.Snapshot()
}

// Block returns the block at index.
func (n *Node) Block(index uint64) (ledger.Block, bool) {
	return n.chain.Block(index)
}

// Summary describes the local chain.
func (n *Node) Summary() ledger.Summary {
	return n.chain.Summary()
}

// Peers returns the known peers.
func (n *Node) Peers() []peer.Address {
	return n.peers.All()
}

// Pending returns the transactions waiting for a block.
func (n *Node) Pending() []mempool.Transaction {
	return n.pool.All()
}

// Mining reports whether the miner is running.
func (n *Node) Mining() bool {
	return n.miner.Enabled()
}

// StopMining stops the miner and reports whether it was running.
func (n *Node) StopMining() bool {
	if !n.miner.Enabled() {
		return false
	}
	n.miner.Stop()
	return true
}

// SetPrinter installs the printer that answers print requests from peers.
func (n *Node) SetPrinter(p LocalPrinter) {
	n.printMu.Lock()
	defer n.printMu.Unlock()
	n.printer = p
}

// RequestPeersPrint asks every known peer to dump its view locally.
func (n *Node) RequestPeersPrint(ctx context.Context) {
	n.broadcast(ctx, protocol.KindPrintRequest, nil, "")
}

// SubmitTransaction queues data as a new transaction and gossips it.
func (n *Node) SubmitTransaction(ctx context.Context, data string) (mempool.Transaction, error) {
	tx := mempool.Transaction{ID: uuid.NewString(), Data: data}
	if _, err := n.pool.Add(tx); err != nil {
		return mempool.Transaction{}, err
	}
	n.async(func(ctx context.Context) {
		n.broadcast(ctx, protocol.KindNewTransaction, protocol.TransactionPayload{ID: tx.ID, Data: tx.Data}, "")
	})
	return tx, nil
}

// submitMined is the miner's SubmitFunc. The ledger re-validates against the
// live tip, so a block mined on a tip that moved meanwhile is dropped.
func (n *Node) submitMined(ctx context.Context, b ledger.Block) {
	err := n.chain.Append(b)
	n.metrics.ObserveBlock("local", err)
	if err != nil {
		n.logger.Debug("discarding mined block", zap.Uint64("index", b.Index), zap.Error(err))
		return
	}
	n.logger.Info("mined block appended", zap.Uint64("index", b.Index), zap.Stringer("hash", b.Hash))
	n.afterAppend(ctx, b, "")
}

// afterAppend runs the side effects of a block joining the chain and gossips
// it to every peer except the one it came from.
func (n *Node) afterAppend(ctx context.Context, b ledger.Block, from peer.Address) {
	n.miner.Restart()
	n.metrics.SetChainLength(n.chain.Len())
	n.purgeConfirmed([]ledger.Block{b})
	if n.archive != nil {
		n.archive.Publish(ctx, []ledger.Block{b})
	}
	n.persistChain()

	payload := protocol.NewBlockPayload{
		Block:       ledger.NewRecord(b),
		ChainLength: uint64(n.chain.Len()),
	}
	n.async(func(ctx context.Context) {
		n.broadcast(ctx, protocol.KindNewBlock, payload, from)
	})
}

// afterReplace runs the side effects of adopting a peer's chain.
func (n *Node) afterReplace(ctx context.Context, chain []ledger.Block, from peer.Address) {
	n.miner.Restart()
	n.metrics.SetChainLength(len(chain))
	n.purgeConfirmed(chain)
	if n.archive != nil {
		n.archive.Publish(ctx, chain)
	}
	n.persistChain()

	tip := chain[len(chain)-1]
	payload := protocol.NewBlockPayload{
		Block:       ledger.NewRecord(tip),
		ChainLength: uint64(len(chain)),
	}
	n.async(func(ctx context.Context) {
		n.broadcast(ctx, protocol.KindNewBlock, payload, from)
	})
}

// persistChain writes the current chain to the store. The snapshot is taken
// under persistMu, so the last write always reflects the latest chain even
// when appends and replacements race.
func (n *Node) persistChain() {
	if n.store == nil {
		return
	}
	n.persistMu.Lock()
	defer n.persistMu.Unlock()
	if err := n.store.SaveChain(n.chain.Snapshot()); err != nil {
		n.logger.Warn("persist chain failed", zap.Error(err))
	}
}

func (n *Node) purgeConfirmed(blocks []ledger.Block) {
	var ids []string
	for _, b := range blocks {
		if txs, ok := mempool.DecodePayload(b.Payload); ok {
			ids = append(ids, mempool.IDs(txs)...)
		}
	}
	if removed := n.pool.Purge(ids); removed > 0 {
		n.logger.Debug("confirmed transactions purged", zap.Int("count", removed))
	}
}

func (n *Node) envelope(kind protocol.Kind, data any) protocol.Envelope {
	return protocol.NewEnvelope(kind, string(n.cfg.Advertise), data)
}

func (n *Node) broadcast(ctx context.Context, kind protocol.Kind, data any, except peer.Address) {
	targets := n.peers.Except(except)
	if len(targets) == 0 {
		return
	}
	if err := protocol.Broadcast(ctx, n.transport, targets, n.envelope(kind, data), n.cfg.BroadcastWorkers); err != nil {
		n.logger.Debug("broadcast incomplete", zap.String("kind", string(kind)), zap.Error(err))
	}
}

// async runs fn in the background, bounded by the node's lifetime.
func (n *Node) async(fn func(ctx context.Context)) {
	n.asyncMu.Lock()
	defer n.asyncMu.Unlock()
	if n.closed {
		return
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(n.bg, n.asyncTimeout())
		defer cancel()
		fn(ctx)
	}()
}

func (n *Node) asyncTimeout() time.Duration {
	// a broadcast makes len(peers)/workers rounds of exchanges
	rounds := n.peers.Len()/n.cfg.BroadcastWorkers + 1
	return time.Duration(rounds+1) * n.cfg.RequestTimeout
}
