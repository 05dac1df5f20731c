package pow

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minicoin/internal/ledger"
)

// Job outcomes reported to Metrics.
const (
	OutcomeMined     = "mined"
	OutcomeCancelled = "cancelled"
)

// SubmitFunc receives every block the miner finds. It runs on the mining
// goroutine and must not call Stop.
type SubmitFunc func(ctx context.Context, b ledger.Block)

// Miner runs at most one mining job at a time. Each job is built from the tip
// observed when it starts; Restart abandons the current job so the next one
// picks up the new tip.
type Miner struct {
	logger        *zap.Logger
	chain         ChainView
	params        ledger.Params
	payloads      PayloadSource
	submit        SubmitFunc
	metrics       Metrics
	checkInterval uint64
	now           func() time.Time

	mu sync.Mutex
	// stopLoop is non-nil while a loop runs and has not been asked to stop;
	// done is closed once that loop has exited.
	stopLoop  context.CancelFunc
	cancelJob context.CancelFunc
	done      chan struct{}
}

// NewMiner constructs a Miner. A zero checkInterval selects DefaultCheckInterval.
func NewMiner(
	logger *zap.Logger,
	chain ChainView,
	params ledger.Params,
	payloads PayloadSource,
	submit SubmitFunc,
	metrics Metrics,
	checkInterval uint64,
) *Miner {
	if checkInterval == 0 {
		checkInterval = DefaultCheckInterval
	}
	return &Miner{
		logger:        logger.Named("miner"),
		chain:         chain,
		params:        params,
		payloads:      payloads,
		submit:        submit,
		metrics:       metrics,
		checkInterval: checkInterval,
		now:           time.Now,
	}
}

// Start enables mining. It is a no-op when the miner is already running. A
// loop that is still shutting down after Stop is waited for first, so Start
// always leaves mining on.
func (m *Miner) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for m.done != nil {
		if m.stopLoop != nil {
			return
		}
		done := m.done
		m.mu.Unlock()
		<-done
		m.mu.Lock()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	m.stopLoop = cancel
	m.done = done
	go m.loop(loopCtx, done)
	m.logger.Info("mining started")
}

// Restart abandons the in-flight job, if any. It never blocks on the mining
// goroutine, so it is safe to call from a SubmitFunc.
func (m *Miner) Restart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancelJob != nil {
		m.cancelJob()
	}
}

// Stop disables mining and waits for the mining goroutine to exit.
func (m *Miner) Stop() {
	m.mu.Lock()
	done := m.done
	if done == nil {
		m.mu.Unlock()
		return
	}
	if m.stopLoop != nil {
		m.stopLoop()
		m.stopLoop = nil
	}
	m.mu.Unlock()

	<-done
	m.logger.Info("mining stopped")
}

// Enabled reports whether mining is on. It turns false as soon as Stop is
// called, before the loop has exited.
func (m *Miner) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopLoop != nil
}

func (m *Miner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer func() {
		m.mu.Lock()
		if m.stopLoop != nil {
			m.stopLoop()
		}
		m.stopLoop = nil
		m.cancelJob = nil
		m.done = nil
		m.mu.Unlock()
	}()

	for ctx.Err() == nil {
		m.runJob(ctx)
	}
}

func (m *Miner) runJob(ctx context.Context) {
	jobCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The cancel func is published before the tip is read: a tip change that
	// lands after this point cancels the job, one that landed before it is
	// already visible below.
	m.mu.Lock()
	m.cancelJob = cancel
	m.mu.Unlock()

	tip := m.chain.Tip()
	skeleton := ledger.Block{
		Index:        tip.Index + 1,
		Timestamp:    m.now().UnixNano(),
		Payload:      m.payloads.NextPayload(),
		PreviousHash: tip.Hash,
	}
	difficulty := m.params.DifficultyAt(skeleton.Index)

	started := m.now()
	res, ok := Search(jobCtx, skeleton, difficulty, m.checkInterval)
	if !ok {
		m.metrics.ObserveJob(OutcomeCancelled, res.Attempts, started)
		return
	}
	m.metrics.ObserveJob(OutcomeMined, res.Attempts, started)
	m.logger.Info("block mined",
		zap.Uint64("index", res.Block.Index),
		zap.Stringer("hash", res.Block.Hash),
		zap.Uint64("attempts", res.Attempts),
		zap.Duration("elapsed", time.Since(started)),
	)

	if ctx.Err() != nil {
		return
	}
	m.submit(ctx, res.Block)
}
