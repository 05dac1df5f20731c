// Package archive streams the blocks a node accepts into a long-term store
// without holding up gossip handling.
package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minicoin/internal/ledger"
	"github.com/goodnatureofminers/minicoin/pkg/batcher"
	"github.com/goodnatureofminers/minicoin/pkg/workerpool"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type Repository interface {
	InsertBlocks(ctx context.Context, node string, blocks []ledger.Block) error
	MaxBlockIndex(ctx context.Context, node string) (uint64, bool, error)
}

// Config tunes batching. Zero values fall back to the defaults.
type Config struct {
	BatchSize       int
	FlushInterval   time.Duration
	FlushRPS        int
	BackfillWorkers int
}

const (
	DefaultBatchSize     = 500
	DefaultFlushInterval = 2 * time.Second
)

// Archive batches published blocks into a Repository under one node name.
type Archive struct {
	logger  *zap.Logger
	node    string
	repo    Repository
	cfg     Config
	batcher *batcher.Batcher[ledger.Block]
}

// New returns an archive that records blocks as seen by node.
func New(logger *zap.Logger, node string, repo Repository, cfg Config) *Archive {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}
	if cfg.BackfillWorkers <= 0 {
		cfg.BackfillWorkers = 1
	}

	a := &Archive{
		logger: logger.Named("archive").With(zap.String("node", node)),
		node:   node,
		repo:   repo,
		cfg:    cfg,
	}
	a.batcher = batcher.New(a.logger, a.insert, cfg.BatchSize, cfg.FlushInterval, cfg.FlushRPS)
	return a
}

func (a *Archive) insert(ctx context.Context, blocks []ledger.Block) error {
	return a.repo.InsertBlocks(ctx, a.node, blocks)
}

// Start begins flushing in the background.
func (a *Archive) Start(ctx context.Context) {
	a.batcher.Start(ctx)
}

// Stop flushes what is queued and returns once the last batch is written.
func (a *Archive) Stop() {
	a.batcher.Stop()
}

// Publish queues blocks for archiving. Blocks that cannot be queued are
// logged and dropped; Backfill picks them up on the next start.
func (a *Archive) Publish(ctx context.Context, blocks []ledger.Block) {
	for _, b := range blocks {
		if err := a.batcher.Add(ctx, b); err != nil {
			a.logger.Warn("block not archived", zap.Uint64("index", b.Index), zap.Error(err))
			return
		}
	}
}

// Backfill writes the part of chain the repository has not seen yet, in
// chunks of BatchSize spread over BackfillWorkers goroutines.
func (a *Archive) Backfill(ctx context.Context, chain []ledger.Block) error {
	last, found, err := a.repo.MaxBlockIndex(ctx, a.node)
	if err != nil {
		return fmt.Errorf("archived height: %w", err)
	}

	from := uint64(0)
	if found {
		from = last + 1
	}
	if from >= uint64(len(chain)) {
		return nil
	}

	missing := chain[from:]
	chunks := chunk(missing, a.cfg.BatchSize)
	a.logger.Info("backfilling archive", zap.Uint64("from", from), zap.Int("blocks", len(missing)), zap.Int("chunks", len(chunks)))

	err = workerpool.Process(ctx, a.cfg.BackfillWorkers, chunks, a.insert)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("backfill: %w", err)
	}
	return err
}

func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for len(items) > 0 {
		n := min(size, len(items))
		out = append(out, items[:n:n])
		items = items[n:]
	}
	return out
}
