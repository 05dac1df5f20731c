package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/minicoin/internal/ledger"
)

const insertBlocksQuery = `
INSERT INTO minicoin_blocks (
	node,
	height,
	hash,
	previous_hash,
	timestamp_ns,
	nonce,
	payload
) VALUES`

// InsertBlocks stores blocks as seen by node. Re-inserting a height replaces
// the earlier row once ClickHouse merges the parts.
func (r *Repository) InsertBlocks(ctx context.Context, node string, blocks []ledger.Block) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_blocks", node, err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, b := range blocks {
		if err = batch.Append(
			node,
			b.Index,
			b.Hash.String(),
			b.PreviousHash.String(),
			b.Timestamp,
			b.Nonce,
			string(b.Payload),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block %d: %w", b.Index, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
