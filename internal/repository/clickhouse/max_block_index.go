package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const maxBlockIndexQuery = `
SELECT toUInt64(max(height)) AS height, count() AS cnt
FROM minicoin_blocks FINAL
WHERE node = ?`

// MaxBlockIndex returns the highest archived height for node. The boolean is
// false when nothing has been archived yet.
func (r *Repository) MaxBlockIndex(ctx context.Context, node string) (height uint64, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_index", node, err, start)
	}()

	row := r.conn.QueryRow(ctx, maxBlockIndexQuery, node)
	if err = row.Err(); err != nil {
		return 0, false, fmt.Errorf("query max block index: %w", err)
	}

	var cnt uint64
	if err = row.Scan(&height, &cnt); err != nil {
		return 0, false, fmt.Errorf("scan max block index: %w", err)
	}
	if cnt == 0 {
		return 0, false, nil
	}
	return height, true, nil
}
