// Package pow implements the proof-of-work search and the cancellable mining
// loop built on top of it.
package pow

import (
	"context"
	"math"

	"github.com/goodnatureofminers/minicoin/internal/ledger"
)

// DefaultCheckInterval is how many nonces are tried between cancellation checks.
const DefaultCheckInterval uint64 = 1024

// Result is the outcome of a successful search.
type Result struct {
	Block    ledger.Block
	Attempts uint64
}

// Search looks for a nonce that makes the skeleton's hash satisfy difficulty,
// trying nonces from zero upwards. It returns false with no block when ctx is
// cancelled first; Attempts is still filled in so callers can account for the
// work spent.
func Search(ctx context.Context, skeleton ledger.Block, difficulty uint32, checkInterval uint64) (Result, bool) {
	if checkInterval == 0 {
		checkInterval = DefaultCheckInterval
	}

	digester := ledger.NewDigester(skeleton)
	for nonce := uint64(0); ; nonce++ {
		if nonce%checkInterval == 0 && ctx.Err() != nil {
			return Result{Attempts: nonce}, false
		}

		hash := digester.Sum(nonce)
		if ledger.MeetsDifficulty(hash, difficulty) {
			b := skeleton
			b.Nonce = nonce
			b.Hash = hash
			return Result{Block: b, Attempts: nonce + 1}, true
		}

		if nonce == math.MaxUint64 {
			return Result{Attempts: nonce}, false
		}
	}
}
