package ledger

import (
	"sync"
)

// Summary describes a chain without carrying its blocks.
type Summary struct {
	Length  uint64
	Tip     Hash
	Genesis Hash
}

// Ledger is a chain guarded by a single lock. Every reader sees a complete,
// valid chain; mutations validate before they swap state in.
type Ledger struct {
	params Params

	mu     sync.RWMutex
	blocks []Block
}

// New returns a ledger holding only the genesis block.
func New(params Params) *Ledger {
	return &Ledger{
		params: params,
		blocks: []Block{Genesis()},
	}
}

// Params returns the consensus params the ledger validates against.
func (l *Ledger) Params() Params {
	return l.params
}

// Len returns the number of blocks including genesis.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// Tip returns the last block.
func (l *Ledger) Tip() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.blocks[len(l.blocks)-1]
}

// Block returns the block at index, if present.
func (l *Ledger) Block(index uint64) (Block, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index >= uint64(len(l.blocks)) {
		return Block{}, false
	}
	return l.blocks[index], true
}

// Snapshot returns a copy of the chain from genesis to tip.
func (l *Ledger) Snapshot() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// Summary returns the chain length, tip hash and genesis hash.
func (l *Ledger) Summary() Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Summary{
		Length:  uint64(len(l.blocks)),
		Tip:     l.blocks[len(l.blocks)-1].Hash,
		Genesis: l.blocks[0].Hash,
	}
}

// Append adds b when it is a valid successor of the current tip. A block that
// is already part of the chain yields ErrKnownBlock and changes nothing.
func (l *Ledger) Append(b Block) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b.Index < uint64(len(l.blocks)) && l.blocks[b.Index].Hash == b.Hash {
		return ErrKnownBlock
	}
	tip := l.blocks[len(l.blocks)-1]
	if err := ValidateBlock(b, tip, l.params.DifficultyAt(b.Index)); err != nil {
		return err
	}
	l.blocks = append(l.blocks, b)
	return nil
}

// Replace adopts candidate under the longest-valid-chain rule of
// ReplaceIfBetter. It returns false with a nil error when candidate is valid
// but not longer, and false with the validation error when it is invalid.
func (l *Ledger) Replace(candidate []Block) (bool, error) {
	if len(candidate) <= l.Len() {
		return false, nil
	}

	// Validation is independent of local state, so it runs outside the lock.
	chain := make([]Block, len(candidate))
	copy(chain, candidate)
	if err := ValidateChain(chain, l.params); err != nil {
		return false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(chain) <= len(l.blocks) {
		return false, nil
	}
	l.blocks = chain
	return true, nil
}
