// Package mempool holds transactions that are waiting to be included in a
// block.
package mempool

import (
	"encoding/json"
	"errors"
	"sync"
)

// DefaultBlockSize is how many transactions a miner packs into one block.
const DefaultBlockSize = 10

// ErrEmptyTransaction is returned for transactions without an ID.
var ErrEmptyTransaction = errors.New("transaction id is required")

// Transaction is an opaque piece of data with a unique ID.
type Transaction struct {
	ID   string `json:"id"`
	Data string `json:"data"`
}

// Pool is an insertion-ordered set of pending transactions.
type Pool struct {
	blockSize int

	mu      sync.Mutex
	order   []string
	pending map[string]Transaction
}

// New returns an empty pool that hands out up to blockSize transactions per
// block.
func New(blockSize int) *Pool {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Pool{
		blockSize: blockSize,
		pending:   make(map[string]Transaction),
	}
}

// Add queues tx and reports whether it was not already pending.
func (p *Pool) Add(tx Transaction) (bool, error) {
	if tx.ID == "" {
		return false, ErrEmptyTransaction
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.pending[tx.ID]; ok {
		return false, nil
	}
	p.pending[tx.ID] = tx
	p.order = append(p.order, tx.ID)
	return true, nil
}

// Take returns up to n of the oldest pending transactions without removing
// them; they leave the pool once a block containing them is accepted.
func (p *Pool) Take(n int) []Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Transaction, 0, min(n, len(p.order)))
	for _, id := range p.order {
		if len(out) == n {
			break
		}
		out = append(out, p.pending[id])
	}
	return out
}

// Purge removes the given transactions.
func (p *Pool) Purge(ids []string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	removed := 0
	for _, id := range ids {
		if _, ok := p.pending[id]; ok {
			delete(p.pending, id)
			removed++
		}
	}
	if removed == 0 {
		return 0
	}

	kept := p.order[:0]
	for _, id := range p.order {
		if _, ok := p.pending[id]; ok {
			kept = append(kept, id)
		}
	}
	p.order = kept
	return removed
}

// Len returns the number of pending transactions.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.order)
}

// All returns every pending transaction, oldest first.
func (p *Pool) All() []Transaction {
	return p.Take(p.Len())
}

// NextPayload encodes the next batch of transactions as a block payload.
func (p *Pool) NextPayload() []byte {
	return EncodePayload(p.Take(p.blockSize))
}

// EncodePayload turns a transaction batch into block payload bytes.
func EncodePayload(txs []Transaction) []byte {
	if txs == nil {
		txs = []Transaction{}
	}
	b, err := json.Marshal(txs)
	if err != nil {
		return nil
	}
	return b
}

// DecodePayload reads the transactions packed into a block payload. Payloads
// that are not transaction batches yield false.
func DecodePayload(payload []byte) ([]Transaction, bool) {
	var txs []Transaction
	if err := json.Unmarshal(payload, &txs); err != nil {
		return nil, false
	}
	return txs, true
}

// IDs returns the transaction IDs.
func IDs(txs []Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}
