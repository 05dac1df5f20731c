// Package ledger defines the block and chain model and the rules that decide
// whether a block or a chain is valid.
package ledger

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/sha3"
)

// Hash is a 32-byte block digest.
type Hash = chainhash.Hash

// Block is one ledger entry. It is immutable once mined or accepted.
type Block struct {
	Index        uint64
	Timestamp    int64 // unix nanoseconds
	Payload      []byte
	PreviousHash Hash
	Nonce        uint64
	Hash         Hash
}

// String renders a one-line description used in logs.
func (b Block) String() string {
	return fmt.Sprintf("block #%d %s (prev %s, nonce %d, %d bytes)",
		b.Index, b.Hash, b.PreviousHash, b.Nonce, len(b.Payload))
}

// Digester computes block digests for a fixed skeleton while the nonce varies.
// The canonical encoding is little-endian:
//
//	index u64 | timestamp i64 | previous_hash [32] | len(payload) u64 | payload | nonce u64
type Digester struct {
	buf []byte
}

// NewDigester encodes every field of b except the nonce and the hash.
func NewDigester(b Block) *Digester {
	buf := make([]byte, 0, 8+8+chainhash.HashSize+8+len(b.Payload)+8)
	buf = binary.LittleEndian.AppendUint64(buf, b.Index)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(b.Timestamp))
	buf = append(buf, b.PreviousHash[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(b.Payload)))
	buf = append(buf, b.Payload...)
	buf = binary.LittleEndian.AppendUint64(buf, 0)
	return &Digester{buf: buf}
}

// Sum returns the digest of the skeleton with the given nonce.
func (d *Digester) Sum(nonce uint64) Hash {
	binary.LittleEndian.PutUint64(d.buf[len(d.buf)-8:], nonce)
	return Hash(sha3.Sum256(d.buf))
}

// ComputeHash returns the SHA3-256 digest of the block's canonical encoding.
// The stored Hash field is ignored.
func ComputeHash(b Block) Hash {
	return NewDigester(b).Sum(b.Nonce)
}

// Seal returns a copy of b with Hash set to its computed digest.
func Seal(b Block) Block {
	b.Hash = ComputeHash(b)
	return b
}
