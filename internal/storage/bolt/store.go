// Package bolt persists a node's peer set and chain between restarts in a
// single bbolt file. The stored chain is only ever offered to the ledger,
// which validates it like a chain received from a peer.
package bolt

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/goodnatureofminers/minicoin/internal/ledger"
	"github.com/goodnatureofminers/minicoin/internal/peer"
)

var (
	bucketPeers = []byte("peers")
	bucketChain = []byte("chain")
)

// Store is a bbolt-backed snapshot of peers and blocks.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketPeers, bucketChain} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// SavePeers replaces the stored peer set with addrs.
func (s *Store) SavePeers(addrs []peer.Address) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := resetBucket(tx, bucketPeers)
		if err != nil {
			return err
		}
		for _, a := range addrs {
			if err := b.Put([]byte(a), nil); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadPeers returns the stored peer set in key order.
func (s *Store) LoadPeers() ([]peer.Address, error) {
	var out []peer.Address
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPeers).ForEach(func(k, _ []byte) error {
			out = append(out, peer.Address(k))
			return nil
		})
	})
	return out, err
}

// SaveChain makes the stored chain equal to chain. Blocks are rewritten from
// the tip down until one already stored under the same hash is found, and
// anything past the new tip is removed, so appending a block touches one key.
func (s *Store) SaveChain(chain []ledger.Block) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketChain)
		for i := len(chain) - 1; i >= 0; i-- {
			same, err := storedHashIs(b, chain[i])
			if err != nil {
				return err
			}
			if same {
				break
			}
			if err := putBlock(b, chain[i]); err != nil {
				return err
			}
		}
		return truncate(b, uint64(len(chain)))
	})
}

// LoadChain returns the stored blocks ordered by index. An empty store
// yields an empty chain.
func (s *Store) LoadChain() ([]ledger.Block, error) {
	var records []ledger.Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketChain).ForEach(func(k, v []byte) error {
			var r ledger.Record
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("block %d: %w", binary.BigEndian.Uint64(k), err)
			}
			records = append(records, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	blocks, err := ledger.BlocksFromRecords(records)
	if err != nil {
		return nil, err
	}
	// files written before genesis was persisted start at index 1
	if len(blocks) > 0 && blocks[0].Index == 1 {
		blocks = append([]ledger.Block{ledger.Genesis()}, blocks...)
	}
	return blocks, nil
}

func storedHashIs(b *bbolt.Bucket, blk ledger.Block) (bool, error) {
	v := b.Get(indexKey(blk.Index))
	if v == nil {
		return false, nil
	}
	var r ledger.Record
	if err := json.Unmarshal(v, &r); err != nil {
		return false, fmt.Errorf("block %d: %w", blk.Index, err)
	}
	return r.Hash == blk.Hash.String(), nil
}

func putBlock(b *bbolt.Bucket, blk ledger.Block) error {
	v, err := json.Marshal(ledger.NewRecord(blk))
	if err != nil {
		return err
	}
	if err := b.Put(indexKey(blk.Index), v); err != nil {
		return fmt.Errorf("put block %d: %w", blk.Index, err)
	}
	return nil
}

// truncate deletes every block at index length and above.
func truncate(b *bbolt.Bucket, length uint64) error {
	c := b.Cursor()
	for k, _ := c.Seek(indexKey(length)); k != nil; k, _ = c.Seek(indexKey(length)) {
		if err := c.Delete(); err != nil {
			return err
		}
	}
	return nil
}

func resetBucket(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	if err := tx.DeleteBucket(name); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
		return nil, err
	}
	return tx.CreateBucket(name)
}

// indexKey is big-endian so bbolt's byte order matches block order.
func indexKey(i uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, i)
	return k
}
