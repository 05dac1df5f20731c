package ledger

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/btcsuite/btcd/blockchain"
)

const (
	// DefaultDifficulty is the number of leading zero bits required when no
	// other value is configured.
	DefaultDifficulty uint32 = 16
	// MaxDifficulty is the largest supported difficulty.
	MaxDifficulty uint32 = 255
)

// Retarget switches the difficulty for every block from FromIndex onwards.
type Retarget struct {
	FromIndex  uint64
	Difficulty uint32
}

// Params are the consensus parameters a chain is validated against.
type Params struct {
	Difficulty uint32
	Retargets  []Retarget
}

// DefaultParams returns params with a constant DefaultDifficulty.
func DefaultParams() Params {
	return Params{Difficulty: DefaultDifficulty}
}

// Validate checks the difficulty values and the ordering of retargets.
func (p Params) Validate() error {
	if p.Difficulty > MaxDifficulty {
		return fmt.Errorf("difficulty %d exceeds %d", p.Difficulty, MaxDifficulty)
	}
	for i, r := range p.Retargets {
		if r.Difficulty > MaxDifficulty {
			return fmt.Errorf("retarget %d: difficulty %d exceeds %d", i, r.Difficulty, MaxDifficulty)
		}
		if r.FromIndex == 0 {
			return fmt.Errorf("retarget %d: genesis difficulty cannot change", i)
		}
		if i > 0 && r.FromIndex <= p.Retargets[i-1].FromIndex {
			return fmt.Errorf("retarget %d: indexes must be strictly increasing", i)
		}
	}
	return nil
}

// DifficultyAt returns the difficulty in force for the block at index.
func (p Params) DifficultyAt(index uint64) uint32 {
	i := sort.Search(len(p.Retargets), func(i int) bool {
		return p.Retargets[i].FromIndex > index
	})
	if i == 0 {
		return p.Difficulty
	}
	return p.Retargets[i-1].Difficulty
}

// Target returns the exclusive upper bound a hash must fall under for the
// given difficulty: 2^(256-difficulty).
func Target(difficulty uint32) *big.Int {
	if difficulty > MaxDifficulty {
		difficulty = MaxDifficulty
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(256-difficulty))
}

// MeetsDifficulty reports whether h, read as a little-endian 256-bit integer
// like Bitcoin block hashes, is below the target for difficulty.
func MeetsDifficulty(h Hash, difficulty uint32) bool {
	return blockchain.HashToBig(&h).Cmp(Target(difficulty)) < 0
}
