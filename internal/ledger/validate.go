package ledger

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	ErrEmptyChain           = errors.New("chain is empty")
	ErrGenesisMismatch      = errors.New("genesis block mismatch")
	ErrIndexMismatch        = errors.New("block index does not follow previous block")
	ErrPreviousHashMismatch = errors.New("previous hash does not link to previous block")
	ErrHashMismatch         = errors.New("block hash does not match its contents")
	ErrInsufficientWork     = errors.New("block hash does not satisfy difficulty")
	ErrKnownBlock           = errors.New("block already in chain")
)

// ValidateBlock checks that b is a valid immediate successor of prev under the
// given difficulty.
func ValidateBlock(b, prev Block, difficulty uint32) error {
	if b.Index != prev.Index+1 {
		return fmt.Errorf("%w: index %d after %d", ErrIndexMismatch, b.Index, prev.Index)
	}
	if b.PreviousHash != prev.Hash {
		return fmt.Errorf("%w: block %d", ErrPreviousHashMismatch, b.Index)
	}
	if ComputeHash(b) != b.Hash {
		return fmt.Errorf("%w: block %d", ErrHashMismatch, b.Index)
	}
	if !MeetsDifficulty(b.Hash, difficulty) {
		return fmt.Errorf("%w: block %d, difficulty %d", ErrInsufficientWork, b.Index, difficulty)
	}
	return nil
}

// IsValidBlock is the boolean form of ValidateBlock.
func IsValidBlock(b, prev Block, difficulty uint32) bool {
	return ValidateBlock(b, prev, difficulty) == nil
}

// ValidateChain checks the genesis block and every link of chain, each block
// against the difficulty params prescribe for its own height.
func ValidateChain(chain []Block, params Params) error {
	if len(chain) == 0 {
		return ErrEmptyChain
	}
	if !IsGenesis(chain[0]) {
		return ErrGenesisMismatch
	}
	for i := 1; i < len(chain); i++ {
		if err := ValidateBlock(chain[i], chain[i-1], params.DifficultyAt(chain[i].Index)); err != nil {
			return err
		}
	}
	return nil
}

// IsValidChain is the boolean form of ValidateChain.
func IsValidChain(chain []Block, params Params) bool {
	return ValidateChain(chain, params) == nil
}

// ReplaceIfBetter returns candidate when it is valid and strictly longer than
// current, and current otherwise. Ties keep current.
func ReplaceIfBetter(current, candidate []Block, params Params) ([]Block, bool) {
	if len(candidate) <= len(current) {
		return current, false
	}
	if !IsValidChain(candidate, params) {
		return current, false
	}
	return candidate, true
}

func equalBlocks(a, b Block) bool {
	return a.Index == b.Index &&
		a.Timestamp == b.Timestamp &&
		a.PreviousHash == b.PreviousHash &&
		a.Nonce == b.Nonce &&
		a.Hash == b.Hash &&
		bytes.Equal(a.Payload, b.Payload)
}
