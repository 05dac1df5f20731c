package ledger

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrMalformedRecord is returned when a record cannot be turned into a block.
var ErrMalformedRecord = errors.New("malformed block record")

// Record is the serializable form of a Block: hashes as hex strings, payload
// as standard base64. It is what travels on the wire and what snapshots store.
type Record struct {
	Index        uint64 `json:"index"`
	Timestamp    int64  `json:"timestamp"`
	Payload      string `json:"payload"`
	PreviousHash string `json:"previous_hash"`
	Nonce        uint64 `json:"nonce"`
	Hash         string `json:"hash"`
}

// NewRecord converts b to its serializable form.
func NewRecord(b Block) Record {
	return Record{
		Index:        b.Index,
		Timestamp:    b.Timestamp,
		Payload:      base64.StdEncoding.EncodeToString(b.Payload),
		PreviousHash: b.PreviousHash.String(),
		Nonce:        b.Nonce,
		Hash:         b.Hash.String(),
	}
}

// Block converts r back into a Block. It checks the encoding only; validity is
// decided by ValidateBlock and ValidateChain.
func (r Record) Block() (Block, error) {
	payload, err := base64.StdEncoding.DecodeString(r.Payload)
	if err != nil {
		return Block{}, fmt.Errorf("%w: payload: %v", ErrMalformedRecord, err)
	}
	prev, err := parseHash(r.PreviousHash)
	if err != nil {
		return Block{}, fmt.Errorf("%w: previous hash: %v", ErrMalformedRecord, err)
	}
	hash, err := parseHash(r.Hash)
	if err != nil {
		return Block{}, fmt.Errorf("%w: hash: %v", ErrMalformedRecord, err)
	}
	return Block{
		Index:        r.Index,
		Timestamp:    r.Timestamp,
		Payload:      payload,
		PreviousHash: prev,
		Nonce:        r.Nonce,
		Hash:         hash,
	}, nil
}

// NewRecords converts a chain to records.
func NewRecords(blocks []Block) []Record {
	out := make([]Record, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, NewRecord(b))
	}
	return out
}

// BlocksFromRecords converts records to blocks, failing on the first
// malformed record.
func BlocksFromRecords(records []Record) ([]Block, error) {
	out := make([]Block, 0, len(records))
	for i, r := range records {
		b, err := r.Block()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func parseHash(s string) (Hash, error) {
	if len(s) != chainhash.MaxHashStringSize {
		return Hash{}, fmt.Errorf("want %d hex characters, got %d", chainhash.MaxHashStringSize, len(s))
	}
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return Hash{}, err
	}
	return *h, nil
}
