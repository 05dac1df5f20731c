// Package protocol defines the gossip messages nodes exchange and the TCP
// client and server that carry them.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"

	"github.com/goodnatureofminers/minicoin/internal/ledger"
)

// MaxEnvelopeSize bounds a single encoded envelope. A full chain response is
// the largest message a node sends.
const MaxEnvelopeSize = 32 << 20

// ErrMalformed is returned for envelopes that cannot be decoded.
var ErrMalformed = errors.New("malformed envelope")

// Kind identifies a message type.
type Kind string

const (
	KindRegistration    Kind = "registration"
	KindPeerList        Kind = "peer_list"
	KindNewBlock        Kind = "new_block"
	KindChainRequest    Kind = "chain_request"
	KindChainResponse   Kind = "chain_response"
	KindNewTransaction  Kind = "new_transaction"
	KindSummaryRequest  Kind = "summary_request"
	KindSummaryResponse Kind = "summary_response"
	KindPing            Kind = "ping"
	KindPong            Kind = "pong"
	KindPrintRequest    Kind = "print_request"
)

var knownKinds = map[Kind]struct{}{
	KindRegistration:    {},
	KindPeerList:        {},
	KindNewBlock:        {},
	KindChainRequest:    {},
	KindChainResponse:   {},
	KindNewTransaction:  {},
	KindSummaryRequest:  {},
	KindSummaryResponse: {},
	KindPing:            {},
	KindPong:            {},
	KindPrintRequest:    {},
}

// Valid reports whether k is a kind this protocol knows.
func (k Kind) Valid() bool {
	_, ok := knownKinds[k]
	return ok
}

// Envelope is the unit of exchange. Sender is the advertised listening
// address of the originating node, not the ephemeral address of the TCP
// connection.
type Envelope struct {
	Kind   Kind   `json:"kind"`
	Sender string `json:"sender"`
	Data   any    `json:"data,omitempty"`
}

// PeerListPayload answers a registration with the peers the responder knows.
type PeerListPayload struct {
	Peers []string `json:"peers"`
}

// NewBlockPayload announces a block together with the length of the chain it
// extends on the sender's side.
type NewBlockPayload struct {
	Block       ledger.Record `json:"block"`
	ChainLength uint64        `json:"chain_length"`
}

// ChainResponsePayload carries a full chain from genesis to tip.
type ChainResponsePayload struct {
	Blocks []ledger.Record `json:"blocks"`
}

// TransactionPayload carries one pending transaction.
type TransactionPayload struct {
	ID   string `json:"id"`
	Data string `json:"data"`
}

// SummaryPayload describes a chain without its blocks.
type SummaryPayload struct {
	Length  uint64 `json:"length"`
	Tip     string `json:"tip"`
	Genesis string `json:"genesis"`
}

// NewEnvelope builds an envelope.
func NewEnvelope(kind Kind, sender string, data any) Envelope {
	return Envelope{Kind: kind, Sender: sender, Data: data}
}

// Decode copies the envelope's data into out, a pointer to one of the payload
// types. Data read off the wire is a generic map with json.Number values;
// Data set in-process may already be the typed payload.
func (e Envelope) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(e.Data); err != nil {
		return fmt.Errorf("%w: %s payload: %v", ErrMalformed, e.Kind, err)
	}
	return nil
}

// WriteEnvelope encodes env as a single JSON document.
func WriteEnvelope(w io.Writer, env Envelope) error {
	if err := json.NewEncoder(w).Encode(env); err != nil {
		return fmt.Errorf("encode %s envelope: %w", env.Kind, err)
	}
	return nil
}

// ReadEnvelope decodes a single envelope, reading at most MaxEnvelopeSize
// bytes. Unknown kinds and missing senders are rejected.
func ReadEnvelope(r io.Reader) (Envelope, error) {
	dec := json.NewDecoder(io.LimitReader(r, MaxEnvelopeSize))
	dec.UseNumber()

	var env Envelope
	if err := dec.Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !env.Kind.Valid() {
		return Envelope{}, fmt.Errorf("%w: unknown kind %q", ErrMalformed, env.Kind)
	}
	if env.Sender == "" {
		return Envelope{}, fmt.Errorf("%w: missing sender", ErrMalformed)
	}
	return env, nil
}
