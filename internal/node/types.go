package node

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/minicoin/internal/ledger"
	"github.com/goodnatureofminers/minicoin/internal/peer"
	"github.com/goodnatureofminers/minicoin/internal/protocol"
)

type (
	// Transport carries envelopes to other nodes.
	Transport interface {
		Send(ctx context.Context, addr peer.Address, env protocol.Envelope) error
		Request(ctx context.Context, addr peer.Address, env protocol.Envelope) (protocol.Envelope, error)
	}

	Metrics interface {
		ObserveBlock(source string, err error)
		ObserveChainReplace(replaced bool, err error)
		ObserveSync(err error, started time.Time)
		SetChainLength(n int)
		SetPeers(n int)
		SetState(state string)
	}

	// Archive receives blocks as they join the chain.
	Archive interface {
		Publish(ctx context.Context, blocks []ledger.Block)
	}

	// Store persists peers and the chain between runs.
	Store interface {
		SavePeers(addrs []peer.Address) error
		SaveChain(chain []ledger.Block) error
	}

	// LocalPrinter dumps the node's view when a peer asks for it.
	LocalPrinter interface {
		Print() error
	}

	// StateObserver is told about every lifecycle transition.
	StateObserver interface {
		OnStateChange(state State)
	}
)
