package pow

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"time"

	"github.com/goodnatureofminers/minicoin/internal/ledger"
)

type (
	// ChainView exposes the current tip the next job is built on.
	ChainView interface {
		Tip() ledger.Block
	}

	// PayloadSource supplies the data embedded in the next block.
	PayloadSource interface {
		NextPayload() []byte
	}

	// Metrics records mining activity.
	Metrics interface {
		ObserveJob(outcome string, attempts uint64, started time.Time)
	}
)
