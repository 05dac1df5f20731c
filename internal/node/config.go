// Package node runs a MiniCoin participant: it owns the ledger and the peer
// registry, answers gossip, mines when asked to and keeps its chain in line
// with the longest valid chain it hears about.
package node

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/minicoin/internal/ledger"
	"github.com/goodnatureofminers/minicoin/internal/peer"
)

// Role names the combination of optional components a node runs. It is
// derived from Config and used as a label.
type Role string

const (
	RoleNode    Role = "node"
	RoleMiner   Role = "miner"
	RolePrinter Role = "printer"
)

const (
	DefaultSyncInterval   = 45 * time.Second
	DefaultRequestTimeout = 5 * time.Second
)

// Config is the static configuration of a node.
type Config struct {
	// Mine runs the miner; Print runs the periodic ledger dump. At most one
	// may be set.
	Mine  bool
	Print bool
	// Listen is the local address the gossip server binds.
	Listen string
	// Advertise is the address other nodes use to reach this one.
	Advertise peer.Address
	Bootstrap peer.Address
	Params    ledger.Params

	// SyncInterval is the period of the background sync; zero disables it.
	SyncInterval      time.Duration
	RequestTimeout    time.Duration
	BroadcastWorkers  int
	MineCheckInterval uint64
	TxPerBlock        int
}

// Role reports which optional component the configuration enables.
func (c Config) Role() Role {
	switch {
	case c.Mine:
		return RoleMiner
	case c.Print:
		return RolePrinter
	}
	return RoleNode
}

var errMiningAndPrinting = errors.New("mining and printing cannot run together")

// Validate checks the configuration before any network activity.
func (c Config) Validate() error {
	if c.Mine && c.Print {
		return errMiningAndPrinting
	}
	if c.Listen == "" {
		return errors.New("listen address is required")
	}
	if _, err := peer.ParseAddress(string(c.Advertise)); err != nil {
		return fmt.Errorf("advertise address: %w", err)
	}
	if _, err := peer.ParseAddress(string(c.Bootstrap)); err != nil {
		return fmt.Errorf("bootstrap address: %w", err)
	}
	if c.Advertise == c.Bootstrap {
		return fmt.Errorf("advertise address %s collides with the bootstrap directory", c.Advertise)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.SyncInterval < 0 {
		return errors.New("sync interval must not be negative")
	}
	if c.Params.Difficulty == 0 {
		return errors.New("difficulty must be positive")
	}
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("consensus params: %w", err)
	}
	return nil
}
