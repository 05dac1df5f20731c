package main

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/goodnatureofminers/minicoin/internal/ledger"
	"github.com/goodnatureofminers/minicoin/internal/node"
	"github.com/goodnatureofminers/minicoin/internal/peer"
	"github.com/goodnatureofminers/minicoin/pkg/safe"
)

const roleBootstrap = "bootstrap"

type config struct {
	Role           string        `long:"role" env:"MINICOIN_ROLE" choice:"bootstrap" choice:"node" choice:"miner" choice:"printer" default:"node" description:"what this process runs"`
	Mine           bool          `long:"mine" env:"MINICOIN_MINE" description:"run the miner (same as --role miner)"`
	Print          bool          `long:"print" env:"MINICOIN_PRINT" description:"periodically dump the ledger (same as --role printer)"`
	Host           string        `long:"host" env:"MINICOIN_HOST" default:"127.0.0.1" description:"interface the gossip server binds"`
	Port           int           `long:"port" env:"MINICOIN_PORT" default:"5000" description:"gossip port"`
	AdvertiseHost  string        `long:"advertise-host" env:"MINICOIN_ADVERTISE_HOST" description:"host peers use to reach this node (defaults to --host)"`
	Bootstrap      string        `long:"bootstrap" env:"MINICOIN_BOOTSTRAP" default:"127.0.0.1:5000" description:"bootstrap directory address"`
	Difficulty     int           `long:"difficulty" env:"MINICOIN_DIFFICULTY" default:"16" description:"leading zero bits a block hash needs"`
	SyncInterval   time.Duration `long:"sync-interval" env:"MINICOIN_SYNC_INTERVAL" default:"45s" description:"period of the background chain sync, 0 disables it"`
	RequestTimeout time.Duration `long:"request-timeout" env:"MINICOIN_REQUEST_TIMEOUT" default:"5s" description:"deadline of one peer exchange"`
	PrintInterval  time.Duration `long:"print-interval" env:"MINICOIN_PRINT_INTERVAL" default:"10s" description:"period of the printer role dump"`
	TxPerBlock     int           `long:"tx-per-block" env:"MINICOIN_TX_PER_BLOCK" default:"10" description:"transactions packed into one mined block"`
	HTTPAddr       string        `long:"http-addr" env:"MINICOIN_HTTP_ADDR" description:"REST API and /metrics address, empty disables"`
	GRPCAddr       string        `long:"grpc-addr" env:"MINICOIN_GRPC_ADDR" description:"gRPC health address, empty disables"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"MINICOIN_CLICKHOUSE_DSN" description:"archive accepted blocks into ClickHouse"`
	DataDir        string        `long:"data-dir" env:"MINICOIN_DATA_DIR" description:"keep peers and chain in a bbolt file under this directory"`
	NoStdin        bool          `long:"no-stdin" env:"MINICOIN_NO_STDIN" description:"do not stop mining when ENTER is pressed"`
}

func (c config) listen() (string, error) {
	if _, err := safe.Uint16(c.Port); err != nil || c.Port == 0 {
		return "", fmt.Errorf("port %d is not a valid TCP port", c.Port)
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port)), nil
}

// advertise is the address this process announces to the network.
func (c config) advertise() (peer.Address, error) {
	host := c.AdvertiseHost
	if host == "" {
		host = c.Host
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsUnspecified() {
		return "", errors.New("--advertise-host is required when binding a wildcard address")
	}
	port, err := safe.Uint16(c.Port)
	if err != nil {
		return "", err
	}
	return peer.NewAddress(host, port)
}

func (c config) nodeConfig() (node.Config, error) {
	listen, err := c.listen()
	if err != nil {
		return node.Config{}, err
	}
	self, err := c.advertise()
	if err != nil {
		return node.Config{}, err
	}
	bootstrap, err := peer.ParseAddress(c.Bootstrap)
	if err != nil {
		return node.Config{}, err
	}
	difficulty, err := safe.Uint32(c.Difficulty)
	if err != nil {
		return node.Config{}, fmt.Errorf("difficulty: %w", err)
	}

	cfg := node.Config{
		Mine:           c.Mine || c.Role == string(node.RoleMiner),
		Print:          c.Print || c.Role == string(node.RolePrinter),
		Listen:         listen,
		Advertise:      self,
		Bootstrap:      bootstrap,
		Params:         ledger.Params{Difficulty: difficulty},
		SyncInterval:   c.SyncInterval,
		RequestTimeout: c.RequestTimeout,
		TxPerBlock:     c.TxPerBlock,
	}
	return cfg, cfg.Validate()
}
