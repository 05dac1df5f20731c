package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"

	"github.com/fatih/color"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/minicoin/internal/archive"
	"github.com/goodnatureofminers/minicoin/internal/bootstrap"
	"github.com/goodnatureofminers/minicoin/internal/ledger"
	"github.com/goodnatureofminers/minicoin/internal/metrics"
	"github.com/goodnatureofminers/minicoin/internal/node"
	"github.com/goodnatureofminers/minicoin/internal/peer"
	"github.com/goodnatureofminers/minicoin/internal/printer"
	"github.com/goodnatureofminers/minicoin/internal/protocol"
	"github.com/goodnatureofminers/minicoin/internal/repository/clickhouse"
	"github.com/goodnatureofminers/minicoin/internal/storage/bolt"
	"github.com/goodnatureofminers/minicoin/internal/transport"
)

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.Role == roleBootstrap {
		err = runBootstrap(ctx, cfg, logger)
	} else {
		err = runNode(ctx, cfg, logger)
	}
	if err != nil {
		logger.Fatal("minicoin failed", zap.String("role", cfg.Role), zap.Error(err))
	}
}

func runBootstrap(ctx context.Context, cfg config, logger *zap.Logger) error {
	listen, err := cfg.listen()
	if err != nil {
		return err
	}
	self, err := cfg.advertise()
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if cfg.HTTPAddr != "" {
		srv := transport.NewHTTPServer(cfg.HTTPAddr, transport.MetricsHandler())
		serve(&wg, logger, "http", func() error { return transport.ServeHTTP(ctx, logger, srv) })
	}

	return bootstrap.New(logger, self).Run(ctx, listen, cfg.RequestTimeout, metrics.NewGossipServer())
}

func runNode(ctx context.Context, cfg config, logger *zap.Logger) error {
	nodeCfg, err := cfg.nodeConfig()
	if err != nil {
		return err
	}
	self := string(nodeCfg.Advertise)

	// Background servers stop once ctx is done.
	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	deps := node.Deps{
		Transport:     protocol.NewClient(nodeCfg.RequestTimeout, metrics.NewGossipClient()),
		Metrics:       metrics.NewNode(string(nodeCfg.Role())),
		MinerMetrics:  metrics.NewMiner(),
		ServerMetrics: metrics.NewGossipServer(),
	}

	var (
		storedChain []ledger.Block
		storedPeers []peer.Address
	)
	if cfg.DataDir != "" {
		store, err := bolt.Open(filepath.Join(cfg.DataDir, "minicoin-"+strconv.Itoa(cfg.Port)+".db"))
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error("failed to close store", zap.Error(err))
			}
		}()
		if storedChain, err = store.LoadChain(); err != nil {
			return fmt.Errorf("load chain: %w", err)
		}
		if storedPeers, err = store.LoadPeers(); err != nil {
			return fmt.Errorf("load peers: %w", err)
		}
		deps.Store = store
	}

	var arch *archive.Archive
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("failed to close repository", zap.Error(err))
			}
		}()
		arch = archive.New(logger, self, repo, archive.Config{})
		arch.Start(ctx)
		defer arch.Stop()
		deps.Archive = arch
	}

	var reporter *transport.HealthReporter
	if cfg.GRPCAddr != "" {
		server, healthServer := transport.NewGRPCServer(logger)
		reporter = transport.NewHealthReporter(logger, healthServer)
		deps.Observers = append(deps.Observers, reporter)
		serve(&wg, logger, "grpc", func() error { return transport.ServeGRPC(ctx, logger, server, cfg.GRPCAddr) })
	}

	n, err := node.New(logger, nodeCfg, deps)
	if err != nil {
		return err
	}
	if err := n.Restore(storedChain, storedPeers); err != nil {
		logger.Warn("discarding stored chain", zap.Error(err))
	}

	if arch != nil {
		snapshot := n.ChainSnapshot()
		serve(&wg, logger, "archive backfill", func() error { return arch.Backfill(ctx, snapshot) })
	}
	if cfg.HTTPAddr != "" {
		handler, err := transport.NewRESTHandler(logger, n)
		if err != nil {
			return fmt.Errorf("init rest handler: %w", err)
		}
		srv := transport.NewHTTPServer(cfg.HTTPAddr, handler)
		serve(&wg, logger, "http", func() error { return transport.ServeHTTP(ctx, logger, srv) })
	}
	p := printer.New(logger, n, os.Stdout, !color.NoColor)
	n.SetPrinter(p)
	if nodeCfg.Print {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.AskPeers(n).Run(ctx, cfg.PrintInterval)
		}()
	}
	if nodeCfg.Mine && !cfg.NoStdin {
		go stopOnEnter(logger, os.Stdin, n)
	}

	err = n.Run(ctx)
	if reporter != nil {
		reporter.Shutdown()
	}
	cancel()
	wg.Wait()
	return err
}

// serve runs fn in the background and logs its failure.
func serve(wg *sync.WaitGroup, logger *zap.Logger, name string, fn func() error) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := fn(); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("background task failed", zap.String("task", name), zap.Error(err))
		}
	}()
}

type miningSwitch interface {
	StopMining() bool
}

// stopOnEnter stops the miner the first time a line is read from in.
func stopOnEnter(logger *zap.Logger, in io.Reader, m miningSwitch) {
	fmt.Fprintln(os.Stderr, "press ENTER to stop mining")
	if !bufio.NewScanner(in).Scan() {
		return
	}
	if m.StopMining() {
		logger.Info("mining stopped from stdin")
	}
}
