package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"MINICOIN_MIGRATIONS_CLICKHOUSE_DSN" default:"clickhouse://localhost:9000/default?x-multi-statement=true" description:"ClickHouse DSN of the block archive"`
	Dir           string `long:"dir" env:"MINICOIN_MIGRATIONS_DIR" default:"migrations/clickhouse" description:"directory holding the archive schema"`
	Steps         int    `long:"steps" env:"MINICOIN_MIGRATIONS_STEPS" description:"apply this many migrations, negative rolls back; 0 migrates fully up"`
}

func main() {
	cfg := config{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migrateArchive(ctx, cfg, logger); err != nil {
		logger.Fatal("archive migration failed", zap.Error(err))
	}
}

func sourceURL(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

func migrateArchive(ctx context.Context, cfg config, logger *zap.Logger) error {
	src, err := sourceURL(cfg.Dir)
	if err != nil {
		return err
	}
	m, err := migrate.New(src, cfg.ClickhouseDSN)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			logger.Warn("failed to close migrator", zap.Error(err))
		}
	}()

	stopOnCancel := context.AfterFunc(ctx, func() {
		m.GracefulStop <- true
	})
	defer stopOnCancel()

	if cfg.Steps == 0 {
		err = m.Up()
	} else {
		err = m.Steps(cfg.Steps)
	}
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("archive schema already up to date")
		return nil
	case err != nil:
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	logger.Info("archive schema migrated", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
