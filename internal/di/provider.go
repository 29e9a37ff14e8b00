package di

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/openfrac/gofracd/internal/config"
	"github.com/openfrac/gofracd/internal/core/service"
	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
	"github.com/openfrac/gofracd/internal/rpc"
	"github.com/openfrac/gofracd/internal/storage/database"
	pebbledb "github.com/openfrac/gofracd/internal/storage/database/pebble"
	"github.com/openfrac/gofracd/internal/storage/history/sqlite"
	"github.com/openfrac/gofracd/internal/storage/snapshots"
)

// BuildContainer registers every service builder against the given
// configuration. Services are built lazily on first Get.
func BuildContainer(cfg *config.Config) *Container {
	c := New()
	c.Register(ServiceConfig, cfg)

	c.RegisterBuilder(ServiceLogger, func(c *Container) (interface{}, error) {
		return newLogger(cfg.Log)
	})

	c.RegisterBuilder(ServiceClock, func(c *Container) (interface{}, error) {
		return tx.SystemClock{}, nil
	})

	c.RegisterBuilder(ServiceEventBus, func(c *Container) (interface{}, error) {
		return events.NewBus(), nil
	})

	c.RegisterBuilder(ServiceDatabase, func(c *Container) (interface{}, error) {
		return pebbledb.Open(filepath.Join(cfg.Storage.DataDir, "state"))
	})

	c.RegisterBuilder(ServiceSnapshots, func(c *Container) (interface{}, error) {
		db, err := c.Get(ServiceDatabase)
		if err != nil {
			return nil, err
		}
		return snapshots.New(db.(database.DB)), nil
	})

	c.RegisterBuilder(ServiceHistory, func(c *Container) (interface{}, error) {
		return sqlite.Open(cfg.Storage.HistoryPath)
	})

	c.RegisterBuilder(ServiceTxEngine, func(c *Container) (interface{}, error) {
		return buildEngine(c, cfg)
	})

	c.RegisterBuilder(ServiceNode, func(c *Container) (interface{}, error) {
		engine, err := c.Get(ServiceTxEngine)
		if err != nil {
			return nil, err
		}
		bus, err := c.Get(ServiceEventBus)
		if err != nil {
			return nil, err
		}
		clock, err := c.Get(ServiceClock)
		if err != nil {
			return nil, err
		}
		snaps, err := c.Get(ServiceSnapshots)
		if err != nil {
			return nil, err
		}
		hist, err := c.Get(ServiceHistory)
		if err != nil {
			return nil, err
		}
		logger, err := c.Get(ServiceLogger)
		if err != nil {
			return nil, err
		}
		return service.New(
			engine.(*tx.Engine),
			bus.(*events.Bus),
			clock.(tx.Clock),
			snaps.(*snapshots.Store),
			hist.(*sqlite.Store),
			logger.(zerolog.Logger),
		), nil
	})

	c.RegisterBuilder(ServiceRPCServer, func(c *Container) (interface{}, error) {
		node, err := c.Get(ServiceNode)
		if err != nil {
			return nil, err
		}
		bus, err := c.Get(ServiceEventBus)
		if err != nil {
			return nil, err
		}
		logger, err := c.Get(ServiceLogger)
		if err != nil {
			return nil, err
		}
		return rpc.NewServer(cfg.RPC, node.(*service.Node), bus.(*events.Bus), logger.(zerolog.Logger))
	})

	return c
}

// newLogger builds the zerolog root logger from the log section.
func newLogger(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	var logger zerolog.Logger
	if cfg.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger(), nil
}

// buildEngine restores the latest snapshot, falling back to genesis
// when the store is empty.
func buildEngine(c *Container, cfg *config.Config) (*tx.Engine, error) {
	snapsAny, err := c.Get(ServiceSnapshots)
	if err != nil {
		return nil, err
	}
	clockAny, err := c.Get(ServiceClock)
	if err != nil {
		return nil, err
	}
	busAny, err := c.Get(ServiceEventBus)
	if err != nil {
		return nil, err
	}
	loggerAny, err := c.Get(ServiceLogger)
	if err != nil {
		return nil, err
	}

	snaps := snapsAny.(*snapshots.Store)
	clock := clockAny.(tx.Clock)
	bus := busAny.(*events.Bus)
	logger := loggerAny.(zerolog.Logger)

	payload, err := snaps.Latest(context.Background())
	switch {
	case err == nil:
		v, lg, takenAt, err := vault.DecodeSnapshot(payload)
		if err != nil {
			return nil, fmt.Errorf("restore snapshot: %w", err)
		}
		logger.Info().Uint64("taken_at", takenAt).Msg("restored state from snapshot")
		return tx.NewEngine(v, lg, clock, bus), nil

	case errors.Is(err, database.ErrKeyNotFound):
		now := uint64(clock.Now().Unix())
		v, lg, err := vault.NewFromGenesis(cfg.VaultGenesis(now))
		if err != nil {
			return nil, fmt.Errorf("genesis: %w", err)
		}
		logger.Info().Str("asset_id", v.AssetID).Uint64("supply", lg.TotalSupply()).Msg("created vault from genesis")
		return tx.NewEngine(v, lg, clock, bus), nil

	default:
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
}
