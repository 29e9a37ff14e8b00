// Package config loads and validates the daemon configuration:
// defaults, an optional TOML file, and GOFRACD_* environment overrides.
package config

import (
	"errors"
	"fmt"

	"github.com/openfrac/gofracd/internal/core/vault"
)

// Config is the full daemon configuration.
type Config struct {
	RPC     RPCConfig     `mapstructure:"rpc"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Vault   VaultConfig   `mapstructure:"vault"`
	Genesis GenesisConfig `mapstructure:"genesis"`
}

// RPCConfig configures the JSON-RPC server and websocket feed.
type RPCConfig struct {
	// ListenAddr is the HTTP listen address, e.g. ":7010"
	ListenAddr string `mapstructure:"listen_addr"`

	// EnableWebsocket serves the event feed at /ws
	EnableWebsocket bool `mapstructure:"enable_websocket"`

	// TxCacheSize bounds the in-memory transaction result cache
	TxCacheSize int `mapstructure:"tx_cache_size"`
}

// StorageConfig configures persistence.
type StorageConfig struct {
	// DataDir holds the pebble snapshot store
	DataDir string `mapstructure:"data_dir"`

	// HistoryPath is the sqlite file for bid/settlement history.
	// ":memory:" keeps it ephemeral.
	HistoryPath string `mapstructure:"history_path"`
}

// LogConfig configures zerolog.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error
	Level string `mapstructure:"level"`

	// Pretty switches to human-readable console output
	Pretty bool `mapstructure:"pretty"`
}

// VaultConfig carries the governance settings for genesis.
type VaultConfig struct {
	Governance        string `mapstructure:"governance"`
	FeeReceiver       string `mapstructure:"fee_receiver"`
	MinAuctionLength  uint64 `mapstructure:"min_auction_length"`
	MaxAuctionLength  uint64 `mapstructure:"max_auction_length"`
	GovernanceFee     uint64 `mapstructure:"governance_fee"`
	MaxCuratorFee     uint64 `mapstructure:"max_curator_fee"`
	MinBidIncrease    uint64 `mapstructure:"min_bid_increase"`
	MinVotePercentage uint64 `mapstructure:"min_vote_percentage"`
	MinReserveFactor  uint64 `mapstructure:"min_reserve_factor"`
	MaxReserveFactor  uint64 `mapstructure:"max_reserve_factor"`
}

// GenesisConfig describes the one-time vault creation.
type GenesisConfig struct {
	AssetID    string                 `mapstructure:"asset_id"`
	Curator    string                 `mapstructure:"curator"`
	Supply     uint64                 `mapstructure:"supply"`
	ListPrice  uint64                 `mapstructure:"list_price"`
	CuratorFee uint64                 `mapstructure:"curator_fee"`
	Accounts   []GenesisAccountConfig `mapstructure:"accounts"`
}

// GenesisAccountConfig funds an address at creation.
type GenesisAccountConfig struct {
	Address  string `mapstructure:"address"`
	Native   uint64 `mapstructure:"native"`
	Contract bool   `mapstructure:"contract"`
}

// Config errors
var (
	ErrNoListenAddr = errors.New("rpc.listen_addr is required")
	ErrNoDataDir    = errors.New("storage.data_dir is required")
	ErrBadLogLevel  = errors.New("log.level must be one of trace, debug, info, warn, error")
)

// Settings converts the vault section to the domain settings block.
func (c *Config) Settings() vault.Settings {
	return vault.Settings{
		Governance:        c.Vault.Governance,
		FeeReceiver:       c.Vault.FeeReceiver,
		MinAuctionLength:  c.Vault.MinAuctionLength,
		MaxAuctionLength:  c.Vault.MaxAuctionLength,
		GovernanceFee:     c.Vault.GovernanceFee,
		MaxCuratorFee:     c.Vault.MaxCuratorFee,
		MinBidIncrease:    c.Vault.MinBidIncrease,
		MinVotePercentage: c.Vault.MinVotePercentage,
		MinReserveFactor:  c.Vault.MinReserveFactor,
		MaxReserveFactor:  c.Vault.MaxReserveFactor,
	}
}

// VaultGenesis converts the genesis section to the domain genesis.
func (c *Config) VaultGenesis(now uint64) vault.Genesis {
	accounts := make([]vault.GenesisAccount, 0, len(c.Genesis.Accounts))
	for _, acct := range c.Genesis.Accounts {
		accounts = append(accounts, vault.GenesisAccount{
			Address:  acct.Address,
			Native:   acct.Native,
			Contract: acct.Contract,
		})
	}
	return vault.Genesis{
		AssetID:    c.Genesis.AssetID,
		Curator:    c.Genesis.Curator,
		Supply:     c.Genesis.Supply,
		ListPrice:  c.Genesis.ListPrice,
		CuratorFee: c.Genesis.CuratorFee,
		Settings:   c.Settings(),
		Accounts:   accounts,
		Now:        now,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.RPC.ListenAddr == "" {
		return ErrNoListenAddr
	}
	if c.Storage.DataDir == "" {
		return ErrNoDataDir
	}

	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return ErrBadLogLevel
	}

	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("vault settings: %w", err)
	}
	if c.Genesis.AssetID == "" {
		return vault.ErrGenesisNoAsset
	}
	if c.Genesis.Curator == "" {
		return vault.ErrGenesisNoCurator
	}
	if c.Genesis.Supply == 0 {
		return vault.ErrGenesisNoSupply
	}
	if c.Genesis.CuratorFee > c.Vault.MaxCuratorFee {
		return vault.ErrGenesisCuratorFee
	}
	return nil
}
