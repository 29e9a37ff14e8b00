package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/openfrac/gofracd/internal/core/vault"
)

// Load loads configuration in priority order:
// 1. Default values
// 2. Configuration file (gofracd.toml), if a path is given
// 3. Environment variables (GOFRACD_ prefix)
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("GOFRACD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// setDefaults installs the stock configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("rpc.listen_addr", ":7010")
	v.SetDefault("rpc.enable_websocket", true)
	v.SetDefault("rpc.tx_cache_size", 4096)

	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("storage.history_path", "data/history.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	defaults := vault.DefaultSettings()
	v.SetDefault("vault.min_auction_length", defaults.MinAuctionLength)
	v.SetDefault("vault.max_auction_length", defaults.MaxAuctionLength)
	v.SetDefault("vault.governance_fee", defaults.GovernanceFee)
	v.SetDefault("vault.max_curator_fee", defaults.MaxCuratorFee)
	v.SetDefault("vault.min_bid_increase", defaults.MinBidIncrease)
	v.SetDefault("vault.min_vote_percentage", defaults.MinVotePercentage)
	v.SetDefault("vault.min_reserve_factor", defaults.MinReserveFactor)
	v.SetDefault("vault.max_reserve_factor", defaults.MaxReserveFactor)

	v.SetDefault("genesis.supply", uint64(0))
	v.SetDefault("genesis.list_price", uint64(0))
	v.SetDefault("genesis.curator_fee", uint64(0))
}
