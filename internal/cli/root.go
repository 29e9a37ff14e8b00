// Package cli wires the cobra command tree for the gofracd daemon.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openfrac/gofracd/internal/version"
)

var (
	// Global flags
	configFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gofracd",
	Short: "gofracd - fractional asset vault daemon",
	Long: `gofracd runs a single-asset fractional ownership vault: share holders
vote a balance-weighted reserve price, anyone can trigger a timed buyout
auction by meeting it, and once the auction settles every holder cashes
their shares against the proceeds pool.`,
	Version: version.Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
}
