package cli

import (
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/openfrac/gofracd/internal/config"
	"github.com/openfrac/gofracd/internal/core/service"
	"github.com/openfrac/gofracd/internal/di"
	"github.com/openfrac/gofracd/internal/rpc"
)

// serverCmd represents the server command (default action)
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the vault daemon",
	Long: `Start the gofracd daemon which provides:
- HTTP JSON-RPC API for transactions and vault queries
- WebSocket feed for price, transfer and auction events
- Durable state snapshots and auction history

This is the default command when no subcommand is specified.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// Running gofracd without a subcommand starts the server
	rootCmd.RunE = serverCmd.RunE
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	container := di.BuildContainer(cfg)

	logger, err := container.Get(di.ServiceLogger)
	if err != nil {
		return err
	}
	log := logger.(zerolog.Logger)

	nodeAny, err := container.Get(di.ServiceNode)
	if err != nil {
		return err
	}
	node := nodeAny.(*service.Node)
	defer func() {
		if err := node.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close node")
		}
	}()

	serverAny, err := container.Get(di.ServiceRPCServer)
	if err != nil {
		return err
	}
	server := serverAny.(*rpc.Server)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("version", rootCmd.Version).Msg("gofracd starting")
	return server.Run(ctx)
}
