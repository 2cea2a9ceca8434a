package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fieldwork-labs/fieldwork/internal/web/explorer"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the schema explorer server",
		Long: `Run the HTTP schema explorer.

Serves the registered schemas and derivation names as JSON, plus a
resolve endpoint for exercising the engine. Listen address comes from
fieldwork.yml (server.host, server.port).`,
		RunE: runServeCommand,
	}
}

func runServeCommand(cmd *cobra.Command, args []string) error {
	cfg, schemas, derivations, err := loadRegistries()
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	server, err := explorer.New(explorer.DefaultConfig(cfg.Server.Address()), schemas, derivations, logger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
