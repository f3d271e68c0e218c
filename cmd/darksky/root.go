package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vzahanych/darksky/internal/config"
	"github.com/vzahanych/darksky/pkg/logger"
)

var (
	configPath string
	cfg        *config.Config
	log        *zap.Logger
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "darksky",
		Short: "Dark Sky weather client",
		Long:  `Query the Dark Sky weather API for current conditions, forecasts and historical (time machine) data.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize()
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file (default: ./darksky.yaml)")

	cmd.AddCommand(forecastCmd())

	return cmd
}

// Execute runs the root command until completion or SIGINT/SIGTERM.
func Execute() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		if log != nil {
			log.Info("received shutdown signal", zap.String("signal", sig.String()))
		}
		cancel()
	}()

	return rootCmd().ExecuteContext(ctx)
}

func initialize() error {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return err
	}

	log, err = logger.New(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return err
	}

	return nil
}
