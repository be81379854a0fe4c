package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"fundgraph/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveAddr string
	seedPath  string
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "HTTP listen address (overrides config)")
	serveCmd.Flags().StringVar(&seedPath, "seed", "", "YAML file of funds to submit at startup")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the fund graph server",
	Long: `Run the HTTP API and Server-Sent Events stream.

Examples:
  fundgraph serve
  fundgraph serve --addr :8080 --seed funds.yaml`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	log, err := logger.New(cfg.Logging.Env)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync(log)

	if path != "" {
		log.Info("config loaded", zap.String("path", path))
	}

	a, err := newApp(cfg, log)
	if err != nil {
		return err
	}

	if seedPath != "" {
		if err := a.seed(seedPath); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Server.Addr, err)
	}

	if err := a.serve(ctx, ln); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
