package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contada-dev/contada/internal/config"
	"github.com/contada-dev/contada/internal/engine"
	"github.com/contada-dev/contada/internal/server"
)

// resolveConfig loads the config file when given, otherwise the defaults,
// and applies CLI overrides on top.
func resolveConfig(path, addr string, seed int64) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if seed != 0 {
		cfg.Market.Seed = seed
	}
	return cfg, nil
}

func newServeCommand() *cobra.Command {
	var configPath string
	var addr string
	var seed int64

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the game engine behind an HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(configPath, addr, seed)
			if err != nil {
				return err
			}

			logger := server.NewLogger(cfg.LogLevel)
			defer logger.Sync() //nolint:errcheck // best-effort flush

			eng := engine.New(cfg, logger)
			metrics := server.NewMetrics()
			router := server.NewRouter(eng, metrics, logger)

			srv := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", zap.String("addr", cfg.Server.Addr))
				errCh <- srv.ListenAndServe()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server: %w", err)
				}
			case sig := <-stop:
				logger.Info("shutting down", zap.String("signal", sig.String()))
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to contada.yaml (defaults built in)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address override")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for reproducible sessions (0 = time-based)")

	return cmd
}
