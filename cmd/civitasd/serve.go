package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/civitas-social/governance/api"
	"github.com/civitas-social/governance/config"
	"github.com/civitas-social/governance/core/governance"
	"github.com/civitas-social/governance/core/ledger"
	"github.com/civitas-social/governance/core/post"
	"github.com/civitas-social/governance/core/reputation"
	"github.com/civitas-social/governance/observability/logging"
	"github.com/civitas-social/governance/observability/metrics"
)

func newServeCommand() *cobra.Command {
	var cfgPath string
	var logFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cfgPath, logFile)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "civitasd.toml", "path to civitasd config")
	cmd.Flags().StringVar(&logFile, "log-file", "", "optional rotated log file path, in addition to stdout")
	return cmd
}

func serve(cfgPath, logFile string) error {
	env := strings.TrimSpace(os.Getenv("CIVITAS_ENV"))
	logger := logging.SetupWithFile("civitasd", env, logFile)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	users := reputation.New()
	ledgerStore := ledger.New(users)
	posts := post.New()

	emitter := metrics.NewListener(nil)
	engine := governance.New(ledgerStore, users, posts, logger, emitter, cfg.Governance())
	server := api.New(engine, logger, cfg.MintingRatio, nil)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", server)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("civitasd listening", "address", cfg.ListenAddress)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		logger.Info("civitasd shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(ctx)
}
