// Command rechenmodul serves the bivariate statistics API.
//
// Usage:
//
//	rechenmodul [-config rechenmodul.yaml] [-env .env]
//
// Settings are read from the optional YAML file and RECHENMODUL_*
// environment variables; see internal/config.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/rechenmodul/internal/config"
	"github.com/arloliu/rechenmodul/internal/pipeline"
	"github.com/arloliu/rechenmodul/internal/server"
	"github.com/arloliu/rechenmodul/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "", "path to a YAML config file")
	envFile := flag.String("env", ".env", "path to a dotenv file, ignored if missing")
	flag.Parse()

	cfg, err := config.Load(config.Sources{ConfigFile: *configFile, EnvFiles: []string{*envFile}})
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s, err := store.New(store.WithLimits(cfg.Limits()))
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	p, err := pipeline.New(s, logger, pipeline.WithWorkers(cfg.Workers))
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	srv := server.New(cfg, s, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return p.Run(ctx) })
	g.Go(srv.Start)
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down", zap.NamedError("cause", context.Cause(ctx)))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Stop(shutdownCtx)
	})

	return g.Wait()
}
