package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/hydractl/internal/cluster"
	"github.com/goodnatureofminers/hydractl/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

var config struct {
	Config      string `long:"config" short:"c" env:"HYDRACTL_CONFIG" description:"cluster topology file" default:"cluster.yaml"`
	MetricsAddr string `long:"metrics-addr" env:"HYDRACTL_METRICS_ADDR" description:"serve /metrics on this addr while a command runs; empty disables"`
}

// app carries what every command needs.
type app struct {
	ctx    context.Context
	logger *zap.Logger
}

func (a *app) cluster() (*cluster.Cluster, error) {
	cfg, err := cluster.LoadConfig(config.Config)
	if err != nil {
		return nil, err
	}
	factory, err := cluster.NewHTTPFactory(cfg, nil, a.logger)
	if err != nil {
		return nil, err
	}
	return cluster.New(cfg, factory, metrics.NewCluster(), a.logger)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	a := &app{ctx: ctx, logger: logger}
	parser := flags.NewParser(&config, flags.Default)
	commands := []struct {
		name, short, long string
		data              any
	}{
		{"status", "Show the head state seen by every participant", "", &statusCommand{app: a}},
		{"reset", "Drive the cluster to a head state", "Target is one of Idle, Initial, Open, Closed, FanoutReady.", &resetCommand{app: a}},
		{"verify", "Check that all participants report the same head state", "", &verifyCommand{app: a}},
		{"funds", "Check L1 balances of every participant", "", &fundsCommand{app: a}},
		{"commit", "Commit a participant's funds into an Initial or Open head", "", &commitCommand{app: a}},
		{"decommit", "Release UTxOs from an Open head back to L1", "", &decommitCommand{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			logger.Fatal("Failed to register command", zap.String("command", c.name), zap.Error(err))
		}
	}
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if command == nil {
			return nil
		}
		if config.MetricsAddr != "" {
			shutdown := serveMetrics(ctx, logger, config.MetricsAddr)
			defer shutdown()
		}
		return command.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Command failed", zap.Error(err))
	}
}

func serveMetrics(ctx context.Context, logger *zap.Logger, addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		logger.Info("Starting metrics server", zap.String("addr", addr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to listen and serve", zap.Error(err))
		}
	}()
	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}
}
