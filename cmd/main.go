package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"scoreboard/internal/application"
	"scoreboard/internal/config"
	"scoreboard/pkg/contextx"
	"scoreboard/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logx.NewLogger(os.Stderr, logx.ParseLevel("")).Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	log := logx.NewLogger(os.Stdout, logx.ParseLevel(cfg.Log.Level))
	ctx = contextx.WithLogger(ctx, log)

	if err := application.New(cfg).Run(ctx); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
