package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/noah-isme/class-schedule-api/internal/client"
	"github.com/noah-isme/class-schedule-api/internal/session"
	"github.com/noah-isme/class-schedule-api/pkg/config"
	"github.com/noah-isme/class-schedule-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	sess, err := session.Open(cfg.Client.SessionFile)
	if err != nil {
		logr.Fatal("failed to open session", zap.String("path", cfg.Client.SessionFile), zap.Error(err))
	}

	cli := &commandLine{
		api:       client.New(cfg.Client.APIBaseURL, cfg.Client.Timeout),
		session:   sess,
		reference: cfg.Schedule.ReferenceDate,
		out:       os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.run(ctx, os.Args); err != nil {
		if errors.Is(err, errHelp) {
			os.Exit(2)
		}
		logr.Debug("command failed", zap.Strings("args", os.Args[1:]), zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
