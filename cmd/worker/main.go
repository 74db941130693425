package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"citydirectory/adapters/directory"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting worker")

	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}

	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"directory_addr", config.DirectoryAddr,
		"service_kind", config.Kind,
		"service_addr", config.ServiceAddr,
		"renew_interval", config.RenewInterval,
	)

	client := directory.NewClient(directory.Options{
		Target: config.DirectoryAddr,
		APIKey: config.APIKey,
		Logger: logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		level.Info(logger).Log("msg", "Shutting down...")
		cancel()
	}()

	err = client.KeepRegistered(ctx, config.Kind, config.ServiceAddr, config.RenewInterval)
	if err != nil && !errors.Is(err, context.Canceled) {
		level.Error(logger).Log("msg", "Registration failed", "err", err)
		os.Exit(1)
	}

	level.Info(logger).Log("msg", "Worker stopped")
}
