package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	logger_adapter "wareland-api/internal/adapters/logger"
	"wareland-api/internal/configs"
	"wareland-api/internal/core/port"
	"wareland-api/internal/migrations"
)

func main() {
	command := flag.String("command", "up", "migrate command (up|status|down)")
	timeout := flag.Duration("timeout", time.Minute, "command timeout")
	target := flag.Int64("target", 0, "target version for down command (optional)")
	flag.Parse()

	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    slog.LevelInfo,
		UseColor: true,
	}).WithFields(port.Fields{"service_name": "migrate"})

	cfg, err := configs.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", err, nil)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	runner, err := migrations.NewRunner(cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Failed to configure migration runner", err, nil)
		os.Exit(1)
	}

	switch *command {
	case "up":
		err = runner.Up(ctx)
	case "status":
		err = runner.Status(ctx)
	case "down":
		err = runner.Down(ctx, *target)
	default:
		logger.Error("Unsupported command", nil, port.Fields{"command": *command})
		os.Exit(1)
	}
	if err != nil {
		logger.Error("Migration command failed", err, port.Fields{"command": *command})
		os.Exit(1)
	}

	logger.Info("Migration command completed", port.Fields{"command": *command})
}
