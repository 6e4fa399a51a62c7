package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/treiher/valens-client/internal/buildinfo"
	"github.com/treiher/valens-client/internal/client/cli"
	"github.com/treiher/valens-client/internal/client/config"
	"github.com/treiher/valens-client/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	// Warnings and errors go to stderr so they do not interleave with the
	// REPL prompt on stdout.
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
