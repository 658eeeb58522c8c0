package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"todocli/app"
	"todocli/config"
	"todocli/handlers"
)

const version = "1.0.0"

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", slog.Any("error", err))
	}

	cfg := config.Load()
	a := app.New(cfg, os.Stderr)

	code := handlers.Run(context.Background(), a, version, os.Args[1:], os.Stdout, os.Stderr)
	if err := a.Close(); err != nil {
		a.Logger.Error("failed to close store", slog.Any("error", err))
	}
	os.Exit(code)
}
