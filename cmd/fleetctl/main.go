package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fleetflow/fleetflow-api/cmd/fleetctl/app"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load(".env.local", ".env")

	if err := app.NewRootCommand(ctx).Execute(); err != nil {
		os.Exit(1)
	}
}
