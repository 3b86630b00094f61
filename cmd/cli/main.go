package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/civicwatch/civicwatch/internal/cli"
	"github.com/civicwatch/civicwatch/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app := cli.NewApp(ctx, cfg)
	app.Run(ctx)
}
