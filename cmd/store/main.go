package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/rl1809/retail-store/internal/adapter/auth"
	"github.com/rl1809/retail-store/internal/adapter/cli"
	"github.com/rl1809/retail-store/internal/adapter/storage"
	"github.com/rl1809/retail-store/internal/config"
	"github.com/rl1809/retail-store/internal/core/service"
	"github.com/rl1809/retail-store/internal/logging"
)

func main() {
	cfg := config.Load()
	if cfg.NoColor {
		color.NoColor = true
	}

	logger := logging.Init("store", cfg.LogFile)
	logger.Info("store starting")

	catalogStore := storage.NewMemoryAdapter(storage.SeedCatalog())

	catalogService := service.NewCatalogService(catalogStore)
	orderService := service.NewOrderService(catalogStore)
	stockService := service.NewStockService(catalogStore)
	gate := auth.NewStaticGate(cfg.StaffUsername, cfg.StaffPassword)

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	renderer := cli.NewRenderer(os.Stdout)
	session := cli.NewSession(catalogService, orderService, stockService, gate, prompter, renderer, logging.New("cli"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session error", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	logger.Info("store stopped")
}
