package main

import (
	"os"

	"lexnews/internal/app"
	"lexnews/internal/config"
	"lexnews/internal/logger"
)

func main() {
	logger.Init()

	cfg := config.Load()
	if err := app.Run(cfg); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}
