package main

import (
	"rentals/config"
	"rentals/di"
	"rentals/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
