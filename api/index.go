package handler

import (
	"net/http"
	"sync"

	"rentals/config"
	"rentals/di"
	"rentals/shared/logger"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	service http.Handler
)

// Handler is the serverless entrypoint. State lives as long as the warm
// instance does.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)

		logger.SetLogLevel(cfg)

		server := di.InitializeService()
		if err := server.Auth.Bootstrap(r.Context()); err != nil {
			log.Error().Err(err).Msg("Failed to bootstrap administrator")
		}

		service = server.Handler()
	})

	r.RequestURI = r.URL.String()

	service.ServeHTTP(w, r)
}
