package main

import (
	"net/http"
	"os"

	"wordmem/internal/app/server/api"
	"wordmem/internal/app/server/config"
	"wordmem/internal/infrastructure/storage/postgres"
	"wordmem/internal/utils/logger"
)

func main() {
	conf := config.NewConfig()
	log := logger.New(conf.Env)

	storage, err := postgres.New(conf)
	if err != nil {
		log.Error("storage init failed", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	mux := api.New(storage, conf, log)

	log.Info("starting server", "address", conf.Server.RunAddress, "env", conf.Env)
	if err := http.ListenAndServe(conf.Server.RunAddress, mux); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
