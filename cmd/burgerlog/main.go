package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"burgerlog/internal/logging"
	"burgerlog/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logging.SetGlobal(logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}))

	db, err := openDatabase(context.Background(), cfg.DatabaseURL, cfg.DBConnectWait)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	dataStore := store.New(db)

	if cfg.SeedDemoData {
		if err := bootstrapDemoData(context.Background(), db, dataStore); err != nil {
			log.Fatal().Err(err).Msg("bootstrap demo data")
		}
	}

	handler, err := newHTTPHandler(cfg, dataStore)
	if err != nil {
		log.Fatal().Err(err).Msg("build http handler")
	}

	log.Info().Str("addr", cfg.Addr).Msg("API listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
