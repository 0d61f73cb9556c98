package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tmarinova/phrasematch/internal/game"
	"github.com/tmarinova/phrasematch/internal/history"
	"github.com/tmarinova/phrasematch/internal/httpserver"
	"github.com/tmarinova/phrasematch/internal/store"
	"github.com/tmarinova/phrasematch/internal/translate"
	"os"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := openDB(getEnv("DB_PATH", "./data/phrasematch.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	hist := history.NewSQLiteStore(db)
	rounds := store.NewMemoryStore()
	translator := translate.FromEnv()

	srv := httpserver.New(hist, translator, rounds, game.DefaultConfig())
	port := getEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("starting phrasematch server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
