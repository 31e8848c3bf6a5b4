package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aiometa/aiometa/internal/config"
	"github.com/aiometa/aiometa/internal/logger"
	"github.com/aiometa/aiometa/internal/meta"
	"github.com/aiometa/aiometa/internal/preferences"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	var (
		configPath = flag.String("config", "", "path to config file")
		mediaType  = flag.String("type", meta.TypeMovie, "media type: movie or series")
		mediaID    = flag.String("id", "", "identifier: tt..., tmdb:... or tvdb:...")
		lang       = flag.String("language", "en-US", "request language (BCP 47)")
		prefsRaw   = flag.String("prefs", "", "encoded install preferences")
		timeout    = flag.Duration("timeout", 30*time.Second, "request timeout")
	)
	flag.Parse()

	if *mediaID == "" {
		fmt.Fprintln(os.Stderr, "usage: aiometa -id tt0133093 [-type movie] [-language en-US]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Path:   cfg.Logging.Path,
	})
	defer log.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := meta.NewService(cfg, log)
	resp := svc.GetMeta(ctx, meta.MetaRequest{
		Type:     *mediaType,
		ID:       *mediaID,
		Language: *lang,
		Prefs:    preferences.Decode(*prefsRaw),
		PrefsRaw: *prefsRaw,
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
		os.Exit(1)
	}
}
