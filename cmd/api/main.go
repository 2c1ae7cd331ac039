package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/echovoice/echovoice/internal/api"
	"github.com/echovoice/echovoice/internal/cache"
	"github.com/echovoice/echovoice/internal/config"
	"github.com/echovoice/echovoice/internal/tts"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Redis connection (optional — only used for the audio cache)
	var rdb *redis.Client
	var audioCache *cache.AudioCache
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("redis unavailable, running without audio cache", "error", err)
		} else {
			audioCache = cache.NewAudioCache(rdb, cfg.Redis.CacheTTL)
		}
		defer rdb.Close()
	}

	// Synthesis engine
	var engine tts.Engine
	var engineReady func() bool
	switch cfg.TTS.Backend {
	case "openai":
		engine = tts.NewOpenAIEngine(tts.OpenAIConfig{
			APIKey:  cfg.TTS.OpenAIKey,
			BaseURL: cfg.TTS.OpenAIBaseURL,
			Model:   cfg.TTS.OpenAIModel,
		})
	default:
		espeak := tts.NewEspeakEngine(tts.EspeakConfig{
			BinPath:    cfg.TTS.EspeakBinPath,
			SampleRate: cfg.TTS.SampleRate,
			Timeout:    cfg.TTS.Timeout,
		})
		if espeak.Available() {
			slog.Info("espeak-ng is available and ready")
		} else {
			slog.Warn("espeak-ng not found, requests will use fallback synthesis")
		}
		engine = espeak
		engineReady = espeak.Available
	}

	svc := tts.NewService(engine, cfg.TTS.SampleRate)

	// Setup router
	router := api.NewRouter(cfg, svc, audioCache, rdb, engineReady)
	handler := router.Setup()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("starting TTS API server", "addr", cfg.Addr(), "engine", engine.Name())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}
