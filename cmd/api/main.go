package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trend-system/internal/config"
	httphandler "trend-system/internal/http"
	"trend-system/internal/services/llm"
	"trend-system/internal/services/trends"
	"trend-system/internal/session"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	port := flag.String("port", "", "Port to run the server on (overrides PORT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	setupLogging(cfg.Log)

	if *port != "" {
		cfg.Server.Port = *port
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	llmClient, err := newLLMClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create LLM client")
	}

	guard, closeGuard, err := newSessionGuard(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create session guard")
	}
	defer closeGuard()

	trendService := trends.NewService(trends.NewAdapter(llmClient))

	router := httphandler.NewRouter()
	router.RegisterTrendsRoutes(httphandler.NewTrendsHandler(trendService, guard))
	router.RegisterHealthRoutes()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("port", cfg.Server.Port).
			Str("provider", cfg.LLM.Provider).
			Str("model", llmClient.Model()).
			Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		return
	}
	log.Info().Msg("Server stopped")
}

func setupLogging(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func newLLMClient(ctx context.Context, cfg config.LLMConfig) (llm.Client, error) {
	if cfg.Provider == config.ProviderOpenAI {
		return llm.NewOpenAIClient(cfg.APIKey, cfg.Model)
	}
	return llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
}

func newSessionGuard(cfg *config.Config) (session.Guard, func(), error) {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, keeping session flags in memory")
		return session.NewMemoryGuard(cfg.Session.BusyTTL), func() {}, nil
	}

	guard, err := session.NewRedisGuard(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Session.BusyTTL)
	if err != nil {
		return nil, nil, err
	}
	return guard, func() { guard.Close() }, nil
}
