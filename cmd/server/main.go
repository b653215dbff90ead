package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/DarkIsCool10/Glitter-class-back/internal/config"
	"github.com/DarkIsCool10/Glitter-class-back/internal/database"
	"github.com/DarkIsCool10/Glitter-class-back/internal/handler"
	"github.com/DarkIsCool10/Glitter-class-back/internal/logger"
	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
	"github.com/DarkIsCool10/Glitter-class-back/internal/router"
	"github.com/DarkIsCool10/Glitter-class-back/internal/service"
	"github.com/DarkIsCool10/Glitter-class-back/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Glitter Class Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(pool)
	preguntaRepo := repository.NewPreguntaRepository(pool)
	examenRepo := repository.NewExamenRepository(pool)
	intentoRepo := repository.NewIntentoRepository(pool)
	publicoRepo := repository.NewPublicoRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb, usuarioRepo)
	preguntaService := service.NewPreguntaService(preguntaRepo)
	examenService := service.NewExamenService(examenRepo)
	intentoService := service.NewIntentoService(intentoRepo)
	publicoService := service.NewPublicoService(publicoRepo)
	usuarioService := service.NewUsuarioService(usuarioRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Autorizacion: handler.NewAutorizacionHandler(authService, log),
		Pregunta:     handler.NewPreguntaHandler(preguntaService, log),
		Examen:       handler.NewExamenHandler(examenService, log),
		Intento:      handler.NewIntentoHandler(intentoService, log),
		Publico:      handler.NewPublicoHandler(publicoService, usuarioService, log),
		Usuario:      handler.NewUsuarioHandler(usuarioService, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
