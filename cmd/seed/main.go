// Comando seed: repuebla la base con datos sintéticos de demostración.
// Uso: go run ./cmd/seed (rechazado cuando APP_ENV=production).
package main

import (
	"context"

	"github.com/jhoicas/registro-libros/internal/infrastructure/postgres"
	"github.com/jhoicas/registro-libros/internal/infrastructure/seed"
	"github.com/jhoicas/registro-libros/pkg/config"
	"github.com/jhoicas/registro-libros/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	result, err := seed.New(pool, cfg, log).Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().Msg(result.Message())
}
