// Command seed crea el esquema y carga los datos por defecto (usuarios,
// proveedores, medicamentos y equipos) en una base vacía. Es idempotente:
// solo inserta cuando las tablas están vacías.
package main

import (
	"context"

	"github.com/jhoicas/hemis-api/internal/infrastructure/postgres"
	"github.com/jhoicas/hemis-api/pkg/config"
	"github.com/jhoicas/hemis-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if err := postgres.Seed(ctx, pool, log.Zerolog()); err != nil {
		log.Fatal().Err(err).Msg("datos por defecto")
	}

	log.Info().Msg("seed completado")
}
