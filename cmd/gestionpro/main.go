package main

import (
	"os"
	"time"

	"gestionpro/internal/cli"
	"gestionpro/internal/config"
	"gestionpro/internal/infra"
	"gestionpro/internal/repository"
	"gestionpro/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger — dev: pretty, prod: JSON
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	// A failed store open is not fatal: every operation then reports a
	// not-initialized result instead of crashing the front end.
	var db *gorm.DB
	db, err = infra.NewDatabase(cfg.DBPath, cfg.DBVerbose)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.DBPath).Msg("error fatal al abrir la base de datos")
		db = nil
	}

	productoRepo := repository.NewProductoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	ventaRepo := repository.NewVentaRepository(db)

	app := &cli.App{
		Cfg:       cfg,
		Auth:      service.NewAuthService(usuarioRepo),
		Productos: service.NewProductoService(productoRepo),
		Ventas:    service.NewVentaService(ventaRepo, productoRepo, time.Now),
		Reportes:  service.NewReporteService(ventaRepo, productoRepo, time.Now),
	}

	if err := cli.NewRootCommand(app).Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
