package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/esc4n0rx/hbtracker-api/internal/application/auth"
	appstock "github.com/esc4n0rx/hbtracker-api/internal/application/stock"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/repository"
	"github.com/esc4n0rx/hbtracker-api/internal/infrastructure/memory"
	"github.com/esc4n0rx/hbtracker-api/internal/infrastructure/postgres"
	httpRouter "github.com/esc4n0rx/hbtracker-api/internal/interfaces/http"
	"github.com/esc4n0rx/hbtracker-api/pkg/config"
	"github.com/esc4n0rx/hbtracker-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Msg("iniciando aplicação")

	ctx := context.Background()

	var (
		movRepo  repository.MovementRepository
		invRepo  repository.InventoryRepository
		txRunner appstock.TxRunner
	)
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("criação do schema")
		}
		movRepo = postgres.NewMovementRepository(pool)
		invRepo = postgres.NewInventoryRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
		log.Info().Msg("repositórios PostgreSQL prontos")
	} else {
		memMov := memory.NewMovementRepository()
		memInv := memory.NewInventoryRepository()
		movRepo = memMov
		invRepo = memInv
		txRunner = memory.NewTxRunner(memMov, memInv)
		log.Warn().Msg("sem banco configurado; usando repositórios em memória")
	}

	resolver := appstock.NewResolver(invRepo)
	ingestUC := appstock.NewIngestUseCase(txRunner)
	inventoryUC := appstock.NewInventoryUseCase(txRunner, cfg.Inventory.BaselineDate, cfg.Inventory.ValidAssets)
	queryUC := appstock.NewQueryUseCase(movRepo, resolver, cfg.Inventory.BaselineDate)
	authUC := auth.NewUseCase(cfg.Admin, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "HBTracker API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "version": cfg.App.Version})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		IngestUC:    ingestUC,
		InventoryUC: inventoryUC,
		QueryUC:     queryUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
