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
	"github.com/jhoicas/pcb-production-api/internal/application/auth"
	"github.com/jhoicas/pcb-production-api/internal/application/catalog"
	"github.com/jhoicas/pcb-production-api/internal/application/production"
	"github.com/jhoicas/pcb-production-api/internal/application/shortage"
	"github.com/jhoicas/pcb-production-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pcb-production-api/internal/interfaces/http"
	"github.com/jhoicas/pcb-production-api/pkg/config"
	"github.com/jhoicas/pcb-production-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	componentRepo := postgres.NewComponentRepository(pool)
	pcbRepo := postgres.NewPCBRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	consumptionRepo := postgres.NewConsumptionRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	shortageRepo := postgres.NewShortageRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	produceUC := production.NewProduceUseCase(txRunner)
	historyUC := production.NewHistoryUseCase(consumptionRepo, productionRepo)
	analyzeUC := shortage.NewAnalyzeUseCase(shortageRepo)
	catalogUC := catalog.NewCatalogUseCase(componentRepo, pcbRepo, bomRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PCB Production API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProduceUC: produceUC,
		HistoryUC: historyUC,
		AnalyzeUC: analyzeUC,
		CatalogUC: catalogUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
