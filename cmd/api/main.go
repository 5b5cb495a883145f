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

	"github.com/avelio/profitab-api/internal/application/auth"
	"github.com/avelio/profitab-api/internal/application/usecase"
	"github.com/avelio/profitab-api/internal/domain/report"
	"github.com/avelio/profitab-api/internal/infrastructure/billbee"
	infrapdf "github.com/avelio/profitab-api/internal/infrastructure/pdf"
	"github.com/avelio/profitab-api/internal/infrastructure/postgres"
	"github.com/avelio/profitab-api/internal/infrastructure/s3store"
	httpRouter "github.com/avelio/profitab-api/internal/interfaces/http"
	"github.com/avelio/profitab-api/pkg/config"
	"github.com/avelio/profitab-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("konfiguration laden: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("anwendung startet")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("postgresql-verbindung")
	}
	defer pool.Close()

	bucket, err := s3store.NewBucket(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("s3-tabellenspeicher")
	}
	archive := s3store.NewOrderArchive(bucket)
	costTables := s3store.NewCostTables(bucket)

	orderSource := billbee.NewClient(billbee.Config{
		APIKey:   cfg.Billbee.APIKey,
		Username: cfg.Billbee.Username,
		Password: cfg.Billbee.Password,
		BaseURL:  cfg.Billbee.BaseURL,
	})

	rates := report.DefaultShippingRates()
	rates.HomeCountry = cfg.Report.HomeCountry

	userRepo := postgres.NewUserRepository(pool)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	reportUC := usecase.NewReportUseCase(archive, costTables, rates, infrapdf.NewReportRenderer(), log)
	importUC := usecase.NewImportUseCase(orderSource, archive, log)
	costsUC := usecase.NewCostsUseCase(costTables)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // der Import läuft synchron
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI lokal: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Profitab API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ReportUC:  reportUC,
		ImportUC:  importUC,
		CostsUC:   costsUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("http-server beendet")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown-signal empfangen, server wird beendet...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server-shutdown")
	}

	log.Info().Msg("anwendung gestoppt")
}
