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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distriventas-api/internal/application/analytics"
	"github.com/jhoicas/Distriventas-api/internal/domain/reconcile"
	infrafs "github.com/jhoicas/Distriventas-api/internal/infrastructure/firestore"
	httpRouter "github.com/jhoicas/Distriventas-api/internal/interfaces/http"
	"github.com/jhoicas/Distriventas-api/pkg/config"
	"github.com/jhoicas/Distriventas-api/pkg/logger"
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
	fsClient, err := infrafs.NewClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Firestore")
	}
	defer fsClient.Close()

	orderSource := infrafs.NewOrderSource(fsClient, log)
	productSource := infrafs.NewProductSource(fsClient, log)

	thresholds := reconcile.Thresholds{
		TopRetailers:         cfg.Analytics.TopRetailers,
		ConcentrationHighPct: decimal.NewFromInt(int64(cfg.Analytics.ConcentrationHighPct)),
		DrainWindowDays:      cfg.Analytics.DrainWindowDays,
		DrainCriticalDays:    int64(cfg.Analytics.DrainCriticalDays),
		DrainLowDays:         int64(cfg.Analytics.DrainLowDays),
		AgeOldDays:           cfg.Analytics.AgeOldDays,
		AgeModerateDays:      cfg.Analytics.AgeModerateDays,
	}

	salesUC := analytics.NewSalesReportUseCase(
		orderSource, productSource, reconcile.NewDerivedMetricsCalculator(thresholds))
	dependencyUC := analytics.NewDependencyUseCase(
		orderSource, reconcile.NewDependencyRiskAnalyzer(thresholds))
	forecastUC := analytics.NewForecastUseCase(
		orderSource, productSource, reconcile.NewDrainForecastEstimator(thresholds))
	dashboardUC := analytics.NewDashboardUseCase(orderSource, productSource)

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
		Title:    "Distriventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SalesUC:      salesUC,
		DependencyUC: dependencyUC,
		ForecastUC:   forecastUC,
		DashboardUC:  dashboardUC,
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
