package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distriventas-api/internal/application/analytics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SalesUC      *analytics.SalesReportUseCase
	DependencyUC *analytics.DependencyUseCase
	ForecastUC   *analytics.ForecastUseCase
	DashboardUC  *analytics.DashboardUseCase
}

// Router registra las rutas de la API. Todos los endpoints de reporte van
// detrás del middleware de distribuidor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", DistributorMiddleware())

	analyticsGroup := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.SalesUC, deps.DependencyUC)
	analyticsGroup.Get("/sales", analyticsHandler.GetSales)
	analyticsGroup.Get("/dependency", analyticsHandler.GetDependency)

	forecastHandler := NewForecastHandler(deps.ForecastUC)
	analyticsGroup.Get("/forecast", forecastHandler.GetForecast)

	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
