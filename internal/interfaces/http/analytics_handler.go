package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distriventas-api/internal/application/analytics"
	"github.com/jhoicas/Distriventas-api/internal/application/dto"
	"github.com/jhoicas/Distriventas-api/internal/domain"
)

// AnalyticsHandler maneja los endpoints de analítica de ventas conciliadas.
type AnalyticsHandler struct {
	salesUC      *analytics.SalesReportUseCase
	dependencyUC *analytics.DependencyUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(salesUC *analytics.SalesReportUseCase, dependencyUC *analytics.DependencyUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{salesUC: salesUC, dependencyUC: dependencyUC}
}

// GetSales godoc
// @Summary      Reporte conciliado de ventas por dimensión
// @Description  Agrega los pedidos entregados del período por producto, marca,
//               categoría o retailer, con métricas derivadas y análisis Pareto.
// @Tags         analytics
// @Produce      json
// @Param        X-Distributor-Id  header  string  true   "ID del distribuidor"
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD). Default: primer día del mes."
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD). Default: hoy."
// @Param        dimension   query  string  false  "product | brand | category | retailer (default product)"
// @Success      200  {object}  dto.SalesReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/sales [get]
func (h *AnalyticsHandler) GetSales(c *fiber.Ctx) error {
	var req dto.SalesReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	report, err := h.salesUC.GetSalesReport(c.Context(), GetDistributorID(c), req)
	if err != nil {
		return analyticsError(c, err)
	}
	return c.JSON(report)
}

// GetDependency godoc
// @Summary      Riesgo de concentración de clientes
// @Description  Participación de los top retailers sobre el volumen de pedidos
//               entregados del período y bandera de riesgo alto.
// @Tags         analytics
// @Produce      json
// @Param        X-Distributor-Id  header  string  true   "ID del distribuidor"
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD)"
// @Success      200  {object}  dto.DependencyRiskDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/dependency [get]
func (h *AnalyticsHandler) GetDependency(c *fiber.Ctx) error {
	var req dto.PeriodRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	risk, err := h.dependencyUC.GetDependencyRisk(c.Context(), GetDistributorID(c), req)
	if err != nil {
		return analyticsError(c, err)
	}
	return c.JSON(risk)
}

// analyticsError mapea errores de dominio a códigos HTTP: los de validación
// son del cliente, el resto es 500.
func analyticsError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidPeriod):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PERIOD", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidDimension):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_DIMENSION", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL_ERROR", Message: "no se pudo generar el reporte",
		})
	}
}
