package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distriventas-api/internal/application/analytics"
)

// ForecastHandler maneja el endpoint de pronóstico de agotamiento de stock.
type ForecastHandler struct {
	uc *analytics.ForecastUseCase
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc *analytics.ForecastUseCase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// GetForecast godoc
// @Summary      Pronóstico de agotamiento de stock
// @Description  Estima días de suministro restante por producto según la venta
//               promedio de la ventana móvil. days_left null significa que el
//               producto no registró ventas en la ventana.
// @Tags         analytics
// @Produce      json
// @Param        X-Distributor-Id  header  string  true  "ID del distribuidor"
// @Success      200  {object}  dto.DrainForecastReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/forecast [get]
func (h *ForecastHandler) GetForecast(c *fiber.Ctx) error {
	report, err := h.uc.GetDrainForecast(c.Context(), GetDistributorID(c))
	if err != nil {
		return analyticsError(c, err)
	}
	return c.JSON(report)
}
