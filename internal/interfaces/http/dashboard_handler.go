package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distriventas-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del resumen del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  KPIs de hoy y del mes en curso más el Top-5 de productos del
//               mes por ingreso.
// @Tags         dashboard
// @Produce      json
// @Param        X-Distributor-Id  header  string  true  "ID del distribuidor"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), GetDistributorID(c))
	if err != nil {
		return analyticsError(c, err)
	}
	return c.JSON(summary)
}
