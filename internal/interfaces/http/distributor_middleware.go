package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distriventas-api/internal/application/dto"
)

// Locals key para el DistributorID en Fiber.
const LocalDistributorID = "distributor_id"

// DistributorMiddleware extrae el distribuidor del request: primero el header
// X-Distributor-Id, si no viene se acepta el query param distributor_id. Todos
// los reportes son por distribuidor, sin él no hay nada que consultar.
func DistributorMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		distributorID := strings.TrimSpace(c.Get("X-Distributor-Id"))
		if distributorID == "" {
			distributorID = strings.TrimSpace(c.Query("distributor_id"))
		}
		if distributorID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "MISSING_DISTRIBUTOR", Message: "se requiere el header X-Distributor-Id o el query param distributor_id",
			})
		}
		c.Locals(LocalDistributorID, distributorID)
		return c.Next()
	}
}

// GetDistributorID devuelve el DistributorID del contexto (después del middleware).
func GetDistributorID(c *fiber.Ctx) string {
	v := c.Locals(LocalDistributorID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
