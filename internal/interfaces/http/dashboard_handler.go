package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/analytics"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/dto"
)

// DashboardHandler expone el resumen del tablero.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del tablero
// @Description  Totales de stock, productos en nivel crítico y movimientos recientes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
