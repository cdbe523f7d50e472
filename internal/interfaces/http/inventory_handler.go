package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/dto"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/inventory"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain"
)

// InventoryHandler registra movimientos de stock y expone el historial.
type InventoryHandler struct {
	uc *inventory.RegisterMovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RegisterMovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Entrada (IN) suma, salida (OUT) resta. Una salida que dejaría la cantidad negativa se rechaza completa.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_code, type (IN|OUT), quantity, notes"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.RegisterMovementFromRequest(c.Context(), GetRole(c), GetUsername(c), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de movimiento inválidos"})
		case domain.ErrProductInactive:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "PRODUCT_INACTIVE", Message: "el producto está inactivo"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para registrar movimientos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "registrado"})
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_code  query  string  false  "Filtrar por código de producto"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200           {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListMovements(c.Query("product_code"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
