package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/dto"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/export"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/repository"
)

// ExportHandler descarga el inventario en planilla y el reporte en PDF.
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// ProductsXLSX godoc
// @Summary      Exportar inventario a planilla
// @Description  Genera un archivo .xlsx con el catálogo completo y su stock actual.
// @Tags         export
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status  query  string  false  "active | inactive | all"  default(all)
// @Success      200  {file}  binary
// @Router       /api/export/products.xlsx [get]
func (h *ExportHandler) ProductsXLSX(c *fiber.Ctx) error {
	status := c.Query("status", repository.StatusFilterAll)
	data, err := h.uc.ProductsXLSX(status)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro de estado inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("estoque_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

// StockReportPDF godoc
// @Summary      Reporte de stock en PDF
// @Description  Resumen ejecutivo: totales, productos críticos y movimientos recientes.
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/export/report.pdf [get]
func (h *ExportHandler) StockReportPDF(c *fiber.Ctx) error {
	data, err := h.uc.StockReportPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("reporte_estoque_%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
