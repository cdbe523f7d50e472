// Package excel genera la planilla xlsx del listado de productos, equivalente
// al export manual que el equipo de bodega descarga desde la UI.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/export"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
)

var _ export.ProductListExporter = (*ExcelizeExporter)(nil)

const sheetName = "Estoque"

var headers = []string{"Código", "Nombre", "Color", "Categoría", "Ubicación", "Cantidad", "Estoque mínimo", "Estado"}

// ExcelizeExporter implementa export.ProductListExporter usando excelize.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// ExportProducts genera el xlsx y devuelve sus bytes.
func (e *ExcelizeExporter) ExportProducts(products []*entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: cabecera %q: %w", h, err)
		}
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for row, p := range products {
		values := []any{p.Code, p.Name, p.Color, p.Category, p.Location, p.Quantity, p.MinStock, statusLabel(p.Status)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", row+2, err)
			}
		}
	}

	// Anchos razonables para lectura sin ajuste manual
	_ = f.SetColWidth(sheetName, "A", "A", 14)
	_ = f.SetColWidth(sheetName, "B", "B", 32)
	_ = f.SetColWidth(sheetName, "C", "E", 18)
	_ = f.SetColWidth(sheetName, "F", "G", 16)
	_ = f.SetColWidth(sheetName, "H", "H", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

func statusLabel(status string) string {
	if status == entity.ProductStatusActive {
		return "Activo"
	}
	return "Inactivo"
}
